package domain

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Booking represents a reserved time slot tied to one employee.
// It carries two independent single-use tokens: one authorizes cancellation,
// the other authorizes handing the booking back to the rebooking flow.
type Booking struct {
	ID              string
	EmployeeID      string
	CustomerName    string
	CustomerEmail   string
	Day             types.DateString
	StartMinutes    int
	DurationMinutes int

	CancelToken       string
	CancelExpires     time.Time
	RescheduleToken   string
	RescheduleExpires time.Time

	CreatedAt time.Time
}

// EndMinutes returns the slot end as minutes since midnight
func (b *Booking) EndMinutes() int {
	return b.StartMinutes + b.DurationMinutes
}

// Overlaps returns true if the booking intersects a slot on the same day.
// Boundary-touching slots do not count as overlapping.
func (b *Booking) Overlaps(startMinutes, durationMinutes int) bool {
	return b.StartMinutes < startMinutes+durationMinutes &&
		b.EndMinutes() > startMinutes
}

// CancelUsable returns true if the cancel token is still inside its window
func (b *Booking) CancelUsable(now time.Time) bool {
	return now.Before(b.CancelExpires)
}

// RescheduleUsable returns true if the reschedule token is still inside its window
func (b *Booking) RescheduleUsable(now time.Time) bool {
	return now.Before(b.RescheduleExpires)
}

// StartClock returns the slot start formatted as HH:MM
func (b *Booking) StartClock() string {
	return types.FormatClock(b.StartMinutes)
}
