package domain

import "github.com/m04kA/SMC-ScheduleService/pkg/types"

// AvailableSlot represents a time slot free for booking
type AvailableSlot struct {
	StartMinutes    int
	DurationMinutes int
}

// EndMinutes returns the slot end as minutes since midnight
func (s *AvailableSlot) EndMinutes() int {
	return s.StartMinutes + s.DurationMinutes
}

// StartClock returns the slot start formatted as HH:MM
func (s *AvailableSlot) StartClock() string {
	return types.FormatClock(s.StartMinutes)
}
