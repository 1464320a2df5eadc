package domain

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Employee represents a schedulable person with a daily working window
type Employee struct {
	ID                string
	Name              string
	Email             *string
	Timezone          string
	Active            bool
	DailyStartMinutes int
	DailyEndMinutes   int
	SlackWebhookURL   *string

	CreatedAt time.Time
}

// Location resolves the employee's IANA timezone
func (e *Employee) Location() (*time.Location, error) {
	return time.LoadLocation(e.Timezone)
}

// HasValidWindow returns true if the working window is non-empty and within the day
func (e *Employee) HasValidWindow() bool {
	return e.DailyStartMinutes >= 0 &&
		e.DailyEndMinutes <= types.MinutesPerDay &&
		e.DailyStartMinutes < e.DailyEndMinutes
}

// FitsWindow returns true if a slot starting at startMinutes with the given
// duration lies entirely inside the working window
func (e *Employee) FitsWindow(startMinutes, durationMinutes int) bool {
	return startMinutes >= e.DailyStartMinutes &&
		startMinutes+durationMinutes <= e.DailyEndMinutes
}

// HasSlackWebhook returns true if the employee has a notification endpoint configured
func (e *Employee) HasSlackWebhook() bool {
	return e.SlackWebhookURL != nil && *e.SlackWebhookURL != ""
}

// EmployeePatch описывает частичное обновление сотрудника
// nil-поле означает "оставить сохранённое значение"
type EmployeePatch struct {
	Name              *string
	Email             *string
	Timezone          *string
	Active            *bool
	DailyStartMinutes *int
	DailyEndMinutes   *int
	SlackWebhookURL   *string
}

// IsEmpty returns true if the patch changes nothing
func (p *EmployeePatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Timezone == nil &&
		p.Active == nil && p.DailyStartMinutes == nil &&
		p.DailyEndMinutes == nil && p.SlackWebhookURL == nil
}

// Blackout is a calendar date on which an employee accepts no bookings
type Blackout struct {
	ID         int64
	EmployeeID string
	Day        types.DateString
}
