package get_available_slots

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Request запрос доступных слотов сотрудника на дату
type Request struct {
	EmployeeID string
	Day        types.DateString
}

// Slot доступный слот в ответе
type Slot struct {
	StartTime       string `json:"startTime"`
	StartMinutes    int    `json:"startMinutes"`
	DurationMinutes int    `json:"durationMinutes"`
}

// Response список доступных слотов
type Response struct {
	EmployeeID string `json:"employeeId"`
	Day        string `json:"day"`
	Slots      []Slot `json:"slots"`
}

// FromDomainSlots конвертирует domain-слоты в response
func FromDomainSlots(employeeID string, day types.DateString, slots []domain.AvailableSlot) *Response {
	result := make([]Slot, 0, len(slots))
	for _, s := range slots {
		result = append(result, Slot{
			StartTime:       s.StartClock(),
			StartMinutes:    s.StartMinutes,
			DurationMinutes: s.DurationMinutes,
		})
	}
	return &Response{
		EmployeeID: employeeID,
		Day:        day.String(),
		Slots:      result,
	}
}
