package models

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// RescheduleResponse результат резолва reschedule-токена
// Токен возвращается как корреляционный параметр для интерфейса бронирования,
// где человек выберет новый слот
type RescheduleResponse struct {
	BookingID  string
	EmployeeID string
	Day        string
	StartTime  string
	Token      string
}

// FromDomainBooking конвертирует domain-модель в ответ reschedule-резолва
func FromDomainBooking(b *domain.Booking) *RescheduleResponse {
	return &RescheduleResponse{
		BookingID:  b.ID,
		EmployeeID: b.EmployeeID,
		Day:        b.Day.String(),
		StartTime:  b.StartClock(),
		Token:      b.RescheduleToken,
	}
}
