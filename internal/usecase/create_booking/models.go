package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Request запрос на создание бронирования
type Request struct {
	EmployeeID    string
	CustomerName  string
	CustomerEmail string
	Day           types.DateString
	StartMinutes  int
}

// Response результат создания бронирования
// Токены уходят клиенту ровно один раз - в ссылках письма-подтверждения
type Response struct {
	BookingID         string    `json:"bookingId"`
	EmployeeID        string    `json:"employeeId"`
	Day               string    `json:"day"`
	StartTime         string    `json:"startTime"`
	DurationMinutes   int       `json:"durationMinutes"`
	CancelToken       string    `json:"cancelToken"`
	CancelExpires     time.Time `json:"cancelExpires"`
	RescheduleToken   string    `json:"rescheduleToken"`
	RescheduleExpires time.Time `json:"rescheduleExpires"`
}

// FromDomainBooking конвертирует созданное бронирование в response
func FromDomainBooking(b *domain.Booking) *Response {
	return &Response{
		BookingID:         b.ID,
		EmployeeID:        b.EmployeeID,
		Day:               b.Day.String(),
		StartTime:         b.StartClock(),
		DurationMinutes:   b.DurationMinutes,
		CancelToken:       b.CancelToken,
		CancelExpires:     b.CancelExpires,
		RescheduleToken:   b.RescheduleToken,
		RescheduleExpires: b.RescheduleExpires,
	}
}
