package create_booking

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, slotDuration int) error {
	if _, err := uuid.Parse(req.EmployeeID); err != nil {
		return fmt.Errorf("%w: invalid employee id", ErrInvalidInput)
	}

	if len(strings.TrimSpace(req.CustomerName)) < domain.MinNameLength {
		return fmt.Errorf("%w: customerName must be at least %d characters", ErrInvalidInput, domain.MinNameLength)
	}

	if _, err := mail.ParseAddress(req.CustomerEmail); err != nil {
		return fmt.Errorf("%w: invalid customerEmail", ErrInvalidInput)
	}

	if req.Day.IsZero() {
		return fmt.Errorf("%w: day is required", ErrInvalidInput)
	}
	if err := req.Day.Validate(); err != nil {
		return fmt.Errorf("%w: invalid day format: %v", ErrInvalidInput, err)
	}

	if req.StartMinutes < domain.MinWindowMinute || req.StartMinutes+slotDuration > domain.MaxWindowMinute {
		return fmt.Errorf("%w: startMinutes must leave room for a %d-minute slot within the day", ErrInvalidInput, slotDuration)
	}

	return nil
}

// fitsSlotGrid проверяет, что слот лежит на сетке рабочего окна сотрудника
// Сетка привязана к началу окна - ровно те же старты выдаёт вычисление
// доступных слотов, поэтому каждый предложенный слот бронируем
func fitsSlotGrid(startMinutes, slotDuration int, emp *domain.Employee) bool {
	return (startMinutes-emp.DailyStartMinutes)%slotDuration == 0
}

// hasOverlap проверяет пересечение слота с существующими бронированиями
// Граничные случаи (конец одного = начало другого) пересечением не считаются
func hasOverlap(startMinutes, durationMinutes int, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if b.Overlaps(startMinutes, durationMinutes) {
			return true
		}
	}
	return false
}
