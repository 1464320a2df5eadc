package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// generateSlots вычисляет свободные слоты сотрудника на день
// Слоты идут по фиксированной сетке от начала рабочего окна; исключаются
// пересечения с существующими бронированиями и слоты, начинающиеся
// не позже now (для сегодняшней даты)
func generateSlots(
	emp *domain.Employee,
	slotDuration int,
	dayStart time.Time,
	now time.Time,
	bookings []*domain.Booking,
) []domain.AvailableSlot {
	slots := make([]domain.AvailableSlot, 0)

	for start := emp.DailyStartMinutes; start+slotDuration <= emp.DailyEndMinutes; start += slotDuration {
		slotStart := dayStart.Add(time.Duration(start) * time.Minute)
		if !slotStart.After(now) {
			continue
		}

		if overlapsAny(start, slotDuration, bookings) {
			continue
		}

		slots = append(slots, domain.AvailableSlot{
			StartMinutes:    start,
			DurationMinutes: slotDuration,
		})
	}

	return slots
}

// overlapsAny проверяет пересечение слота хотя бы с одним бронированием
func overlapsAny(startMinutes, durationMinutes int, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if b.Overlaps(startMinutes, durationMinutes) {
			return true
		}
	}
	return false
}
