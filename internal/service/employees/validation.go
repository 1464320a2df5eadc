package employees

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/employees/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// validateCreateRequest валидирует запрос на создание сотрудника
func validateCreateRequest(req *models.CreateEmployeeRequest) error {
	if req.ID != nil {
		if err := validateEmployeeID(*req.ID); err != nil {
			return err
		}
	}

	if err := validateName(req.Name); err != nil {
		return err
	}

	if req.Email != nil {
		if err := validateEmail(*req.Email); err != nil {
			return err
		}
	}

	if req.Timezone != nil {
		if err := validateTimezone(*req.Timezone); err != nil {
			return err
		}
	}

	// Проверяем рабочее окно с учетом значений по умолчанию:
	// окно валидируется целиком, даже если задана только одна граница
	start := domain.DefaultDailyStartMinutes
	if req.DailyStartMinutes != nil {
		start = *req.DailyStartMinutes
	}
	end := domain.DefaultDailyEndMinutes
	if req.DailyEndMinutes != nil {
		end = *req.DailyEndMinutes
	}

	return validateWindow(start, end)
}

// validateUpdateRequest валидирует заданные поля patch-запроса
// Границы окна проверяются в сочетании с сохранёнными значениями сотрудника
func validateUpdateRequest(req *models.UpdateEmployeeRequest, stored *domain.Employee) error {
	if req.Name != nil {
		if err := validateName(*req.Name); err != nil {
			return err
		}
	}

	if req.Email != nil {
		if err := validateEmail(*req.Email); err != nil {
			return err
		}
	}

	if req.Timezone != nil {
		if err := validateTimezone(*req.Timezone); err != nil {
			return err
		}
	}

	start := stored.DailyStartMinutes
	if req.DailyStartMinutes != nil {
		start = *req.DailyStartMinutes
	}
	end := stored.DailyEndMinutes
	if req.DailyEndMinutes != nil {
		end = *req.DailyEndMinutes
	}

	return validateWindow(start, end)
}

// validateBlackoutsRequest валидирует запрос на регистрацию blackout-дат
// Валидация происходит до любой записи: некорректная дата в середине
// списка отклоняет весь запрос
func validateBlackoutsRequest(req *models.RegisterBlackoutsRequest) ([]types.DateString, error) {
	if err := validateEmployeeID(req.EmployeeID); err != nil {
		return nil, err
	}

	if len(req.Days) == 0 {
		return nil, fmt.Errorf("%w: days list must not be empty", ErrInvalidInput)
	}

	if len(req.Days) > domain.MaxBlackoutDaysPerBatch {
		return nil, fmt.Errorf("%w: too many days in one batch (max %d)", ErrInvalidInput, domain.MaxBlackoutDaysPerBatch)
	}

	days := make([]types.DateString, 0, len(req.Days))
	for _, raw := range req.Days {
		day, err := types.NewDateStringFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid day %q, expected YYYY-MM-DD", ErrInvalidInput, raw)
		}
		days = append(days, day)
	}

	return days, nil
}

func validateEmployeeID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: invalid employee id", ErrInvalidInput)
	}
	return nil
}

func validateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < domain.MinNameLength {
		return fmt.Errorf("%w: name must be at least %d characters", ErrInvalidInput, domain.MinNameLength)
	}
	if len(trimmed) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	return nil
}

func validateEmail(email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}
	return nil
}

func validateTimezone(tz string) error {
	if _, err := time.LoadLocation(tz); err != nil {
		return fmt.Errorf("%w: unknown timezone %q", ErrInvalidInput, tz)
	}
	return nil
}

// validateWindow проверяет рабочее окно сотрудника
// Инвертированное окно (start >= end) отклоняется: оно ломает
// вычисление доступности
func validateWindow(start, end int) error {
	if start < domain.MinWindowMinute || start > domain.MaxWindowMinute {
		return fmt.Errorf("%w: dailyStartMinutes must be within [%d, %d]", ErrInvalidInput, domain.MinWindowMinute, domain.MaxWindowMinute)
	}
	if end < domain.MinWindowMinute || end > domain.MaxWindowMinute {
		return fmt.Errorf("%w: dailyEndMinutes must be within [%d, %d]", ErrInvalidInput, domain.MinWindowMinute, domain.MaxWindowMinute)
	}
	if start >= end {
		return fmt.Errorf("%w: dailyStartMinutes must be before dailyEndMinutes", ErrInvalidInput)
	}
	return nil
}
