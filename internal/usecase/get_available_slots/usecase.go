package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	employeeRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/employee"
)

// UseCase use case вычисления доступных слотов
// Доступность = рабочее окно минус blackout-даты минус существующие бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	employeeRepo EmployeeRepository
	blackoutRepo BlackoutRepository
	timeProvider TimeProvider
	slotDuration int
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	employeeRepo EmployeeRepository,
	blackoutRepo BlackoutRepository,
	slotDurationMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		employeeRepo: employeeRepo,
		blackoutRepo: blackoutRepo,
		timeProvider: &RealTimeProvider{},
		slotDuration: slotDurationMinutes,
		logger:       logger,
	}
}

// Execute выполняет use case
// Чтение без транзакции: ответ - моментальный снимок, финальную проверку
// доступности делает создание бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if _, err := uuid.Parse(req.EmployeeID); err != nil {
		return nil, fmt.Errorf("%w: invalid employee id", ErrInvalidInput)
	}
	if err := req.Day.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid day format: %v", ErrInvalidInput, err)
	}

	emp, err := uc.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			uc.logger.Warn("GetAvailableSlots: employee id=%s not found", req.EmployeeID)
			return nil, ErrEmployeeNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get employee id=%s: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
	}

	// Неактивный сотрудник недоступен для бронирования целиком
	if !emp.Active {
		return FromDomainSlots(req.EmployeeID, req.Day, nil), nil
	}

	blocked, err := uc.blackoutRepo.HasDay(ctx, req.EmployeeID, req.Day)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to check blackout: %v", err)
		return nil, fmt.Errorf("%w: failed to check blackout: %v", ErrInternal, err)
	}
	if blocked {
		return FromDomainSlots(req.EmployeeID, req.Day, nil), nil
	}

	loc, err := emp.Location()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load timezone %q: %v", emp.Timezone, err)
		return nil, fmt.Errorf("%w: failed to load employee timezone: %v", ErrInternal, err)
	}
	dayStart, err := req.Day.ToTime(loc)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid day", ErrInvalidInput)
	}

	bookings, err := uc.bookingRepo.GetByEmployeeAndDay(ctx, req.EmployeeID, req.Day)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	slots := generateSlots(emp, uc.slotDuration, dayStart, uc.timeProvider.Now(), bookings)

	uc.logger.Info("GetAvailableSlots: employee=%s day=%s -> %d slots", req.EmployeeID, req.Day, len(slots))
	return FromDomainSlots(req.EmployeeID, req.Day, slots), nil
}
