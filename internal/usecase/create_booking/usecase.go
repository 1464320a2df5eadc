package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	employeeRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/employee"
)

// UseCase use case создания бронирования
// Единственный писатель реестра бронирований: токены выпускаются здесь,
// token-эндпоинты их только потребляют
type UseCase struct {
	bookingRepo  BookingRepository
	employeeRepo EmployeeRepository
	blackoutRepo BlackoutRepository
	slackClient  SlackClient
	txManager    TransactionManager
	timeProvider TimeProvider
	slotDuration int
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	employeeRepo EmployeeRepository,
	blackoutRepo BlackoutRepository,
	slackClient SlackClient,
	txManager TransactionManager,
	slotDurationMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		employeeRepo: employeeRepo,
		blackoutRepo: blackoutRepo,
		slackClient:  slackClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		slotDuration: slotDurationMinutes,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка доступности и вставка выполняются в сериализуемой транзакции
// с блокировкой FOR UPDATE - конкурирующий запрос на тот же слот проиграет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: employee=%s, day=%s, start=%d", req.EmployeeID, req.Day, req.StartMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.slotDuration); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Получаем сотрудника и проверяем, что он принимает бронирования
		emp, err := uc.employeeRepo.GetByID(txCtx, req.EmployeeID)
		if err != nil {
			if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
				return ErrEmployeeNotFound
			}
			return fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
		}
		if !emp.Active {
			return ErrEmployeeInactive
		}

		// 3. Слот должен помещаться в рабочее окно сотрудника
		// и лежать на сетке слотов, привязанной к началу окна
		if !emp.FitsWindow(req.StartMinutes, uc.slotDuration) {
			return ErrOutsideWorkingHours
		}
		if !fitsSlotGrid(req.StartMinutes, uc.slotDuration, emp) {
			return fmt.Errorf("%w: startMinutes must be aligned to the %d-minute slot grid", ErrInvalidInput, uc.slotDuration)
		}

		// 4. Вычисляем момент начала слота в таймзоне сотрудника
		loc, err := emp.Location()
		if err != nil {
			return fmt.Errorf("%w: failed to load employee timezone: %v", ErrInternal, err)
		}
		midnight, err := req.Day.ToTime(loc)
		if err != nil {
			return fmt.Errorf("%w: invalid day", ErrInvalidInput)
		}
		slotStart := midnight.Add(time.Duration(req.StartMinutes) * time.Minute)

		if !slotStart.After(now) {
			return ErrDateInPast
		}

		// 5. Blackout-дата закрывает весь день независимо от рабочего окна
		blocked, err := uc.blackoutRepo.HasDay(txCtx, req.EmployeeID, req.Day)
		if err != nil {
			return fmt.Errorf("%w: failed to check blackout: %v", ErrInternal, err)
		}
		if blocked {
			return ErrBlackoutDay
		}

		// 6. Проверяем пересечения с существующими бронированиями (FOR UPDATE)
		existing, err := uc.bookingRepo.GetByEmployeeAndDay(txCtx, req.EmployeeID, req.Day)
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}
		if hasOverlap(req.StartMinutes, uc.slotDuration, existing) {
			return ErrSlotTaken
		}

		// 7. Выпускаем независимые single-use токены
		// Оба окна действия закрываются в момент начала слота
		cancelToken, err := issueToken()
		if err != nil {
			return err
		}
		rescheduleToken, err := issueToken()
		if err != nil {
			return err
		}

		booking := &domain.Booking{
			ID:                uuid.NewString(),
			EmployeeID:        req.EmployeeID,
			CustomerName:      req.CustomerName,
			CustomerEmail:     req.CustomerEmail,
			Day:               req.Day,
			StartMinutes:      req.StartMinutes,
			DurationMinutes:   uc.slotDuration,
			CancelToken:       cancelToken,
			CancelExpires:     slotStart,
			RescheduleToken:   rescheduleToken,
			RescheduleExpires: slotStart,
		}

		result, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrEmployeeNotFound),
			errors.Is(err, ErrEmployeeInactive),
			errors.Is(err, ErrOutsideWorkingHours),
			errors.Is(err, ErrBlackoutDay),
			errors.Is(err, ErrSlotTaken),
			errors.Is(err, ErrDateInPast),
			errors.Is(err, ErrInvalidInput):
			uc.logger.Warn("CreateBooking: rejected: %v", err)
		default:
			uc.logger.Error("CreateBooking: failed: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: booking id=%s created for employee=%s on %s at %s",
		result.ID, result.EmployeeID, result.Day, result.StartClock())

	// 8. Уведомляем сотрудника после коммита; потеря уведомления не
	// откатывает бронирование
	uc.notifyEmployee(ctx, result)

	return FromDomainBooking(result), nil
}

// notifyEmployee отправляет уведомление в Slack-вебхук сотрудника, если он настроен
func (uc *UseCase) notifyEmployee(ctx context.Context, b *domain.Booking) {
	emp, err := uc.employeeRepo.GetByID(ctx, b.EmployeeID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to load employee for notification: %v", err)
		return
	}
	if !emp.HasSlackWebhook() {
		return
	}

	text := fmt.Sprintf("Новое бронирование: %s, %s %s (%d мин), клиент %s",
		emp.Name, b.Day, b.StartClock(), b.DurationMinutes, b.CustomerName)

	// Ошибка уже залогирована клиентом, бронирование создано в любом случае
	_ = uc.slackClient.NotifyWithGracefulDegradation(ctx, *emp.SlackWebhookURL, text)
}
