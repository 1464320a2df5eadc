package employees

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	employeeRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/employee"
	"github.com/m04kA/SMC-ScheduleService/internal/service/employees/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

// Service сервис для управления сотрудниками и их blackout-датами
type Service struct {
	employeeRepo EmployeeRepository
	blackoutRepo BlackoutRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса сотрудников
func NewService(
	employeeRepo EmployeeRepository,
	blackoutRepo BlackoutRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		employeeRepo: employeeRepo,
		blackoutRepo: blackoutRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Create создает сотрудника, применяя значения по умолчанию
// к опущенным полям (таймзона, рабочее окно 09:00-17:00, active=true)
// Если ID не передан, генерируется новый
func (s *Service) Create(ctx context.Context, req *models.CreateEmployeeRequest) (string, error) {
	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return "", err
	}

	id := uuid.NewString()
	if req.ID != nil {
		id = *req.ID
	}

	emp := &domain.Employee{
		ID:                id,
		Name:              req.Name,
		Email:             req.Email,
		Timezone:          ptr.Value(req.Timezone, domain.DefaultTimezone),
		Active:            ptr.Value(req.Active, true),
		DailyStartMinutes: ptr.Value(req.DailyStartMinutes, domain.DefaultDailyStartMinutes),
		DailyEndMinutes:   ptr.Value(req.DailyEndMinutes, domain.DefaultDailyEndMinutes),
		SlackWebhookURL:   req.SlackWebhookURL,
	}

	if _, err := s.employeeRepo.Create(ctx, emp); err != nil {
		s.logger.Error("Create: repository error for employee name=%q: %v", req.Name, err)
		return "", fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: employee created id=%s name=%q", id, emp.Name)
	return id, nil
}

// Update частично обновляет сотрудника
// Обновляются только заданные поля; значения по умолчанию не применяются,
// поэтому опущенное поле сохраняет прежнее значение
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateEmployeeRequest) error {
	if err := validateEmployeeID(id); err != nil {
		s.logger.Warn("Update: invalid employee id=%q", id)
		return err
	}

	stored, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			s.logger.Warn("Update: employee id=%s not found", id)
			return ErrEmployeeNotFound
		}
		s.logger.Error("Update: repository error for employee id=%s: %v", id, err)
		return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if err := validateUpdateRequest(req, stored); err != nil {
		s.logger.Warn("Update: validation failed for employee id=%s: %v", id, err)
		return err
	}

	patch := req.ToDomainPatch()
	if patch.IsEmpty() {
		// Пустой patch - валидный no-op
		s.logger.Info("Update: empty patch for employee id=%s, nothing to do", id)
		return nil
	}

	if err := s.employeeRepo.Update(ctx, id, patch); err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			return ErrEmployeeNotFound
		}
		s.logger.Error("Update: repository error for employee id=%s: %v", id, err)
		return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: employee updated id=%s", id)
	return nil
}

// List возвращает всех активных сотрудников, отсортированных по имени
func (s *Service) List(ctx context.Context) ([]*models.EmployeeResponse, error) {
	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d active employees", len(employees))
	return models.FromDomainEmployeeList(employees), nil
}

// RegisterBlackouts регистрирует набор blackout-дат сотрудника
// Весь набор выполняется в одной транзакции: при ошибке на любом элементе
// не сохраняется ничего. Повторная регистрация той же даты - no-op
func (s *Service) RegisterBlackouts(ctx context.Context, req *models.RegisterBlackoutsRequest) error {
	days, err := validateBlackoutsRequest(req)
	if err != nil {
		s.logger.Warn("RegisterBlackouts: validation failed: %v", err)
		return err
	}

	var total int
	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Проверяем существование сотрудника внутри транзакции
		if _, err := s.employeeRepo.GetByID(txCtx, req.EmployeeID); err != nil {
			if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
				return ErrEmployeeNotFound
			}
			return fmt.Errorf("%w: RegisterBlackouts - repository error: %v", ErrInternal, err)
		}

		if err := s.blackoutRepo.RegisterBatch(txCtx, req.EmployeeID, days); err != nil {
			return fmt.Errorf("%w: RegisterBlackouts - repository error: %v", ErrInternal, err)
		}

		// Дубликаты молча игнорируются, поэтому итог читаем из хранилища
		all, err := s.blackoutRepo.ListDays(txCtx, req.EmployeeID)
		if err != nil {
			return fmt.Errorf("%w: RegisterBlackouts - repository error: %v", ErrInternal, err)
		}
		total = len(all)

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrEmployeeNotFound) {
			s.logger.Warn("RegisterBlackouts: employee id=%s not found", req.EmployeeID)
			return ErrEmployeeNotFound
		}
		s.logger.Error("RegisterBlackouts: transaction failed for employee id=%s: %v", req.EmployeeID, err)
		return err
	}

	s.logger.Info("RegisterBlackouts: registered %d days for employee id=%s (%d total)", len(days), req.EmployeeID, total)
	return nil
}
