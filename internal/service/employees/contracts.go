package employees

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// EmployeeRepository контракт репозитория сотрудников
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) (*domain.Employee, error)
	Update(ctx context.Context, id string, patch *domain.EmployeePatch) error
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	ListActive(ctx context.Context) ([]*domain.Employee, error)
}

// BlackoutRepository контракт репозитория blackout-дат
type BlackoutRepository interface {
	RegisterBatch(ctx context.Context, employeeID string, days []types.DateString) error
	ListDays(ctx context.Context, employeeID string) ([]types.DateString, error)
}

// TransactionManager контракт транзакционного менеджера
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс логгера
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
