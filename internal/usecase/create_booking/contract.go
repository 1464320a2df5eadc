package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// BookingRepository контракт репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	GetByEmployeeAndDay(ctx context.Context, employeeID string, day types.DateString) ([]*domain.Booking, error)
}

// EmployeeRepository контракт репозитория сотрудников
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
}

// BlackoutRepository контракт репозитория blackout-дат
type BlackoutRepository interface {
	HasDay(ctx context.Context, employeeID string, day types.DateString) (bool, error)
}

// SlackClient контракт клиента уведомлений
type SlackClient interface {
	NotifyWithGracefulDegradation(ctx context.Context, webhookURL string, text string) error
}

// TransactionManager контракт транзакционного менеджера
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider источник текущего времени (подменяется в тестах)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider боевой TimeProvider
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс логгера
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
