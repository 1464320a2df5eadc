package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// BookingRepository контракт репозитория бронирований
type BookingRepository interface {
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
