package bookings

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// BookingRepository контракт репозитория бронирований для token-операций
type BookingRepository interface {
	DeleteByCancelToken(ctx context.Context, token string) (string, error)
	GetByRescheduleToken(ctx context.Context, token string) (*domain.Booking, error)
}

// Logger интерфейс логгера
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
