package reschedule_by_token

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/service/bookings/models"
)

// BookingService контракт резолвера token-действий
type BookingService interface {
	ResolveReschedule(ctx context.Context, token string) (*models.RescheduleResponse, error)
}

// Logger интерфейс логгера
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
