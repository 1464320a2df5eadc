package create_booking

import (
	"context"

	createBookingUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_booking"
)

// CreateBookingUseCase контракт use case создания бронирования
type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBookingUC.Request) (*createBookingUC.Response, error)
}

// Logger интерфейс логгера
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
