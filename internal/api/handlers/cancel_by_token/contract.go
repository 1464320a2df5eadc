package cancel_by_token

import "context"

// BookingService контракт резолвера token-действий
type BookingService interface {
	CancelByToken(ctx context.Context, token string) (string, error)
}

// Logger интерфейс логгера
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
