package slack

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("slack client: internal error")

	// ErrInvalidResponse возвращается, когда webhook ответил не 2xx
	ErrInvalidResponse = errors.New("slack client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Уведомление потеряно, но бронирование уже создано - это допустимо
	ErrServiceDegraded = errors.New("slack webhook unavailable: graceful degradation applied")
)
