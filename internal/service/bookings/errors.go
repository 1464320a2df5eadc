package bookings

import "errors"

var (
	// ErrTokenNotUsable возвращается, когда токен не резолвится в живую запись
	// Неверный токен, истёкший токен и уже использованный токен намеренно
	// неразличимы - иначе эндпоинт превращается в оракул для перебора токенов
	ErrTokenNotUsable = errors.New("bookings.service: token not usable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)
