package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	// Для token-запросов это объединяет "неверный токен", "уже отменено"
	// и "токен истёк" - различать эти случаи наружу нельзя
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
