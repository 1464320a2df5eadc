package employees

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("employees.service: invalid input data")

	// ErrEmployeeNotFound возвращается, когда сотрудник не найден
	ErrEmployeeNotFound = errors.New("employees.service: employee not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("employees.service: internal error")
)
