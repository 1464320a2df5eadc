package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrEmployeeNotFound возвращается, когда сотрудник не найден
	ErrEmployeeNotFound = errors.New("create_booking: employee not found")

	// ErrEmployeeInactive возвращается при попытке бронирования к деактивированному сотруднику
	ErrEmployeeInactive = errors.New("create_booking: employee is inactive")

	// ErrDateInPast возвращается, когда слот уже начался или прошёл
	ErrDateInPast = errors.New("create_booking: slot is in the past")

	// ErrBlackoutDay возвращается, когда дата является blackout-датой сотрудника
	ErrBlackoutDay = errors.New("create_booking: employee has a blackout on this day")

	// ErrOutsideWorkingHours возвращается, когда слот не помещается в рабочее окно
	ErrOutsideWorkingHours = errors.New("create_booking: slot is outside working hours")

	// ErrSlotTaken возвращается, когда слот пересекается с существующим бронированием
	ErrSlotTaken = errors.New("create_booking: slot is already taken")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
