package domain

// Default employee values applied on create when fields are omitted
const (
	DefaultTimezone          = "America/Chicago"
	DefaultDailyStartMinutes = 540  // 09:00
	DefaultDailyEndMinutes   = 1020 // 17:00
)

// Default booking values
const (
	DefaultSlotDurationMinutes = 30
)

// Business validation constants
const (
	MinNameLength = 2
	MaxNameLength = 200

	MinWindowMinute = 0
	MaxWindowMinute = 1440

	MaxBlackoutDaysPerBatch = 366
)

// ActionTokenBytes размер секрета токена в байтах до hex-кодирования
// 16 байт дают 32-символьный hex-токен
const ActionTokenBytes = 16
