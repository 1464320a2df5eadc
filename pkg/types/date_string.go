package types

import (
	"errors"
	"fmt"
	"time"
)

// DateFormat формат календарной даты без времени
const DateFormat = "2006-01-02"

// ErrInvalidDate возвращается при некорректном формате даты
var ErrInvalidDate = errors.New("types: invalid date format, expected YYYY-MM-DD")

// DateString календарная дата в формате YYYY-MM-DD без компонента времени
// Используется для blackout-дат и дат бронирования
type DateString string

// NewDateString создает DateString из time.Time
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(DateFormat))
}

// NewDateStringFromString парсит и валидирует строку даты
func NewDateStringFromString(s string) (DateString, error) {
	d := DateString(s)
	if err := d.Validate(); err != nil {
		return "", err
	}
	return d, nil
}

// Validate проверяет формат даты
func (d DateString) Validate() error {
	if _, err := time.Parse(DateFormat, string(d)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, string(d))
	}
	return nil
}

// ToTime возвращает полночь этой даты в указанной таймзоне
func (d DateString) ToTime(loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, string(d), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, string(d))
	}
	return t, nil
}

// IsBefore сравнивает даты лексикографически (формат это позволяет)
func (d DateString) IsBefore(other DateString) bool {
	return string(d) < string(other)
}

// IsZero проверяет, что дата не задана
func (d DateString) IsZero() bool {
	return string(d) == ""
}

func (d DateString) String() string {
	return string(d)
}
