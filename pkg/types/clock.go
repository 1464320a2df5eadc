package types

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 1440

// FormatClock форматирует минуты с начала суток в строку HH:MM
// Значения вне [0, 1440) нормализуются по модулю суток
func FormatClock(minutes int) string {
	minutes %= MinutesPerDay
	if minutes < 0 {
		minutes += MinutesPerDay
	}

	h := minutes / 60
	m := minutes % 60

	buf := [5]byte{
		byte('0' + h/10),
		byte('0' + h%10),
		':',
		byte('0' + m/10),
		byte('0' + m%10),
	}
	return string(buf[:])
}
