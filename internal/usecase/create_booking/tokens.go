package create_booking

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// issueToken генерирует криптографически стойкий action-токен
// Cancel- и reschedule-токены выпускаются независимо: клиент может
// переносить бронирование после закрытия окна отмены и наоборот
func issueToken() (string, error) {
	buf := make([]byte, domain.ActionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%w: failed to generate token: %v", ErrInternal, err)
	}
	return hex.EncodeToString(buf), nil
}
