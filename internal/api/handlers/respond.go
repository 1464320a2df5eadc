package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
)

// maxBodyBytes предельный размер тела запроса
// Запросы крупнее отклоняются отдельным кодом, чтобы клиент мог отступить
const maxBodyBytes = 64 * 1024

// ErrBodyTooLarge возвращается из DecodeJSON при превышении лимита тела
var ErrBodyTooLarge = errors.New("handlers: request body too large")

// Машиночитаемые коды ошибок в ответах
const (
	CodeInvalidBody     = "invalid_body"
	CodeUnauthorized    = "unauthorized"
	CodeNotFound        = "not_found"
	CodePayloadTooLarge = "payload_too_large"
	CodeInternalError   = "internal_error"
)

// errorResponse единый конверт ошибки
type errorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// DecodeJSON декодирует тело запроса с ограничением размера
func DecodeJSON(r *http.Request, dst interface{}) error {
	limited := http.MaxBytesReader(nil, r.Body, maxBodyBytes)

	if err := json.NewDecoder(limited).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return ErrBodyTooLarge
		}
		return err
	}

	return nil
}

// RespondJSON пишет JSON-ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if payload == nil {
		return
	}

	// Ошибку записи уже не вернуть клиенту
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondBadRequest пишет 400 с машиночитаемым кодом ошибки
func RespondBadRequest(w http.ResponseWriter, code string) {
	RespondJSON(w, http.StatusBadRequest, errorResponse{OK: false, Error: code})
}

// RespondUnauthorized пишет 401
func RespondUnauthorized(w http.ResponseWriter, code string) {
	RespondJSON(w, http.StatusUnauthorized, errorResponse{OK: false, Error: code})
}

// RespondNotFound пишет 404
func RespondNotFound(w http.ResponseWriter, code string) {
	RespondJSON(w, http.StatusNotFound, errorResponse{OK: false, Error: code})
}

// RespondConflict пишет 409
func RespondConflict(w http.ResponseWriter, code string) {
	RespondJSON(w, http.StatusConflict, errorResponse{OK: false, Error: code})
}

// RespondPayloadTooLarge пишет 413 - отдельный код, чтобы клиент мог отступить
func RespondPayloadTooLarge(w http.ResponseWriter) {
	RespondJSON(w, http.StatusRequestEntityTooLarge, errorResponse{OK: false, Error: CodePayloadTooLarge})
}

// RespondInternalError пишет 500 без деталей - подробности остаются в логах
func RespondInternalError(w http.ResponseWriter) {
	RespondJSON(w, http.StatusInternalServerError, errorResponse{OK: false, Error: CodeInternalError})
}
