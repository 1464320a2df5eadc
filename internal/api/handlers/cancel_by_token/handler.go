package cancel_by_token

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/m04kA/SMC-ScheduleService/internal/service/bookings"
)

type Handler struct {
	service      BookingService
	bookingUIURL string
	logger       Logger
}

func NewHandler(service BookingService, bookingUIURL string, logger Logger) *Handler {
	return &Handler{
		service:      service,
		bookingUIURL: bookingUIURL,
		logger:       logger,
	}
}

// Handle GET /api/engine/schedule/cancel?token=...
// Эндпоинт открывается по ссылке из письма/SMS, поэтому на любой исход
// отвечает редиректом в интерфейс бронирования, а не страницей ошибки.
// canceled=1 только при реально удалённом бронировании; неверный,
// истёкший и уже использованный токен дают одинаковый canceled=0
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")

	// Без токена в хранилище не ходим
	if token == "" {
		h.logger.Warn("GET /cancel - Missing token")
		h.redirect(w, r, "0")
		return
	}

	_, err := h.service.CancelByToken(r.Context(), token)
	if err != nil {
		if errors.Is(err, bookings.ErrTokenNotUsable) {
			h.logger.Info("GET /cancel - Token not usable")
		} else {
			// Внутренняя ошибка тоже деградирует в безопасный редирект
			h.logger.Error("GET /cancel - Failed to cancel: %v", err)
		}
		h.redirect(w, r, "0")
		return
	}

	h.logger.Info("GET /cancel - Booking cancelled")
	h.redirect(w, r, "1")
}

func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, canceled string) {
	target, err := url.Parse(h.bookingUIURL)
	if err != nil {
		h.logger.Error("GET /cancel - Invalid booking UI URL %q: %v", h.bookingUIURL, err)
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	q := target.Query()
	q.Set("step", "book")
	q.Set("canceled", canceled)
	target.RawQuery = q.Encode()

	http.Redirect(w, r, target.String(), http.StatusFound)
}
