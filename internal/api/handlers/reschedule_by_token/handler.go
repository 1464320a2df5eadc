package reschedule_by_token

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

// Handle GET /api/engine/schedule/reschedule?token=...
// Бронирование не изменяется: при живом токене редирект уносит его
// в интерфейс бронирования как корреляционный параметр r, и человек
// выбирает новый слот там. Любой провал - редирект без токена,
// причины провала наружу неразличимы
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")

	if token == "" {
		h.logger.Warn("GET /reschedule - Missing token")
		h.redirect(w, r, "")
		return
	}

	resolved, err := h.service.ResolveReschedule(r.Context(), token)
	if err != nil {
		if errors.Is(err, bookings.ErrTokenNotUsable) {
			h.logger.Info("GET /reschedule - Token not usable")
		} else {
			h.logger.Error("GET /reschedule - Failed to resolve: %v", err)
		}
		h.redirect(w, r, "")
		return
	}

	h.logger.Info("GET /reschedule - Booking id=%s handed off to rebooking flow", resolved.BookingID)
	h.redirect(w, r, resolved.Token)
}

func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, token string) {
	target, err := url.Parse(h.bookingUIURL)
	if err != nil {
		h.logger.Error("GET /reschedule - Invalid booking UI URL %q: %v", h.bookingUIURL, err)
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	q := target.Query()
	q.Set("step", "book")
	if token != "" {
		q.Set("r", token)
	}
	target.RawQuery = q.Encode()

	http.Redirect(w, r, target.String(), http.StatusFound)
}
