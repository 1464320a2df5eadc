package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	createBookingUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_booking"
)

// Машиночитаемые коды отказов создания бронирования
const (
	codeEmployeeNotFound = "employee_not_found"
	codeSlotUnavailable  = "slot_unavailable"
)

type Handler struct {
	usecase CreateBookingUseCase
	logger  Logger
}

func NewHandler(usecase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle POST /api/engine/schedule/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		if errors.Is(err, handlers.ErrBodyTooLarge) {
			h.logger.Warn("POST /bookings - Request body too large")
			handlers.RespondPayloadTooLarge(w)
			return
		}
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidBody)
		return
	}

	booking, err := h.usecase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBookingUC.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, handlers.CodeInvalidBody)

		case errors.Is(err, createBookingUC.ErrEmployeeNotFound):
			h.logger.Warn("POST /bookings - Employee not found: id=%s", req.EmployeeID)
			handlers.RespondNotFound(w, codeEmployeeNotFound)

		// Слот недоступен по любой причине: занят, blackout, вне рабочего
		// окна, в прошлом или сотрудник деактивирован
		case errors.Is(err, createBookingUC.ErrSlotTaken),
			errors.Is(err, createBookingUC.ErrBlackoutDay),
			errors.Is(err, createBookingUC.ErrOutsideWorkingHours),
			errors.Is(err, createBookingUC.ErrDateInPast),
			errors.Is(err, createBookingUC.ErrEmployeeInactive):
			h.logger.Warn("POST /bookings - Slot unavailable: employee_id=%s, error=%v", req.EmployeeID, err)
			handlers.RespondConflict(w, codeSlotUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: id=%s", booking.BookingID)
	handlers.RespondJSON(w, http.StatusCreated, CreateBookingResponse{OK: true, Booking: booking})
}
