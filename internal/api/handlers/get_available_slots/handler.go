package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	getAvailableSlotsUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

const codeEmployeeNotFound = "employee_not_found"

type Handler struct {
	usecase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(usecase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	OK    bool                          `json:"ok"`
	Slots *getAvailableSlotsUC.Response `json:"slots"`
}

// Handle GET /api/engine/schedule/employees/{employeeId}/available-slots?day=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	employeeID := vars["employeeId"]
	day := r.URL.Query().Get("day")

	resp, err := h.usecase.Execute(r.Context(), &getAvailableSlotsUC.Request{
		EmployeeID: employeeID,
		Day:        types.DateString(day),
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlotsUC.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid request: %v", err)
			handlers.RespondBadRequest(w, handlers.CodeInvalidBody)

		case errors.Is(err, getAvailableSlotsUC.ErrEmployeeNotFound):
			h.logger.Warn("GET /available-slots - Employee not found: id=%s", employeeID)
			handlers.RespondNotFound(w, codeEmployeeNotFound)

		default:
			h.logger.Error("GET /available-slots - Failed: employee_id=%s, error=%v", employeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-slots - employee_id=%s day=%s -> %d slots",
		employeeID, day, len(resp.Slots))
	handlers.RespondJSON(w, http.StatusOK, SlotsResponse{OK: true, Slots: resp})
}
