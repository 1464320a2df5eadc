package list_employees

import (
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/service/employees/models"
)

type Handler struct {
	service EmployeeService
	logger  Logger
}

func NewHandler(service EmployeeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ListResponse ответ листинга сотрудников
type ListResponse struct {
	OK        bool                       `json:"ok"`
	Employees []*models.EmployeeResponse `json:"employees"`
}

// Handle GET /api/engine/schedule/employees
// Возвращает только активных сотрудников, отсортированных по имени
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	employees, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /employees - Failed to list employees: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /employees - Listed %d employees", len(employees))
	handlers.RespondJSON(w, http.StatusOK, ListResponse{OK: true, Employees: employees})
}
