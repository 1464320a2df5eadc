package admin_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/service/employees"
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

// Handle POST /api/engine/schedule/admin
// Тело с blackouts регистрирует blackout-даты, любое другое тело
// выполняет upsert сотрудника (id задан - update, отсутствует - create)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AdminRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		if errors.Is(err, handlers.ErrBodyTooLarge) {
			h.logger.Warn("POST /admin - Request body too large")
			handlers.RespondPayloadTooLarge(w)
			return
		}
		h.logger.Warn("POST /admin - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidBody)
		return
	}

	if req.Blackouts != nil {
		h.handleBlackouts(w, r, req.Blackouts)
		return
	}

	h.handleEmployeeUpsert(w, r, &req)
}

func (h *Handler) handleBlackouts(w http.ResponseWriter, r *http.Request, payload *BlackoutsPayload) {
	err := h.service.RegisterBlackouts(r.Context(), payload.ToBlackoutsRequest())
	if err != nil {
		switch {
		case errors.Is(err, employees.ErrInvalidInput):
			h.logger.Warn("POST /admin - Invalid blackouts payload: %v", err)
			handlers.RespondBadRequest(w, handlers.CodeInvalidBody)

		case errors.Is(err, employees.ErrEmployeeNotFound):
			h.logger.Warn("POST /admin - Blackouts for unknown employee id=%s", payload.EmployeeID)
			handlers.RespondNotFound(w, handlers.CodeNotFound)

		default:
			h.logger.Error("POST /admin - Failed to register blackouts: employee_id=%s, error=%v",
				payload.EmployeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin - Blackouts registered: employee_id=%s, days=%d",
		payload.EmployeeID, len(payload.Days))
	handlers.RespondJSON(w, http.StatusOK, OKResponse{OK: true})
}

func (h *Handler) handleEmployeeUpsert(w http.ResponseWriter, r *http.Request, req *AdminRequest) {
	// id задан - это обновление существующего сотрудника
	if req.ID != nil {
		err := h.service.Update(r.Context(), *req.ID, req.ToUpdateRequest())
		if err != nil {
			switch {
			case errors.Is(err, employees.ErrInvalidInput):
				h.logger.Warn("POST /admin - Invalid employee update: %v", err)
				handlers.RespondBadRequest(w, handlers.CodeInvalidBody)

			case errors.Is(err, employees.ErrEmployeeNotFound):
				h.logger.Warn("POST /admin - Employee not found: id=%s", *req.ID)
				handlers.RespondNotFound(w, handlers.CodeNotFound)

			default:
				h.logger.Error("POST /admin - Failed to update employee: id=%s, error=%v", *req.ID, err)
				handlers.RespondInternalError(w)
			}
			return
		}

		h.logger.Info("POST /admin - Employee updated: id=%s", *req.ID)
		handlers.RespondJSON(w, http.StatusOK, UpsertResponse{OK: true, ID: *req.ID})
		return
	}

	id, err := h.service.Create(r.Context(), req.ToCreateRequest())
	if err != nil {
		switch {
		case errors.Is(err, employees.ErrInvalidInput):
			h.logger.Warn("POST /admin - Invalid employee create: %v", err)
			handlers.RespondBadRequest(w, handlers.CodeInvalidBody)

		default:
			h.logger.Error("POST /admin - Failed to create employee: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin - Employee created: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, UpsertResponse{OK: true, ID: id})
}
