package models

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// CreateEmployeeRequest запрос на создание сотрудника
// Опущенные поля получают значения по умолчанию (таймзона, рабочее окно, active)
type CreateEmployeeRequest struct {
	ID                *string
	Name              string
	Email             *string
	Timezone          *string
	Active            *bool
	DailyStartMinutes *int
	DailyEndMinutes   *int
	SlackWebhookURL   *string
}

// UpdateEmployeeRequest запрос на частичное обновление сотрудника
// nil-поле означает "оставить сохранённое значение"; значения по умолчанию
// на update не применяются
type UpdateEmployeeRequest struct {
	Name              *string
	Email             *string
	Timezone          *string
	Active            *bool
	DailyStartMinutes *int
	DailyEndMinutes   *int
	SlackWebhookURL   *string
}

// ToDomainPatch конвертирует запрос в domain-модель patch
func (r *UpdateEmployeeRequest) ToDomainPatch() *domain.EmployeePatch {
	return &domain.EmployeePatch{
		Name:              r.Name,
		Email:             r.Email,
		Timezone:          r.Timezone,
		Active:            r.Active,
		DailyStartMinutes: r.DailyStartMinutes,
		DailyEndMinutes:   r.DailyEndMinutes,
		SlackWebhookURL:   r.SlackWebhookURL,
	}
}

// RegisterBlackoutsRequest запрос на регистрацию blackout-дат
type RegisterBlackoutsRequest struct {
	EmployeeID string
	Days       []string
}

// EmployeeResponse модель сотрудника для выдачи наружу
type EmployeeResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Email             *string `json:"email,omitempty"`
	Timezone          string  `json:"timezone"`
	Active            bool    `json:"active"`
	DailyStartMinutes int     `json:"dailyStartMinutes"`
	DailyEndMinutes   int     `json:"dailyEndMinutes"`
	SlackWebhookURL   *string `json:"slackWebhookUrl,omitempty"`
}

// FromDomainEmployee конвертирует domain-модель в response
func FromDomainEmployee(e *domain.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:                e.ID,
		Name:              e.Name,
		Email:             e.Email,
		Timezone:          e.Timezone,
		Active:            e.Active,
		DailyStartMinutes: e.DailyStartMinutes,
		DailyEndMinutes:   e.DailyEndMinutes,
		SlackWebhookURL:   e.SlackWebhookURL,
	}
}

// FromDomainEmployeeList конвертирует список domain-моделей в response
func FromDomainEmployeeList(employees []*domain.Employee) []*EmployeeResponse {
	result := make([]*EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		result = append(result, FromDomainEmployee(e))
	}
	return result
}
