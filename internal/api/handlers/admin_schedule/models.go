package admin_schedule

import (
	"github.com/m04kA/SMC-ScheduleService/internal/service/employees/models"
)

// AdminRequest тело административного запроса
// Эндпоинт один, операция определяется формой тела: наличие blackouts
// переключает запрос на регистрацию blackout-дат, иначе это upsert сотрудника
type AdminRequest struct {
	Blackouts *BlackoutsPayload `json:"blackouts,omitempty"`

	// Поля сотрудника; id задан - update, отсутствует - create
	ID                *string `json:"id,omitempty"`
	Name              *string `json:"name,omitempty"`
	Email             *string `json:"email,omitempty"`
	Timezone          *string `json:"timezone,omitempty"`
	Active            *bool   `json:"active,omitempty"`
	DailyStartMinutes *int    `json:"dailyStartMinutes,omitempty"`
	DailyEndMinutes   *int    `json:"dailyEndMinutes,omitempty"`
	SlackWebhookURL   *string `json:"slackWebhookUrl,omitempty"`
}

// BlackoutsPayload payload регистрации blackout-дат
type BlackoutsPayload struct {
	EmployeeID string   `json:"employeeId"`
	Days       []string `json:"days"`
}

// ToBlackoutsRequest конвертирует payload в модель сервиса
func (p *BlackoutsPayload) ToBlackoutsRequest() *models.RegisterBlackoutsRequest {
	return &models.RegisterBlackoutsRequest{
		EmployeeID: p.EmployeeID,
		Days:       p.Days,
	}
}

// ToCreateRequest конвертирует тело в запрос создания сотрудника
func (r *AdminRequest) ToCreateRequest() *models.CreateEmployeeRequest {
	name := ""
	if r.Name != nil {
		name = *r.Name
	}

	return &models.CreateEmployeeRequest{
		ID:                r.ID,
		Name:              name,
		Email:             r.Email,
		Timezone:          r.Timezone,
		Active:            r.Active,
		DailyStartMinutes: r.DailyStartMinutes,
		DailyEndMinutes:   r.DailyEndMinutes,
		SlackWebhookURL:   r.SlackWebhookURL,
	}
}

// ToUpdateRequest конвертирует тело в patch-запрос обновления сотрудника
func (r *AdminRequest) ToUpdateRequest() *models.UpdateEmployeeRequest {
	return &models.UpdateEmployeeRequest{
		Name:              r.Name,
		Email:             r.Email,
		Timezone:          r.Timezone,
		Active:            r.Active,
		DailyStartMinutes: r.DailyStartMinutes,
		DailyEndMinutes:   r.DailyEndMinutes,
		SlackWebhookURL:   r.SlackWebhookURL,
	}
}

// UpsertResponse ответ на upsert сотрудника
type UpsertResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

// OKResponse ответ на регистрацию blackout-дат
type OKResponse struct {
	OK bool `json:"ok"`
}
