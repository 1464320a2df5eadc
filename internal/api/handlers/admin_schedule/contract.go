package admin_schedule

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/service/employees/models"
)

// EmployeeService контракт сервиса сотрудников
type EmployeeService interface {
	Create(ctx context.Context, req *models.CreateEmployeeRequest) (string, error)
	Update(ctx context.Context, id string, req *models.UpdateEmployeeRequest) error
	RegisterBlackouts(ctx context.Context, req *models.RegisterBlackoutsRequest) error
}

// Logger интерфейс логгера
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
