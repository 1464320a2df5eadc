package list_employees

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/service/employees/models"
)

// EmployeeService контракт сервиса сотрудников
type EmployeeService interface {
	List(ctx context.Context) ([]*models.EmployeeResponse, error)
}

// Logger интерфейс логгера
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
