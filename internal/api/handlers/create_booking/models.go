package create_booking

import (
	createBookingUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	EmployeeID    string `json:"employeeId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	Day           string `json:"day"`
	StartMinutes  int    `json:"startMinutes"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBookingUC.Request {
	return &createBookingUC.Request{
		EmployeeID:    r.EmployeeID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		Day:           types.DateString(r.Day),
		StartMinutes:  r.StartMinutes,
	}
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	OK      bool                      `json:"ok"`
	Booking *createBookingUC.Response `json:"booking"`
}
