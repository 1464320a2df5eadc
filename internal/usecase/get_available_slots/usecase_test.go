package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	employeeRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/employee"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByEmployeeAndDay(_ context.Context, _ string, _ types.DateString) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeEmployeeRepo struct {
	employee *domain.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (*domain.Employee, error) {
	if f.employee == nil || f.employee.ID != id {
		return nil, employeeRepo.ErrEmployeeNotFound
	}
	return f.employee, nil
}

type fakeBlackoutRepo struct {
	blocked bool
}

func (f *fakeBlackoutRepo) HasDay(_ context.Context, _ string, _ types.DateString) (bool, error) {
	return f.blocked, nil
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(emp *domain.Employee, bookings []*domain.Booking, blocked bool) *UseCase {
	uc := NewUseCase(
		&fakeBookingRepo{bookings: bookings},
		&fakeEmployeeRepo{employee: emp},
		&fakeBlackoutRepo{blocked: blocked},
		30,
		nopLogger{},
	)
	uc.timeProvider = &fixedTime{now: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)}
	return uc
}

func testEmployee() *domain.Employee {
	return &domain.Employee{
		ID:                uuid.NewString(),
		Name:              "Anna Fischer",
		Timezone:          "UTC",
		Active:            true,
		DailyStartMinutes: 540,
		DailyEndMinutes:   660,
	}
}

func TestExecute_ReturnsSlots(t *testing.T) {
	emp := testEmployee()
	uc := newTestUseCase(emp, nil, false)

	resp, err := uc.Execute(context.Background(), &Request{
		EmployeeID: emp.ID,
		Day:        types.DateString("2026-03-15"),
	})
	require.NoError(t, err)

	assert.Equal(t, emp.ID, resp.EmployeeID)
	assert.Equal(t, "2026-03-15", resp.Day)
	require.Len(t, resp.Slots, 4)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime)
	assert.Equal(t, 540, resp.Slots[0].StartMinutes)
}

func TestExecute_BookedSlotExcluded(t *testing.T) {
	emp := testEmployee()
	uc := newTestUseCase(emp, []*domain.Booking{
		{StartMinutes: 600, DurationMinutes: 30},
	}, false)

	resp, err := uc.Execute(context.Background(), &Request{
		EmployeeID: emp.ID,
		Day:        types.DateString("2026-03-15"),
	})
	require.NoError(t, err)

	for _, s := range resp.Slots {
		assert.NotEqual(t, 600, s.StartMinutes)
	}
	assert.Len(t, resp.Slots, 3)
}

func TestExecute_InactiveEmployeeHasNoSlots(t *testing.T) {
	emp := testEmployee()
	emp.Active = false
	uc := newTestUseCase(emp, nil, false)

	resp, err := uc.Execute(context.Background(), &Request{
		EmployeeID: emp.ID,
		Day:        types.DateString("2026-03-15"),
	})
	require.NoError(t, err)

	// Пустой список, а не ошибка
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}

func TestExecute_BlackoutDayHasNoSlots(t *testing.T) {
	emp := testEmployee()
	uc := newTestUseCase(emp, nil, true)

	resp, err := uc.Execute(context.Background(), &Request{
		EmployeeID: emp.ID,
		Day:        types.DateString("2026-03-15"),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_EmployeeNotFound(t *testing.T) {
	uc := newTestUseCase(testEmployee(), nil, false)

	_, err := uc.Execute(context.Background(), &Request{
		EmployeeID: uuid.NewString(),
		Day:        types.DateString("2026-03-15"),
	})
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	emp := testEmployee()
	uc := newTestUseCase(emp, nil, false)
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{EmployeeID: "emp-1", Day: types.DateString("2026-03-15")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{EmployeeID: emp.ID, Day: types.DateString("15.03.2026")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
