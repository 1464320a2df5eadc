package employees

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	employeeRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/employee"
	"github.com/m04kA/SMC-ScheduleService/internal/service/employees/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// fakeEmployeeRepo in-memory реализация EmployeeRepository
type fakeEmployeeRepo struct {
	employees map[string]*domain.Employee
	created   []*domain.Employee
	patches   map[string]*domain.EmployeePatch
	failWith  error
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		employees: make(map[string]*domain.Employee),
		patches:   make(map[string]*domain.EmployeePatch),
	}
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp *domain.Employee) (*domain.Employee, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.created = append(f.created, emp)
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, id string, patch *domain.EmployeePatch) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.employees[id]; !ok {
		return employeeRepo.ErrEmployeeNotFound
	}
	f.patches[id] = patch
	return nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (*domain.Employee, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	emp, ok := f.employees[id]
	if !ok {
		return nil, employeeRepo.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) ListActive(_ context.Context) ([]*domain.Employee, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var result []*domain.Employee
	for _, emp := range f.employees {
		if emp.Active {
			result = append(result, emp)
		}
	}
	return result, nil
}

// fakeBlackoutRepo записывает зарегистрированные батчи
type fakeBlackoutRepo struct {
	batches  map[string][]types.DateString
	failWith error
}

func newFakeBlackoutRepo() *fakeBlackoutRepo {
	return &fakeBlackoutRepo{batches: make(map[string][]types.DateString)}
}

func (f *fakeBlackoutRepo) RegisterBatch(_ context.Context, employeeID string, days []types.DateString) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.batches[employeeID] = append(f.batches[employeeID], days...)
	return nil
}

func (f *fakeBlackoutRepo) ListDays(_ context.Context, employeeID string) ([]types.DateString, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.batches[employeeID], nil
}

// fakeTxManager выполняет callback без транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *fakeEmployeeRepo, *fakeBlackoutRepo, *fakeTxManager) {
	empRepo := newFakeEmployeeRepo()
	boRepo := newFakeBlackoutRepo()
	tx := &fakeTxManager{}
	svc := NewService(empRepo, boRepo, tx, nopLogger{})
	return svc, empRepo, boRepo, tx
}

func TestCreate_AppliesDefaults(t *testing.T) {
	svc, empRepo, _, _ := newTestService()

	id, err := svc.Create(context.Background(), &models.CreateEmployeeRequest{
		Name: "Anna Fischer",
	})
	require.NoError(t, err)

	// Без явного id генерируется валидный uuid
	_, parseErr := uuid.Parse(id)
	assert.NoError(t, parseErr)

	require.Len(t, empRepo.created, 1)
	created := empRepo.created[0]
	assert.Equal(t, domain.DefaultTimezone, created.Timezone)
	assert.Equal(t, domain.DefaultDailyStartMinutes, created.DailyStartMinutes)
	assert.Equal(t, domain.DefaultDailyEndMinutes, created.DailyEndMinutes)
	assert.True(t, created.Active)
	assert.Nil(t, created.Email)
}

func TestCreate_ExplicitValuesWin(t *testing.T) {
	svc, empRepo, _, _ := newTestService()

	explicitID := uuid.NewString()
	id, err := svc.Create(context.Background(), &models.CreateEmployeeRequest{
		ID:                ptr.Ptr(explicitID),
		Name:              "Boris Ivanov",
		Email:             ptr.Ptr("boris@example.com"),
		Timezone:          ptr.Ptr("Europe/Berlin"),
		Active:            ptr.Ptr(false),
		DailyStartMinutes: ptr.Ptr(480),
		DailyEndMinutes:   ptr.Ptr(960),
	})
	require.NoError(t, err)
	assert.Equal(t, explicitID, id)

	created := empRepo.created[0]
	assert.Equal(t, "Europe/Berlin", created.Timezone)
	assert.False(t, created.Active)
	assert.Equal(t, 480, created.DailyStartMinutes)
	assert.Equal(t, 960, created.DailyEndMinutes)
}

func TestCreate_Validation(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	tests := []struct {
		name string
		req  *models.CreateEmployeeRequest
	}{
		{
			name: "name too short",
			req:  &models.CreateEmployeeRequest{Name: "A"},
		},
		{
			name: "bad email",
			req:  &models.CreateEmployeeRequest{Name: "Anna Fischer", Email: ptr.Ptr("not-an-email")},
		},
		{
			name: "unknown timezone",
			req:  &models.CreateEmployeeRequest{Name: "Anna Fischer", Timezone: ptr.Ptr("Mars/Olympus")},
		},
		{
			name: "inverted window",
			req: &models.CreateEmployeeRequest{
				Name:              "Anna Fischer",
				DailyStartMinutes: ptr.Ptr(1020),
				DailyEndMinutes:   ptr.Ptr(540),
			},
		},
		{
			name: "start equals end",
			req: &models.CreateEmployeeRequest{
				Name:              "Anna Fischer",
				DailyStartMinutes: ptr.Ptr(600),
				DailyEndMinutes:   ptr.Ptr(600),
			},
		},
		{
			name: "end past midnight",
			req: &models.CreateEmployeeRequest{
				Name:            "Anna Fischer",
				DailyEndMinutes: ptr.Ptr(1500),
			},
		},
		{
			name: "non-uuid id",
			req:  &models.CreateEmployeeRequest{ID: ptr.Ptr("emp-1"), Name: "Anna Fischer"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreate_InvertedWindowAgainstDefault(t *testing.T) {
	svc, _, _, _ := newTestService()

	// Задан только start, но он позже дефолтного end (17:00)
	_, err := svc.Create(context.Background(), &models.CreateEmployeeRequest{
		Name:              "Anna Fischer",
		DailyStartMinutes: ptr.Ptr(1100),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_PatchKeepsOmittedFields(t *testing.T) {
	svc, empRepo, _, _ := newTestService()
	ctx := context.Background()

	id := uuid.NewString()
	empRepo.employees[id] = &domain.Employee{
		ID:                id,
		Name:              "Anna Fischer",
		Timezone:          "Europe/Berlin",
		Active:            true,
		DailyStartMinutes: 480,
		DailyEndMinutes:   960,
	}

	err := svc.Update(ctx, id, &models.UpdateEmployeeRequest{
		Name: ptr.Ptr("Anna Fischer-Lange"),
	})
	require.NoError(t, err)

	// В patch попадает только заданное поле
	patch := empRepo.patches[id]
	require.NotNil(t, patch)
	assert.NotNil(t, patch.Name)
	assert.Nil(t, patch.Timezone)
	assert.Nil(t, patch.Active)
	assert.Nil(t, patch.DailyStartMinutes)
	assert.Nil(t, patch.DailyEndMinutes)
}

func TestUpdate_EmptyPatchIsNoop(t *testing.T) {
	svc, empRepo, _, _ := newTestService()

	id := uuid.NewString()
	empRepo.employees[id] = &domain.Employee{
		ID: id, Name: "Anna Fischer", Timezone: "UTC",
		DailyStartMinutes: 540, DailyEndMinutes: 1020, Active: true,
	}

	err := svc.Update(context.Background(), id, &models.UpdateEmployeeRequest{})
	require.NoError(t, err)
	assert.Empty(t, empRepo.patches)
}

func TestUpdate_WindowValidatedAgainstStored(t *testing.T) {
	svc, empRepo, _, _ := newTestService()

	id := uuid.NewString()
	empRepo.employees[id] = &domain.Employee{
		ID: id, Name: "Anna Fischer", Timezone: "UTC",
		DailyStartMinutes: 540, DailyEndMinutes: 1020, Active: true,
	}

	// Новый start инвертирует окно относительно сохранённого end
	err := svc.Update(context.Background(), id, &models.UpdateEmployeeRequest{
		DailyStartMinutes: ptr.Ptr(1100),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Согласованная пара границ в одном запросе проходит
	err = svc.Update(context.Background(), id, &models.UpdateEmployeeRequest{
		DailyStartMinutes: ptr.Ptr(1100),
		DailyEndMinutes:   ptr.Ptr(1300),
	})
	assert.NoError(t, err)
}

func TestUpdate_NotFound(t *testing.T) {
	svc, _, _, _ := newTestService()

	err := svc.Update(context.Background(), uuid.NewString(), &models.UpdateEmployeeRequest{
		Name: ptr.Ptr("Nobody Here"),
	})
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestList_ReturnsActiveOnly(t *testing.T) {
	svc, empRepo, _, _ := newTestService()

	activeID := uuid.NewString()
	inactiveID := uuid.NewString()
	empRepo.employees[activeID] = &domain.Employee{ID: activeID, Name: "Active", Active: true}
	empRepo.employees[inactiveID] = &domain.Employee{ID: inactiveID, Name: "Inactive", Active: false}

	result, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, activeID, result[0].ID)
}

func TestRegisterBlackouts_HappyPath(t *testing.T) {
	svc, empRepo, boRepo, tx := newTestService()

	id := uuid.NewString()
	empRepo.employees[id] = &domain.Employee{ID: id, Name: "Anna Fischer", Active: true}

	err := svc.RegisterBlackouts(context.Background(), &models.RegisterBlackoutsRequest{
		EmployeeID: id,
		Days:       []string{"2026-12-24", "2026-12-25"},
	})
	require.NoError(t, err)

	// Батч ушёл внутри транзакции
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, []types.DateString{"2026-12-24", "2026-12-25"}, boRepo.batches[id])
}

func TestRegisterBlackouts_Validation(t *testing.T) {
	svc, empRepo, boRepo, _ := newTestService()
	ctx := context.Background()

	id := uuid.NewString()
	empRepo.employees[id] = &domain.Employee{ID: id, Name: "Anna Fischer", Active: true}

	tests := []struct {
		name string
		req  *models.RegisterBlackoutsRequest
	}{
		{
			name: "empty days",
			req:  &models.RegisterBlackoutsRequest{EmployeeID: id, Days: []string{}},
		},
		{
			name: "invalid date in the middle rejects whole batch",
			req:  &models.RegisterBlackoutsRequest{EmployeeID: id, Days: []string{"2026-12-24", "bad", "2026-12-26"}},
		},
		{
			name: "non-uuid employee id",
			req:  &models.RegisterBlackoutsRequest{EmployeeID: "emp-1", Days: []string{"2026-12-24"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.RegisterBlackouts(ctx, tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	// Ничего не записано
	assert.Empty(t, boRepo.batches)
}

func TestRegisterBlackouts_UnknownEmployee(t *testing.T) {
	svc, _, boRepo, _ := newTestService()

	err := svc.RegisterBlackouts(context.Background(), &models.RegisterBlackoutsRequest{
		EmployeeID: uuid.NewString(),
		Days:       []string{"2026-12-24"},
	})
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
	assert.Empty(t, boRepo.batches)
}

func TestRegisterBlackouts_RepoErrorWrapped(t *testing.T) {
	svc, empRepo, boRepo, _ := newTestService()

	id := uuid.NewString()
	empRepo.employees[id] = &domain.Employee{ID: id, Name: "Anna Fischer", Active: true}
	boRepo.failWith = errors.New("connection reset")

	err := svc.RegisterBlackouts(context.Background(), &models.RegisterBlackoutsRequest{
		EmployeeID: id,
		Days:       []string{"2026-12-24"},
	})
	assert.ErrorIs(t, err, ErrInternal)
}
