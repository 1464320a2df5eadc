package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBookingUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	gotReq *createBookingUC.Request
	result *createBookingUC.Response
	err    error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBookingUC.Request) (*createBookingUC.Response, error) {
	f.gotReq = req
	return f.result, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc CreateBookingUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/engine/schedule/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

const validBody = `{
	"employeeId": "emp-uuid",
	"customerName": "Boris Ivanov",
	"customerEmail": "boris@example.com",
	"day": "2026-03-15",
	"startMinutes": 600
}`

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{result: &createBookingUC.Response{
		BookingID:       "b-1",
		EmployeeID:      "emp-uuid",
		Day:             "2026-03-15",
		StartTime:       "10:00",
		DurationMinutes: 30,
		CancelToken:     "ct",
		RescheduleToken: "rt",
	}}

	rec := doRequest(t, uc, validBody)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	require.NotNil(t, resp.Booking)
	assert.Equal(t, "b-1", resp.Booking.BookingID)
	assert.Equal(t, "ct", resp.Booking.CancelToken)

	// Тело транслировано в запрос use case без искажений
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "emp-uuid", uc.gotReq.EmployeeID)
	assert.Equal(t, "2026-03-15", uc.gotReq.Day.String())
	assert.Equal(t, 600, uc.gotReq.StartMinutes)
}

func TestHandle_MalformedJSON(t *testing.T) {
	uc := &fakeUseCase{}
	rec := doRequest(t, uc, `{"employeeId":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_body")
	assert.Nil(t, uc.gotReq)
}

func TestHandle_ValidationError(t *testing.T) {
	uc := &fakeUseCase{err: createBookingUC.ErrInvalidInput}
	rec := doRequest(t, uc, validBody)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_body")
}

func TestHandle_EmployeeNotFound(t *testing.T) {
	uc := &fakeUseCase{err: createBookingUC.ErrEmployeeNotFound}
	rec := doRequest(t, uc, validBody)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "employee_not_found")
}

func TestHandle_SlotUnavailableFamily(t *testing.T) {
	// Все причины недоступности слота дают один код 409
	for _, err := range []error{
		createBookingUC.ErrSlotTaken,
		createBookingUC.ErrBlackoutDay,
		createBookingUC.ErrOutsideWorkingHours,
		createBookingUC.ErrDateInPast,
		createBookingUC.ErrEmployeeInactive,
	} {
		uc := &fakeUseCase{err: err}
		rec := doRequest(t, uc, validBody)

		assert.Equal(t, http.StatusConflict, rec.Code, "error: %v", err)
		assert.Contains(t, rec.Body.String(), "slot_unavailable")
	}
}

func TestHandle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: createBookingUC.ErrInternal}
	rec := doRequest(t, uc, validBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal_error")
}
