package cancel_by_token

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/service/bookings"
)

type fakeBookingService struct {
	gotToken string
	result   string
	err      error
	called   bool
}

func (f *fakeBookingService) CancelByToken(_ context.Context, token string) (string, error) {
	f.called = true
	f.gotToken = token
	return f.result, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const uiURL = "/engine/map"

func doRequest(t *testing.T, svc BookingService, target string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(svc, uiURL, nopLogger{})
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func redirectQuery(t *testing.T, rec *httptest.ResponseRecorder) url.Values {
	t.Helper()
	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/engine/map", loc.Path)
	return loc.Query()
}

func TestHandle_SuccessRedirectsCanceled1(t *testing.T) {
	svc := &fakeBookingService{result: "b-1"}
	rec := doRequest(t, svc, "/api/engine/schedule/cancel?token=abc123")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "abc123", svc.gotToken)

	q := redirectQuery(t, rec)
	assert.Equal(t, "book", q.Get("step"))
	assert.Equal(t, "1", q.Get("canceled"))
}

func TestHandle_UnusableTokenRedirectsCanceled0(t *testing.T) {
	svc := &fakeBookingService{err: bookings.ErrTokenNotUsable}
	rec := doRequest(t, svc, "/api/engine/schedule/cancel?token=expired")

	assert.Equal(t, http.StatusFound, rec.Code)
	q := redirectQuery(t, rec)
	assert.Equal(t, "book", q.Get("step"))
	assert.Equal(t, "0", q.Get("canceled"))
}

func TestHandle_MissingTokenSkipsStorage(t *testing.T) {
	svc := &fakeBookingService{}
	rec := doRequest(t, svc, "/api/engine/schedule/cancel")

	// В хранилище не ходили
	assert.False(t, svc.called)

	assert.Equal(t, http.StatusFound, rec.Code)
	q := redirectQuery(t, rec)
	assert.Equal(t, "0", q.Get("canceled"))
}

func TestHandle_InternalErrorDegradesToRedirect(t *testing.T) {
	svc := &fakeBookingService{err: errors.New("connection reset")}
	rec := doRequest(t, svc, "/api/engine/schedule/cancel?token=abc123")

	// Никаких страниц ошибок - только безопасный редирект
	assert.Equal(t, http.StatusFound, rec.Code)
	q := redirectQuery(t, rec)
	assert.Equal(t, "0", q.Get("canceled"))
}
