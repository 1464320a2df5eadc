package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// fakeBookingRepo реализация BookingRepository с одним живым бронированием
type fakeBookingRepo struct {
	booking  *domain.Booking
	deleted  bool
	failWith error
}

func (f *fakeBookingRepo) DeleteByCancelToken(_ context.Context, token string) (string, error) {
	if f.failWith != nil {
		return "", f.failWith
	}
	if f.booking == nil || f.deleted || f.booking.CancelToken != token {
		return "", bookingRepo.ErrBookingNotFound
	}
	f.deleted = true
	return f.booking.ID, nil
}

func (f *fakeBookingRepo) GetByRescheduleToken(_ context.Context, token string) (*domain.Booking, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if f.booking == nil || f.deleted || f.booking.RescheduleToken != token {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return f.booking, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func liveBooking() *domain.Booking {
	return &domain.Booking{
		ID:              "b-1",
		EmployeeID:      "e-1",
		CustomerName:    "Anna Fischer",
		Day:             types.DateString("2026-03-15"),
		StartMinutes:    600,
		DurationMinutes: 30,
		CancelToken:     "cancel-token",
		RescheduleToken: "reschedule-token",
		CancelExpires:   time.Now().Add(time.Hour),
	}
}

func TestCancelByToken_Success(t *testing.T) {
	repo := &fakeBookingRepo{booking: liveBooking()}
	svc := NewService(repo, nopLogger{})

	id, err := svc.CancelByToken(context.Background(), "cancel-token")
	require.NoError(t, err)
	assert.Equal(t, "b-1", id)
	assert.True(t, repo.deleted)
}

func TestCancelByToken_SingleUse(t *testing.T) {
	repo := &fakeBookingRepo{booking: liveBooking()}
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	_, err := svc.CancelByToken(ctx, "cancel-token")
	require.NoError(t, err)

	// Повторная отмена тем же токеном невозможна
	_, err = svc.CancelByToken(ctx, "cancel-token")
	assert.ErrorIs(t, err, ErrTokenNotUsable)
}

func TestCancelByToken_UnknownTokenCollapses(t *testing.T) {
	repo := &fakeBookingRepo{booking: liveBooking()}
	svc := NewService(repo, nopLogger{})

	// Неверный токен неотличим от истёкшего или использованного
	_, err := svc.CancelByToken(context.Background(), "wrong-token")
	assert.ErrorIs(t, err, ErrTokenNotUsable)
	assert.False(t, repo.deleted)
}

func TestCancelByToken_RepoErrorWrapped(t *testing.T) {
	repo := &fakeBookingRepo{failWith: errors.New("connection reset")}
	svc := NewService(repo, nopLogger{})

	_, err := svc.CancelByToken(context.Background(), "cancel-token")
	assert.ErrorIs(t, err, ErrInternal)
	assert.NotErrorIs(t, err, ErrTokenNotUsable)
}

func TestResolveReschedule_Success(t *testing.T) {
	b := liveBooking()
	repo := &fakeBookingRepo{booking: b}
	svc := NewService(repo, nopLogger{})

	resolved, err := svc.ResolveReschedule(context.Background(), "reschedule-token")
	require.NoError(t, err)
	assert.Equal(t, "b-1", resolved.BookingID)
	assert.Equal(t, "e-1", resolved.EmployeeID)
	assert.Equal(t, "2026-03-15", resolved.Day)
	assert.Equal(t, "10:00", resolved.StartTime)
	assert.Equal(t, "reschedule-token", resolved.Token)
}

func TestResolveReschedule_DoesNotConsumeToken(t *testing.T) {
	repo := &fakeBookingRepo{booking: liveBooking()}
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	_, err := svc.ResolveReschedule(ctx, "reschedule-token")
	require.NoError(t, err)

	// Токен можно предъявлять повторно, пока бронирование живо
	_, err = svc.ResolveReschedule(ctx, "reschedule-token")
	assert.NoError(t, err)
}

func TestResolveReschedule_UnknownToken(t *testing.T) {
	repo := &fakeBookingRepo{booking: liveBooking()}
	svc := NewService(repo, nopLogger{})

	_, err := svc.ResolveReschedule(context.Background(), "wrong-token")
	assert.ErrorIs(t, err, ErrTokenNotUsable)
}
