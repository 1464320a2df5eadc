package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

func TestBooking_Overlaps(t *testing.T) {
	// Существующее бронирование 10:00-10:30
	b := &Booking{StartMinutes: 600, DurationMinutes: 30}

	tests := []struct {
		name     string
		start    int
		duration int
		want     bool
	}{
		{name: "identical slot", start: 600, duration: 30, want: true},
		{name: "starts inside", start: 615, duration: 30, want: true},
		{name: "ends inside", start: 585, duration: 30, want: true},
		{name: "fully covers", start: 570, duration: 90, want: true},
		{name: "fully inside", start: 610, duration: 10, want: true},
		{name: "touches end boundary", start: 630, duration: 30, want: false},
		{name: "touches start boundary", start: 570, duration: 30, want: false},
		{name: "well before", start: 480, duration: 30, want: false},
		{name: "well after", start: 720, duration: 30, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Overlaps(tt.start, tt.duration))
		})
	}
}

func TestBooking_EndMinutes(t *testing.T) {
	b := &Booking{StartMinutes: 540, DurationMinutes: 45}
	assert.Equal(t, 585, b.EndMinutes())
}

func TestBooking_TokenWindows(t *testing.T) {
	expires := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	b := &Booking{CancelExpires: expires, RescheduleExpires: expires}

	before := expires.Add(-time.Minute)
	after := expires.Add(time.Minute)

	assert.True(t, b.CancelUsable(before))
	assert.True(t, b.RescheduleUsable(before))

	// Момент истечения уже вне окна
	assert.False(t, b.CancelUsable(expires))
	assert.False(t, b.RescheduleUsable(expires))

	assert.False(t, b.CancelUsable(after))
	assert.False(t, b.RescheduleUsable(after))
}

func TestBooking_StartClock(t *testing.T) {
	b := &Booking{StartMinutes: 750}
	assert.Equal(t, "12:30", b.StartClock())
}

func TestBooking_Day(t *testing.T) {
	b := &Booking{Day: types.DateString("2026-03-15")}
	assert.Equal(t, "2026-03-15", b.Day.String())
}
