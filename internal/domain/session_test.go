package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdm/GameClub-BookingService/pkg/types"
)

func newSession(t *testing.T, status SessionStatus, date time.Time, start string, durationMinutes int) *GameSession {
	t.Helper()

	startTime, err := types.NewTimeStringFromString(start)
	require.NoError(t, err)

	return &GameSession{
		ID:              1,
		PlatformID:      "ps5",
		OwnerID:         42,
		SessionDate:     date,
		StartTime:       startTime,
		DurationMinutes: durationMinutes,
		PlayerCount:     1,
		Status:          status,
	}
}

func TestGameSession_EndTime(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	s := newSession(t, StatusBooked, date, "16:00", 90)

	end, err := s.EndTime()
	require.NoError(t, err)
	assert.Equal(t, "17:30", end.String())
}

func TestGameSession_IsActive(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	// Завершенная сессия остается активной: её интервал был занят
	assert.True(t, newSession(t, StatusBooked, date, "10:00", 60).IsActive())
	assert.True(t, newSession(t, StatusCompleted, date, "10:00", 60).IsActive())
	assert.False(t, newSession(t, StatusCancelled, date, "10:00", 60).IsActive())
}

func TestGameSession_CanBeCancelled(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name   string
		status SessionStatus
		now    time.Time
		want   bool
	}{
		{
			name:   "booked session before start",
			status: StatusBooked,
			now:    time.Date(2026, 9, 15, 15, 59, 0, 0, time.UTC),
			want:   true,
		},
		{
			name:   "booked session exactly at start",
			status: StatusBooked,
			now:    time.Date(2026, 9, 15, 16, 0, 0, 0, time.UTC),
			want:   false,
		},
		{
			name:   "booked session after start",
			status: StatusBooked,
			now:    time.Date(2026, 9, 15, 16, 30, 0, 0, time.UTC),
			want:   false,
		},
		{
			name:   "cancelled session is terminal",
			status: StatusCancelled,
			now:    time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
			want:   false,
		},
		{
			name:   "completed session is terminal",
			status: StatusCompleted,
			now:    time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
			want:   false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newSession(t, tc.status, date, "16:00", 60)
			assert.Equal(t, tc.want, s.CanBeCancelled(tc.now))
		})
	}
}

func TestGameSession_CanBeCompleted(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name   string
		status SessionStatus
		now    time.Time
		want   bool
	}{
		{
			name:   "booked session before end",
			status: StatusBooked,
			now:    time.Date(2026, 9, 15, 16, 59, 0, 0, time.UTC),
			want:   false,
		},
		{
			name:   "booked session exactly at end",
			status: StatusBooked,
			now:    time.Date(2026, 9, 15, 17, 0, 0, 0, time.UTC),
			want:   true,
		},
		{
			name:   "booked session after end",
			status: StatusBooked,
			now:    time.Date(2026, 9, 16, 9, 0, 0, 0, time.UTC),
			want:   true,
		},
		{
			name:   "cancelled session cannot complete",
			status: StatusCancelled,
			now:    time.Date(2026, 9, 16, 9, 0, 0, 0, time.UTC),
			want:   false,
		},
		{
			name:   "completed session cannot complete twice",
			status: StatusCompleted,
			now:    time.Date(2026, 9, 16, 9, 0, 0, 0, time.UTC),
			want:   false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newSession(t, tc.status, date, "16:00", 60)
			assert.Equal(t, tc.want, s.CanBeCompleted(tc.now))
		})
	}
}

func TestGameSession_Instants(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	date := time.Date(2026, 9, 15, 0, 0, 0, 0, loc)
	s := newSession(t, StatusBooked, date, "22:00", 120)

	assert.Equal(t, time.Date(2026, 9, 15, 22, 0, 0, 0, loc), s.StartInstant())
	assert.Equal(t, time.Date(2026, 9, 16, 0, 0, 0, 0, loc), s.EndInstant())
}
