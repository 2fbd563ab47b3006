package domain

import (
	"time"

	"github.com/avdm/GameClub-BookingService/pkg/types"
)

// SessionStatus represents the status of a gaming session
type SessionStatus string

const (
	StatusBooked    SessionStatus = "booked"
	StatusCompleted SessionStatus = "completed"
	StatusCancelled SessionStatus = "cancelled"
)

// GameSession represents a booked gaming session in the system
type GameSession struct {
	ID         int64
	PlatformID string
	UnitNo     int // Номер физического места платформы (0..UnitCount-1)
	OwnerID    int64

	SessionDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int

	PlayerCount int
	Extras      []string
	TotalPrice  int64 // В минимальных единицах валюты
	Status      SessionStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndTime returns the end of the session interval ("HH:MM")
func (s *GameSession) EndTime() (types.TimeString, error) {
	return s.StartTime.AddMinutes(s.DurationMinutes)
}

// IsActive returns true if the session still occupies its time interval
// (cancelled sessions never block a slot)
func (s *GameSession) IsActive() bool {
	return s.Status != StatusCancelled
}

// IsTerminal returns true if no further status transition is allowed
func (s *GameSession) IsTerminal() bool {
	return s.Status == StatusCompleted || s.Status == StatusCancelled
}

// StartInstant returns the absolute start of the session in the location of SessionDate
func (s *GameSession) StartInstant() time.Time {
	minutes, err := s.StartTime.MinutesFromMidnight()
	if err != nil {
		minutes = 0
	}
	d := s.SessionDate
	return time.Date(d.Year(), d.Month(), d.Day(), 0, minutes, 0, 0, d.Location())
}

// EndInstant returns the absolute end of the session
func (s *GameSession) EndInstant() time.Time {
	return s.StartInstant().Add(time.Duration(s.DurationMinutes) * time.Minute)
}

// CanBeCancelled returns true if the session may transition booked -> cancelled
// Only future booked sessions can be cancelled
func (s *GameSession) CanBeCancelled(now time.Time) bool {
	return s.Status == StatusBooked && s.StartInstant().After(now)
}

// CanBeCompleted returns true if the session may transition booked -> completed
// Only booked sessions whose interval has already ended can be completed
func (s *GameSession) CanBeCompleted(now time.Time) bool {
	return s.Status == StatusBooked && !s.EndInstant().After(now)
}

// ClubSessionsFilter фильтр для получения сессий клуба (админский список)
type ClubSessionsFilter struct {
	PlatformID      *string        // Фильтр по платформе (опционально)
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *SessionStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отмененные сессии
}
