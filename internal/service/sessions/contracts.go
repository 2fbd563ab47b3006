package sessions

import (
	"context"
	"time"

	"github.com/avdm/GameClub-BookingService/internal/domain"
	"github.com/avdm/GameClub-BookingService/internal/integrations/authservice"
)

// SessionRepository интерфейс репозитория игровых сессий
type SessionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.GameSession, error)
	GetByOwnerID(ctx context.Context, ownerID int64, status *domain.SessionStatus) ([]*domain.GameSession, error)
	GetWithFilter(ctx context.Context, filter domain.ClubSessionsFilter) ([]*domain.GameSession, error)
	UpdateStatus(ctx context.Context, id int64, status domain.SessionStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// AuthServiceClient интерфейс клиента сервиса аутентификации
type AuthServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*authservice.Profile, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
