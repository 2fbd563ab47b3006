package create_booking

import (
	"context"
	"time"

	"github.com/avdm/GameClub-BookingService/internal/domain"
	"github.com/avdm/GameClub-BookingService/internal/pricing"
)

// SessionRepository интерфейс репозитория игровых сессий
type SessionRepository interface {
	Create(ctx context.Context, session *domain.GameSession) (*domain.GameSession, error)
	GetWithFilter(ctx context.Context, filter domain.ClubSessionsFilter) ([]*domain.GameSession, error)
}

// SettingsRepository интерфейс репозитория настроек клуба
type SettingsRepository interface {
	GetEffective(ctx context.Context, platformID string) (*domain.ClubSettings, error)
}

// PlatformCatalog интерфейс каталога платформ
type PlatformCatalog interface {
	Get(platformID string) (*domain.Platform, error)
}

// PriceCalculator интерфейс калькулятора стоимости
type PriceCalculator interface {
	ComputeTotal(platformID string, durationMinutes int, playerCount int, extraIDs []string) (*pricing.Quote, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
