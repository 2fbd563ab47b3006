package get_available_slots

import (
	"context"
	"time"

	"github.com/avdm/GameClub-BookingService/internal/domain"
)

// SessionRepository интерфейс репозитория игровых сессий
type SessionRepository interface {
	// GetWithFilter получает сессии клуба по фильтру (платформа + дата)
	GetWithFilter(ctx context.Context, filter domain.ClubSessionsFilter) ([]*domain.GameSession, error)
}

// SettingsRepository интерфейс репозитория настроек клуба
type SettingsRepository interface {
	// GetEffective получает действующие настройки для платформы с учетом приоритета
	GetEffective(ctx context.Context, platformID string) (*domain.ClubSettings, error)
}

// PlatformCatalog интерфейс каталога платформ
type PlatformCatalog interface {
	Get(platformID string) (*domain.Platform, error)
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
