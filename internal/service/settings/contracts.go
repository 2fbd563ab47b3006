package settings

import (
	"context"

	"github.com/avdm/GameClub-BookingService/internal/domain"
	"github.com/avdm/GameClub-BookingService/internal/integrations/authservice"
)

// SettingsRepository интерфейс репозитория настроек клуба
type SettingsRepository interface {
	GetByPlatform(ctx context.Context, platformID *string) (*domain.ClubSettings, error)
	GetEffective(ctx context.Context, platformID string) (*domain.ClubSettings, error)
	GetAll(ctx context.Context) ([]*domain.ClubSettings, error)
	Upsert(ctx context.Context, settings *domain.ClubSettings) (*domain.ClubSettings, error)
	Delete(ctx context.Context, id int64) error
}

// PlatformCatalog интерфейс каталога платформ
type PlatformCatalog interface {
	Get(platformID string) (*domain.Platform, error)
}

// AuthServiceClient интерфейс клиента сервиса аутентификации
type AuthServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*authservice.Profile, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
