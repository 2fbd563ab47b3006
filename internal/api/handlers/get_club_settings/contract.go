package get_club_settings

import (
	"context"

	"github.com/avdm/GameClub-BookingService/internal/service/settings/models"
)

type SettingsService interface {
	GetEffective(ctx context.Context, platformID *string) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
