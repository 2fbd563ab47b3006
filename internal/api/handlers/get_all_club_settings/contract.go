package get_all_club_settings

import (
	"context"

	"github.com/avdm/GameClub-BookingService/internal/service/settings/models"
)

type SettingsService interface {
	GetAll(ctx context.Context, userID int64) (*models.SettingsListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
