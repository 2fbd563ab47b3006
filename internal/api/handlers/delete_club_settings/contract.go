package delete_club_settings

import (
	"context"
)

type SettingsService interface {
	Delete(ctx context.Context, settingsID int64, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
