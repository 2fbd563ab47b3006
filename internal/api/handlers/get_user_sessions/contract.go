package get_user_sessions

import (
	"context"

	"github.com/avdm/GameClub-BookingService/internal/service/sessions/models"
)

type SessionService interface {
	GetUserSessions(ctx context.Context, req *models.GetUserSessionsRequest) (*models.SessionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
