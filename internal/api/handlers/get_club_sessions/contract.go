package get_club_sessions

import (
	"context"

	"github.com/avdm/GameClub-BookingService/internal/service/sessions/models"
)

type SessionService interface {
	GetClubSessions(ctx context.Context, req *models.GetClubSessionsRequest) (*models.SessionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
