package complete_session

import (
	"context"

	"github.com/avdm/GameClub-BookingService/internal/service/sessions/models"
)

type SessionService interface {
	Complete(ctx context.Context, sessionID int64, req *models.CompleteSessionRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
