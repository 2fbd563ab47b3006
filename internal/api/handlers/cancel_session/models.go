package cancel_session

import (
	"github.com/avdm/GameClub-BookingService/internal/service/sessions/models"
)

// CancelSessionRequest HTTP request model
type CancelSessionRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelSessionRequest) ToServiceRequest(userID int64) *models.CancelSessionRequest {
	reason := ""
	if r.CancellationReason != nil {
		reason = *r.CancellationReason
	}

	return &models.CancelSessionRequest{
		UserID:             userID,
		CancellationReason: reason,
	}
}
