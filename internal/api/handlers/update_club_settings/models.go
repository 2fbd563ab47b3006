package update_club_settings

import (
	"github.com/avdm/GameClub-BookingService/internal/service/settings/models"
)

// UpdateSettingsRequest HTTP request model
type UpdateSettingsRequest struct {
	PlatformID             *string `json:"platformId,omitempty"`
	SlotGranularityMinutes int     `json:"slotGranularityMinutes"`
	OpeningHour            int     `json:"openingHour"`
	ClosingHour            int     `json:"closingHour"`
	MinNoticeMinutes       int     `json:"minNoticeMinutes"`
	MaxAdvanceDays         int     `json:"maxAdvanceDays"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateSettingsRequest) ToServiceRequest(userID int64) *models.UpdateSettingsRequest {
	return &models.UpdateSettingsRequest{
		UserID:                 userID,
		PlatformID:             r.PlatformID,
		SlotGranularityMinutes: r.SlotGranularityMinutes,
		OpeningHour:            r.OpeningHour,
		ClosingHour:            r.ClosingHour,
		MinNoticeMinutes:       r.MinNoticeMinutes,
		MaxAdvanceDays:         r.MaxAdvanceDays,
	}
}
