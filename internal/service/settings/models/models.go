package models

import (
	"time"

	"github.com/avdm/GameClub-BookingService/internal/domain"
)

// Request модели

// UpdateSettingsRequest запрос на создание/обновление настроек клуба
// Если PlatformID указан - настройки для конкретной платформы,
// иначе - общеклубные (platform_id IS NULL)
type UpdateSettingsRequest struct {
	UserID                 int64   `json:"userId"`
	PlatformID             *string `json:"platformId,omitempty"`
	SlotGranularityMinutes int     `json:"slotGranularityMinutes"`
	OpeningHour            int     `json:"openingHour"`
	ClosingHour            int     `json:"closingHour"`
	MinNoticeMinutes       int     `json:"minNoticeMinutes"`
	MaxAdvanceDays         int     `json:"maxAdvanceDays"`
}

// ToDomainSettings конвертирует запрос в доменную модель
func (r *UpdateSettingsRequest) ToDomainSettings() *domain.ClubSettings {
	return &domain.ClubSettings{
		PlatformID:             r.PlatformID,
		SlotGranularityMinutes: r.SlotGranularityMinutes,
		OpeningHour:            r.OpeningHour,
		ClosingHour:            r.ClosingHour,
		MinNoticeMinutes:       r.MinNoticeMinutes,
		MaxAdvanceDays:         r.MaxAdvanceDays,
	}
}

// Response модели

// SettingsResponse настройки клуба в ответе сервиса
type SettingsResponse struct {
	ID                     int64   `json:"id"`
	PlatformID             *string `json:"platformId,omitempty"`
	SlotGranularityMinutes int     `json:"slotGranularityMinutes"`
	OpeningHour            int     `json:"openingHour"`
	ClosingHour            int     `json:"closingHour"`
	MinNoticeMinutes       int     `json:"minNoticeMinutes"`
	MaxAdvanceDays         int     `json:"maxAdvanceDays"`
	CreatedAt              string  `json:"createdAt,omitempty"`
	UpdatedAt              string  `json:"updatedAt,omitempty"`
}

// SettingsListResponse список настроек
type SettingsListResponse struct {
	Settings []SettingsResponse `json:"settings"`
	Total    int                `json:"total"`
}

// FromDomainSettings конвертирует доменную модель в ответ сервиса
func FromDomainSettings(s *domain.ClubSettings) *SettingsResponse {
	resp := &SettingsResponse{
		ID:                     s.ID,
		PlatformID:             s.PlatformID,
		SlotGranularityMinutes: s.SlotGranularityMinutes,
		OpeningHour:            s.OpeningHour,
		ClosingHour:            s.ClosingHour,
		MinNoticeMinutes:       s.MinNoticeMinutes,
		MaxAdvanceDays:         s.MaxAdvanceDays,
	}

	if !s.CreatedAt.IsZero() {
		resp.CreatedAt = s.CreatedAt.Format(time.RFC3339)
	}
	if !s.UpdatedAt.IsZero() {
		resp.UpdatedAt = s.UpdatedAt.Format(time.RFC3339)
	}

	return resp
}

// FromDomainSettingsList конвертирует список доменных моделей
func FromDomainSettingsList(settings []*domain.ClubSettings) *SettingsListResponse {
	result := make([]SettingsResponse, len(settings))
	for i, s := range settings {
		result[i] = *FromDomainSettings(s)
	}
	return &SettingsListResponse{
		Settings: result,
		Total:    len(result),
	}
}
