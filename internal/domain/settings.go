package domain

import "time"

// ClubSettings represents the booking configuration of the club
// Supports two levels:
// 1. Platform-specific row (platform_id set) overrides the club-wide row
// 2. Club-wide row (platform_id NULL) applies to every platform
type ClubSettings struct {
	ID                     int64
	PlatformID             *string // NULL = settings for the whole club
	SlotGranularityMinutes int
	OpeningHour            int // Час открытия (0-23)
	ClosingHour            int // Час закрытия (1-24), слоты заканчиваются не позже него
	MinNoticeMinutes       int // Минимальное время до начала сессии при бронировании
	MaxAdvanceDays         int // 0 = без ограничения
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// IsClubWide returns true if this row applies to every platform
func (c *ClubSettings) IsClubWide() bool {
	return c.PlatformID == nil
}

// HasAdvanceLimit returns true if there is a limit on how far ahead sessions can be booked
func (c *ClubSettings) HasAdvanceLimit() bool {
	return c.MaxAdvanceDays > 0
}

// SlotsPerDay returns the number of slots the settings produce for one day
func (c *ClubSettings) SlotsPerDay() int {
	if c.SlotGranularityMinutes <= 0 {
		return 0
	}
	return (c.ClosingHour - c.OpeningHour) * 60 / c.SlotGranularityMinutes
}

// DefaultClubSettings возвращает настройки по умолчанию
// Применяются, когда в БД нет ни строки для платформы, ни общеклубной строки
func DefaultClubSettings() *ClubSettings {
	return &ClubSettings{
		SlotGranularityMinutes: DefaultSlotGranularityMinutes,
		OpeningHour:            DefaultOpeningHour,
		ClosingHour:            DefaultClosingHour,
		MinNoticeMinutes:       DefaultMinNoticeMinutes,
		MaxAdvanceDays:         DefaultMaxAdvanceDays,
	}
}
