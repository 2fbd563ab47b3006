package domain

// Default club settings values
const (
	DefaultSlotGranularityMinutes = 30
	DefaultOpeningHour            = 10
	DefaultClosingHour            = 22
	DefaultMinNoticeMinutes       = 60 // 1 hour
	DefaultMaxAdvanceDays         = 0  // 0 = unlimited
)

// Pricing constants
const (
	// PerExtraPlayerFee доплата за каждого игрока сверх первого
	PerExtraPlayerFee = 500
)

// Business validation constants
const (
	MinSlotGranularityMinutes   = 15
	MaxSlotGranularityMinutes   = 120
	MinOpeningHour              = 0
	MaxClosingHour              = 24
	MinNoticeMinutesLimit       = 10080 // 1 week
	MaxAdvanceDaysLimit         = 365
	MinPlayerCount              = 1
	MaxPlayerCount              = 8
	MaxCancellationReasonLength = 500
)

// SupportedDurationsMinutes допустимые длительности сессии
// Цена за сессию считается от часовой ставки платформы пропорционально длительности
var SupportedDurationsMinutes = []int{30, 60, 90, 120, 180}

// IsSupportedDuration проверяет, что длительность входит в допустимый набор
func IsSupportedDuration(minutes int) bool {
	for _, d := range SupportedDurationsMinutes {
		if d == minutes {
			return true
		}
	}
	return false
}

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих игровое место
// Используется для фильтрации при подсчете доступных слотов
var InactiveStatuses = []SessionStatus{
	StatusCancelled,
}

// ActiveStatuses список статусов, занимающих игровое место в своем интервале
var ActiveStatuses = []SessionStatus{
	StatusBooked,
	StatusCompleted,
}
