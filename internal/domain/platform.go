package domain

// Platform represents a bookable category of gaming hardware
// (console family, VR station pool, PC zone)
type Platform struct {
	ID          string
	Name        string
	HourlyPrice int64 // Цена за час в минимальных единицах валюты
	UnitCount   int   // Количество физических мест, доступных одновременно
}

// Addon represents an optional priced supplement attached to a session
type Addon struct {
	ID    string
	Label string
	Price int64
}
