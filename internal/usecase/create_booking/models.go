package create_booking

import (
	"time"

	"github.com/avdm/GameClub-BookingService/pkg/types"
)

// Request модель запроса на создание игровой сессии
type Request struct {
	OwnerID         int64            // ID пользователя, создающего сессию
	PlatformID      string           // ID платформы из каталога
	Date            time.Time        // Дата сессии (без времени)
	StartTime       types.TimeString // Время начала (например, "16:00")
	DurationMinutes int              // Длительность из допустимого набора
	PlayerCount     int              // Количество игроков (>= 1)
	Extras          []string         // Дополнения (может быть пустым)
}

// Response модель ответа с созданной сессией
type Response struct {
	ID              int64            // ID созданной сессии
	OwnerID         int64            // ID владельца
	PlatformID      string           // ID платформы
	UnitNo          int              // Назначенное место платформы
	SessionDate     time.Time        // Дата сессии
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Время окончания
	DurationMinutes int              // Длительность в минутах
	PlayerCount     int              // Количество игроков
	Extras          []string         // Дополнения
	TotalPrice      int64            // Итоговая стоимость
	Status          string           // Статус сессии

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
