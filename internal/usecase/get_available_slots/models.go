package get_available_slots

import (
	"time"

	"github.com/avdm/GameClub-BookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	PlatformID string    // ID платформы из каталога
	Date       time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	Date       time.Time // Дата, на которую запрашивались слоты
	PlatformID string    // ID платформы
	Slots      []Slot    // Хронологический список слотов
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Ширина слота в минутах
	Available       bool             // Есть ли хотя бы одно свободное место
	AvailableUnits  int              // Количество свободных мест
	TotalUnits      int              // Всего мест у платформы
}
