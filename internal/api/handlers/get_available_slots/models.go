package get_available_slots

import (
	"github.com/avdm/GameClub-BookingService/internal/domain"
	getAvailableSlots "github.com/avdm/GameClub-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель временного слота
type SlotResponse struct {
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Available       bool   `json:"available"`
	AvailableUnits  int    `json:"availableUnits"`
	TotalUnits      int    `json:"totalUnits"`
}

// AvailableSlotsResponse HTTP модель списка слотов
type AvailableSlotsResponse struct {
	Date       string         `json:"date"`
	PlatformID string         `json:"platformId"`
	Slots      []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime:       s.StartTime.String(),
			DurationMinutes: s.DurationMinutes,
			Available:       s.Available,
			AvailableUnits:  s.AvailableUnits,
			TotalUnits:      s.TotalUnits,
		}
	}

	return &AvailableSlotsResponse{
		Date:       resp.Date.Format(domain.DateFormat),
		PlatformID: resp.PlatformID,
		Slots:      slots,
	}
}
