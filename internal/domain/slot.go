package domain

import "github.com/avdm/GameClub-BookingService/pkg/types"

// TimeSlot represents a candidate start time within operating hours
// Computed on demand, never persisted
type TimeSlot struct {
	StartTime       types.TimeString
	DurationMinutes int
	AvailableUnits  int // Свободные места платформы на этот момент
	TotalUnits      int // Всего мест у платформы
}

// IsAvailable returns true if at least one unit is free at the slot start
func (s *TimeSlot) IsAvailable() bool {
	return s.AvailableUnits > 0
}

// IsFull returns true if every unit is taken at the slot start
func (s *TimeSlot) IsFull() bool {
	return s.AvailableUnits <= 0
}

// IsPartiallyAvailable returns true if some but not all units are free
func (s *TimeSlot) IsPartiallyAvailable() bool {
	return s.AvailableUnits > 0 && s.AvailableUnits < s.TotalUnits
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (s *TimeSlot) OccupancyRate() float64 {
	if s.TotalUnits == 0 {
		return 0
	}
	occupied := s.TotalUnits - s.AvailableUnits
	return float64(occupied) / float64(s.TotalUnits) * 100
}
