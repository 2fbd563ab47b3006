package get_available_slots

import (
	"time"

	"github.com/avdm/GameClub-BookingService/internal/domain"
	"github.com/avdm/GameClub-BookingService/pkg/types"
)

// generateTimeSlots генерирует хронологический список всех временных слотов дня
// Слоты идут от часа открытия до часа закрытия с фиксированным шагом granularity;
// последний слот начинается так, чтобы целиком уместиться до закрытия.
//
// Для сегодняшней даты слоты, начинающиеся раньше now + minNoticeMinutes,
// отфильтровываются. Для прошедших дат фильтрация не применяется - генератор
// обязан корректно работать и для исторических запросов
func generateTimeSlots(
	settings *domain.ClubSettings,
	requestDate time.Time,
	now time.Time,
) ([]types.TimeString, error) {
	openTime, err := types.NewTimeStringFromMinutes(settings.OpeningHour * 60)
	if err != nil {
		return nil, err
	}

	closeTime, err := types.NewTimeStringFromMinutes(settings.ClosingHour * 60)
	if err != nil {
		return nil, err
	}

	// Шаг 1: Генерируем ВСЕ слоты от открытия до закрытия с фиксированным шагом
	allSlots := make([]types.TimeString, 0, settings.SlotsPerDay())
	currentSlot := openTime

	for currentSlot.IsBefore(closeTime) {
		// Слот не должен выходить за время закрытия
		slotEnd, err := currentSlot.AddMinutes(settings.SlotGranularityMinutes)
		if err != nil {
			return nil, err
		}
		if slotEnd.IsAfter(closeTime) {
			break
		}

		allSlots = append(allSlots, currentSlot)
		currentSlot, err = currentSlot.AddMinutes(settings.SlotGranularityMinutes)
		if err != nil {
			return nil, err
		}
	}

	// Шаг 2: Если дата не сегодня (прошлое или будущее) - возвращаем все слоты
	if !isSameDay(requestDate, now) {
		return allSlots, nil
	}

	// Шаг 3: Для сегодняшней даты отсекаем слоты, нарушающие минимальное
	// время до начала сессии
	currentTime := types.NewTimeString(now)
	minAllowedTime, err := currentTime.AddMinutes(settings.MinNoticeMinutes)
	if err != nil {
		// Окно уведомления вышло за конец суток - сегодня бронировать уже нечего
		return []types.TimeString{}, nil
	}

	availableSlots := make([]types.TimeString, 0, len(allSlots))
	for _, slot := range allSlots {
		if !slot.IsBefore(minAllowedTime) {
			availableSlots = append(availableSlots, slot)
		}
	}

	return availableSlots, nil
}

// calculateAvailableUnits вычисляет занятость каждого слота
// Слот на момент t занят сессией, если её интервал [start, end) содержит t:
// start <= t < end. Сессия, заканчивающаяся ровно в t, слот НЕ блокирует
func calculateAvailableUnits(
	slots []types.TimeString,
	granularityMinutes int,
	sessions []*domain.GameSession,
	totalUnits int,
) []Slot {
	result := make([]Slot, len(slots))

	for i, slotStart := range slots {
		covering := countCoveringSessions(slotStart, sessions)

		availableUnits := totalUnits - covering
		if availableUnits < 0 {
			availableUnits = 0
		}

		result[i] = Slot{
			StartTime:       slotStart,
			DurationMinutes: granularityMinutes,
			Available:       availableUnits > 0,
			AvailableUnits:  availableUnits,
			TotalUnits:      totalUnits,
		}
	}

	return result
}

// countCoveringSessions подсчитывает количество активных сессий, чей интервал
// [start, end) содержит момент slotStart
func countCoveringSessions(slotStart types.TimeString, sessions []*domain.GameSession) int {
	count := 0

	for _, session := range sessions {
		// Отмененные сессии место не занимают
		if !session.IsActive() {
			continue
		}

		sessionEnd, err := session.EndTime()
		if err != nil {
			continue
		}

		// start <= slotStart (нестрого) и slotStart < end (строго)
		if !session.StartTime.IsAfter(slotStart) && sessionEnd.IsAfter(slotStart) {
			count++
		}
	}

	return count
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
