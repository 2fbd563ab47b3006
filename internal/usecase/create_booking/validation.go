package create_booking

import (
	"fmt"
	"time"

	"github.com/avdm/GameClub-BookingService/internal/domain"
	"github.com/avdm/GameClub-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.OwnerID <= 0 {
		return fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}

	if req.PlatformID == "" {
		return fmt.Errorf("%w: platformID is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано и корректно
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if !domain.IsSupportedDuration(req.DurationMinutes) {
		return fmt.Errorf("%w: %d minutes", ErrUnsupportedDuration, req.DurationMinutes)
	}

	if req.PlayerCount < domain.MinPlayerCount || req.PlayerCount > domain.MaxPlayerCount {
		return fmt.Errorf("%w: playerCount must be between %d and %d",
			ErrInvalidInput, domain.MinPlayerCount, domain.MaxPlayerCount)
	}

	return nil
}

// validateDate проверяет, что дата подходит для бронирования
// В отличие от просмотра слотов, бронировать на прошедшие даты нельзя
func validateDate(sessionDate time.Time, now time.Time, maxAdvanceDays int) error {
	// Проверяем, что дата не в прошлом
	if isDateInPast(sessionDate, now) {
		return ErrInvalidDate
	}

	// Если maxAdvanceDays = 0, нет ограничений на дату
	if maxAdvanceDays == 0 {
		return nil
	}

	maxDate := toCalendarDay(now).AddDate(0, 0, maxAdvanceDays)

	if toCalendarDay(sessionDate).After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, maxAdvanceDays)
	}

	return nil
}

// validateInterval проверяет, что интервал сессии лежит внутри рабочих часов
// и что время начала выровнено по сетке слотов
func validateInterval(startTime types.TimeString, durationMinutes int, settings *domain.ClubSettings) error {
	startMinutes, err := startTime.MinutesFromMidnight()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	openingMinutes := settings.OpeningHour * 60
	closingMinutes := settings.ClosingHour * 60

	// Интервал [start, start+duration) должен целиком лежать в рабочих часах
	if startMinutes < openingMinutes || startMinutes+durationMinutes > closingMinutes {
		return fmt.Errorf("%w: session %s + %dm is outside %02d:00-%02d:00",
			ErrOutsideOperatingHours, startTime, durationMinutes, settings.OpeningHour, settings.ClosingHour)
	}

	// Время начала должно попадать на границу слота
	if (startMinutes-openingMinutes)%settings.SlotGranularityMinutes != 0 {
		return fmt.Errorf("%w: start time %s is not aligned to %d-minute grid",
			ErrInvalidTimeSlot, startTime, settings.SlotGranularityMinutes)
	}

	return nil
}

// validateNotice проверяет, что бронирование не нарушает minNoticeMinutes
func validateNotice(
	sessionDate time.Time,
	startTime types.TimeString,
	now time.Time,
	minNoticeMinutes int,
) error {
	// Если дата сессии не сегодня, проверка не нужна
	if !isSameDay(sessionDate, now) {
		return nil
	}

	// Вычисляем минимально допустимое время начала
	currentTime := types.NewTimeString(now)
	minAllowedTime, err := currentTime.AddMinutes(minNoticeMinutes)
	if err != nil {
		// Окно уведомления вышло за конец суток - сегодня уже не забронировать
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, minNoticeMinutes)
	}

	if startTime.IsBefore(minAllowedTime) {
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, minNoticeMinutes)
	}

	return nil
}

// collectBusyUnits собирает номера мест, занятых активными сессиями, чей
// интервал реально пересекается с [start, end): start < sessionEnd && sessionStart < end.
// Граничащие интервалы (конец одного равен началу другого) пересечением не считаются.
// Несколько последовательных сессий на одном месте занимают одно место,
// а не несколько - вместимость считается по различным местам
func collectBusyUnits(
	start types.TimeString,
	end types.TimeString,
	sessions []*domain.GameSession,
) map[int]bool {
	busyUnits := make(map[int]bool)

	for _, session := range sessions {
		// Отмененные сессии место не занимают
		if !session.IsActive() {
			continue
		}

		sessionEnd, err := session.EndTime()
		if err != nil {
			continue
		}

		if session.StartTime.IsBefore(end) && sessionEnd.IsAfter(start) {
			busyUnits[session.UnitNo] = true
		}
	}

	return busyUnits
}

// pickFreeUnit возвращает наименьший свободный номер места платформы
func pickFreeUnit(usedUnits map[int]bool, totalUnits int) (int, bool) {
	for unit := 0; unit < totalUnits; unit++ {
		if !usedUnits[unit] {
			return unit, true
		}
	}
	return 0, false
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	return toCalendarDay(date).Before(toCalendarDay(now))
}

// toCalendarDay нормализует значение до полуночи UTC, отбрасывая исходную
// таймзону. Дата сессии парсится без таймзоны, а now приходит в зоне клуба -
// сравнивать их как абсолютные моменты нельзя, сравниваем календарные дни
func toCalendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
