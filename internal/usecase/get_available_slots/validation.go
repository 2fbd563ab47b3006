package get_available_slots

import (
	"fmt"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PlatformID == "" {
		return fmt.Errorf("%w: platformID is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateAdvanceLimit проверяет, что дата не превышает ограничение maxAdvanceDays
// Прошедшие даты ограничением не затрагиваются - генератор слотов обязан
// работать и для исторических запросов, отказ от прошедших дат - зона
// ответственности сценария бронирования
func validateAdvanceLimit(requestDate time.Time, now time.Time, maxAdvanceDays int) error {
	// Если maxAdvanceDays = 0, нет ограничений на дату
	if maxAdvanceDays == 0 {
		return nil
	}

	maxDate := toCalendarDay(now).AddDate(0, 0, maxAdvanceDays)

	if toCalendarDay(requestDate).After(maxDate) {
		return fmt.Errorf("%w: can only view %d days in advance", ErrDateTooFarInFuture, maxAdvanceDays)
	}

	return nil
}

// toCalendarDay нормализует значение до полуночи UTC, отбрасывая исходную
// таймзону. Дата запроса парсится без таймзоны, а now приходит в зоне клуба -
// сравнивать их как абсолютные моменты нельзя, сравниваем календарные дни
func toCalendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
