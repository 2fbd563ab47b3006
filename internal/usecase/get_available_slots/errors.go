package get_available_slots

import "errors"

var (
	// ErrPlatformNotFound возвращается, когда платформа не найдена в каталоге
	ErrPlatformNotFound = errors.New("get_available_slots: platform not found")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение maxAdvanceDays
	ErrDateTooFarInFuture = errors.New("get_available_slots: date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
