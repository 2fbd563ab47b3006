package create_booking

import "errors"

var (
	// ErrPlatformNotFound возвращается, когда платформа не найдена в каталоге
	ErrPlatformNotFound = errors.New("create_booking: platform not found")

	// ErrUnknownAddon возвращается, когда указано несуществующее дополнение
	ErrUnknownAddon = errors.New("create_booking: unknown addon")

	// ErrUnsupportedDuration возвращается для длительности вне допустимого набора
	ErrUnsupportedDuration = errors.New("create_booking: unsupported session duration")

	// ErrInvalidDate возвращается при попытке забронировать сессию на прошедшую дату
	ErrInvalidDate = errors.New("create_booking: invalid session date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение maxAdvanceDays
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrOutsideOperatingHours возвращается, когда интервал сессии выходит за рабочие часы
	ErrOutsideOperatingHours = errors.New("create_booking: session is outside operating hours")

	// ErrInvalidTimeSlot возвращается, когда время начала не выровнено по сетке слотов
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrTooLateToBook возвращается, когда бронирование нарушает minNoticeMinutes
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrSlotNotAvailable возвращается, когда все места платформы на интервал заняты
	// или конкурирующая запись выиграла гонку за слот. Клиенту следует обновить
	// список слотов и выбрать другое время, а не исправлять поля формы
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
