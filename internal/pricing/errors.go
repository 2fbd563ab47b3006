package pricing

import "errors"

var (
	// ErrPlatformNotFound возвращается, когда платформа не найдена в каталоге
	ErrPlatformNotFound = errors.New("pricing: platform not found")

	// ErrUnknownAddon возвращается, когда указано несуществующее дополнение
	ErrUnknownAddon = errors.New("pricing: unknown addon")

	// ErrUnsupportedDuration возвращается для длительности вне допустимого набора
	ErrUnsupportedDuration = errors.New("pricing: unsupported session duration")

	// ErrInvalidPlayerCount возвращается при некорректном количестве игроков
	ErrInvalidPlayerCount = errors.New("pricing: invalid player count")
)
