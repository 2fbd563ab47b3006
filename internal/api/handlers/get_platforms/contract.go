package get_platforms

import (
	"github.com/avdm/GameClub-BookingService/internal/domain"
)

type PlatformCatalog interface {
	Platforms() []*domain.Platform
	Addons() []*domain.Addon
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
