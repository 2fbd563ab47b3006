package quote_price

import (
	"github.com/avdm/GameClub-BookingService/internal/pricing"
)

type PriceCalculator interface {
	ComputeTotal(platformID string, durationMinutes int, playerCount int, extraIDs []string) (*pricing.Quote, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
