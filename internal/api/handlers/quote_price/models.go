package quote_price

import (
	"github.com/avdm/GameClub-BookingService/internal/pricing"
)

// QuotePriceRequest HTTP request model
type QuotePriceRequest struct {
	PlatformID      string   `json:"platformId"`
	DurationMinutes int      `json:"durationMinutes"`
	PlayerCount     int      `json:"playerCount"`
	Extras          []string `json:"extras,omitempty"`
}

// QuoteResponse HTTP модель детализации стоимости
type QuoteResponse struct {
	Base            int64 `json:"base"`
	ExtrasTotal     int64 `json:"extrasTotal"`
	PlayerSurcharge int64 `json:"playerSurcharge"`
	Total           int64 `json:"total"`
}

// FromQuote конвертирует расчет стоимости в HTTP response
func FromQuote(q *pricing.Quote) *QuoteResponse {
	return &QuoteResponse{
		Base:            q.Base,
		ExtrasTotal:     q.ExtrasTotal,
		PlayerSurcharge: q.PlayerSurcharge,
		Total:           q.Total,
	}
}
