package quote_price

import (
	"errors"
	"net/http"

	"github.com/avdm/GameClub-BookingService/internal/api/handlers"
	"github.com/avdm/GameClub-BookingService/internal/pricing"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgPlatformNotFound    = "платформа не найдена"
	msgUnknownAddon        = "указано несуществующее дополнение"
	msgUnsupportedDuration = "недопустимая длительность сессии"
	msgInvalidPlayerCount  = "некорректное количество игроков"
)

type Handler struct {
	calculator PriceCalculator
	logger     Logger
}

func NewHandler(calculator PriceCalculator, logger Logger) *Handler {
	return &Handler{
		calculator: calculator,
		logger:     logger,
	}
}

// Handle POST /api/v1/price-quote
// Публичный расчет стоимости без создания сессии
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuotePriceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /price-quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	quote, err := h.calculator.ComputeTotal(req.PlatformID, req.DurationMinutes, req.PlayerCount, req.Extras)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrPlatformNotFound):
			h.logger.Warn("POST /price-quote - Platform not found: platform_id=%s", req.PlatformID)
			handlers.RespondNotFound(w, msgPlatformNotFound)

		case errors.Is(err, pricing.ErrUnknownAddon):
			h.logger.Warn("POST /price-quote - Unknown addon: platform_id=%s", req.PlatformID)
			handlers.RespondBadRequest(w, msgUnknownAddon)

		case errors.Is(err, pricing.ErrUnsupportedDuration):
			h.logger.Warn("POST /price-quote - Unsupported duration: duration=%d", req.DurationMinutes)
			handlers.RespondBadRequest(w, msgUnsupportedDuration)

		case errors.Is(err, pricing.ErrInvalidPlayerCount):
			h.logger.Warn("POST /price-quote - Invalid player count: players=%d", req.PlayerCount)
			handlers.RespondBadRequest(w, msgInvalidPlayerCount)

		default:
			h.logger.Error("POST /price-quote - Failed to compute quote: platform_id=%s, error=%v",
				req.PlatformID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /price-quote - Quote computed: platform_id=%s, total=%d", req.PlatformID, quote.Total)
	handlers.RespondJSON(w, http.StatusOK, FromQuote(quote))
}
