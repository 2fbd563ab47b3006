package get_club_settings

import (
	"errors"
	"net/http"

	"github.com/avdm/GameClub-BookingService/internal/api/handlers"
	"github.com/avdm/GameClub-BookingService/internal/service/settings"
)

const (
	msgPlatformNotFound = "платформа не найдена"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/club/settings?platformId=
// Без platformId возвращает общеклубные настройки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var platformID *string
	if id := r.URL.Query().Get("platformId"); id != "" {
		platformID = &id
	}

	result, err := h.service.GetEffective(r.Context(), platformID)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrPlatformNotFound):
			h.logger.Warn("GET /club/settings - Platform not found: platform_id=%v", platformID)
			handlers.RespondNotFound(w, msgPlatformNotFound)

		default:
			h.logger.Error("GET /club/settings - Failed to get settings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /club/settings - Settings retrieved: platform_id=%v", platformID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
