package delete_club_settings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avdm/GameClub-BookingService/internal/api/handlers"
	"github.com/avdm/GameClub-BookingService/internal/api/middleware"
	"github.com/avdm/GameClub-BookingService/internal/service/settings"
)

const (
	msgInvalidSettingsID = "некорректный ID настроек"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgForbidden         = "доступ запрещен"
	msgSettingsNotFound  = "настройки не найдены"
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

// Handle DELETE /api/v1/club/settings/{settingsId}
// Удаление платформенной строки возвращает платформу на общеклубные настройки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	settingsIDStr := vars["settingsId"]

	settingsID, err := strconv.ParseInt(settingsIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /club/settings/{id} - Invalid settings ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSettingsID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /club/settings/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), settingsID, userID); err != nil {
		switch {
		case errors.Is(err, settings.ErrAccessDenied):
			h.logger.Warn("DELETE /club/settings/{id} - Access denied: settings_id=%d, user_id=%d",
				settingsID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, settings.ErrSettingsNotFound):
			h.logger.Warn("DELETE /club/settings/{id} - Settings not found: settings_id=%d", settingsID)
			handlers.RespondNotFound(w, msgSettingsNotFound)

		default:
			h.logger.Error("DELETE /club/settings/{id} - Failed to delete settings: settings_id=%d, error=%v",
				settingsID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /club/settings/{id} - Settings deleted: settings_id=%d, user_id=%d",
		settingsID, userID)
	w.WriteHeader(http.StatusNoContent)
}
