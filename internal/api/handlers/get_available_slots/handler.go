package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/avdm/GameClub-BookingService/internal/api/handlers"
	"github.com/avdm/GameClub-BookingService/internal/domain"
	getAvailableSlots "github.com/avdm/GameClub-BookingService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate      = "отсутствует параметр date"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgPlatformNotFound = "платформа не найдена"
	msgDateTooFar       = "дата слишком далеко в будущем"
	msgInvalidInput     = "некорректные данные запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/platforms/{platformId}/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	platformID := vars["platformId"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /platforms/{id}/available-slots - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /platforms/{id}/available-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		PlatformID: platformID,
		Date:       date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrPlatformNotFound):
			h.logger.Warn("GET /platforms/{id}/available-slots - Platform not found: platform_id=%s", platformID)
			handlers.RespondNotFound(w, msgPlatformNotFound)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /platforms/{id}/available-slots - Date too far in future: platform_id=%s, date=%s",
				platformID, dateStr)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /platforms/{id}/available-slots - Invalid input: platform_id=%s, error=%v",
				platformID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /platforms/{id}/available-slots - Failed to get slots: platform_id=%s, error=%v",
				platformID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /platforms/{id}/available-slots - Slots retrieved: platform_id=%s, date=%s, slots=%d",
		platformID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
