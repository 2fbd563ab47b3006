package create_booking

import (
	"errors"
	"net/http"

	"github.com/avdm/GameClub-BookingService/internal/api/handlers"
	"github.com/avdm/GameClub-BookingService/internal/api/middleware"
	createBooking "github.com/avdm/GameClub-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidDate           = "некорректный формат даты сессии, ожидается YYYY-MM-DD"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgSlotNotAvailable      = "выбранный временной слот недоступен"
	msgPlatformNotFound      = "платформа не найдена"
	msgUnknownAddon          = "указано несуществующее дополнение"
	msgUnsupportedDuration   = "недопустимая длительность сессии"
	msgInvalidSessionDate    = "некорректная дата сессии"
	msgDateTooFar            = "дата сессии слишком далеко в будущем"
	msgOutsideOperatingHours = "сессия выходит за рабочие часы клуба"
	msgInvalidTimeSlot       = "некорректный временной слот"
	msgTooLateToBook         = "слишком поздно для бронирования этого слота"
	msgInvalidInput          = "некорректные данные запроса"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	ownerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /sessions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(ownerID)
	if err != nil {
		h.logger.Warn("POST /sessions - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /sessions - Slot not available: owner_id=%d, platform_id=%s",
				ownerID, req.PlatformID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrPlatformNotFound):
			h.logger.Warn("POST /sessions - Platform not found: platform_id=%s", req.PlatformID)
			handlers.RespondNotFound(w, msgPlatformNotFound)

		case errors.Is(err, createBooking.ErrUnknownAddon):
			h.logger.Warn("POST /sessions - Unknown addon: owner_id=%d, platform_id=%s",
				ownerID, req.PlatformID)
			handlers.RespondBadRequest(w, msgUnknownAddon)

		case errors.Is(err, createBooking.ErrUnsupportedDuration):
			h.logger.Warn("POST /sessions - Unsupported duration: owner_id=%d, duration=%d",
				ownerID, req.DurationMinutes)
			handlers.RespondBadRequest(w, msgUnsupportedDuration)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /sessions - Invalid session date: owner_id=%d, date=%s",
				ownerID, req.SessionDate)
			handlers.RespondBadRequest(w, msgInvalidSessionDate)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /sessions - Date too far in future: owner_id=%d, date=%s",
				ownerID, req.SessionDate)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrOutsideOperatingHours):
			h.logger.Warn("POST /sessions - Outside operating hours: owner_id=%d, start=%s",
				ownerID, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideOperatingHours)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /sessions - Invalid time slot: owner_id=%d, start=%s",
				ownerID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /sessions - Too late to book: owner_id=%d, start=%s",
				ownerID, req.StartTime)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /sessions - Invalid input: owner_id=%d, error=%v", ownerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /sessions - Failed to create session: owner_id=%d, platform_id=%s, error=%v",
				ownerID, req.PlatformID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /sessions - Session created successfully: session_id=%d, owner_id=%d, platform_id=%s, unit=%d",
		result.ID, ownerID, result.PlatformID, result.UnitNo)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
