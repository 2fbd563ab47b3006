package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avdm/GameClub-BookingService/internal/catalog"
	"github.com/avdm/GameClub-BookingService/internal/domain"
	settingsRepo "github.com/avdm/GameClub-BookingService/internal/infra/storage/settings"
	"github.com/avdm/GameClub-BookingService/pkg/ptr"
)

// UseCase use case для получения доступных слотов платформы на дату
type UseCase struct {
	sessionRepo  SessionRepository
	settingsRepo SettingsRepository
	catalog      PlatformCatalog
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	settingsRepo SettingsRepository,
	platformCatalog PlatformCatalog,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo:  sessionRepo,
		settingsRepo: settingsRepo,
		catalog:      platformCatalog,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Чистая функция от текущего состояния сессий: без записей, без блокировок.
// Защиту от гонок при бронировании обеспечивает сценарий создания сессии
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: platform=%s, date=%s",
		req.PlatformID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время в таймзоне клуба
	now := uc.timeProvider.Now().In(uc.location)

	// 3. Проверяем платформу в каталоге
	platform, err := uc.catalog.Get(req.PlatformID)
	if err != nil {
		if errors.Is(err, catalog.ErrPlatformNotFound) {
			uc.logger.Warn("GetAvailableSlots: platform %q not found", req.PlatformID)
			return nil, ErrPlatformNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get platform %q: %v", req.PlatformID, err)
		return nil, fmt.Errorf("%w: failed to get platform: %v", ErrInternal, err)
	}

	// 4. Получаем действующие настройки клуба для платформы
	settings, err := uc.settingsRepo.GetEffective(ctx, req.PlatformID)
	if err != nil && !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// Если настроек нет, используем значения по умолчанию
	if settings == nil {
		settings = domain.DefaultClubSettings()
		uc.logger.Info("GetAvailableSlots: using default settings for platform=%s", req.PlatformID)
	} else {
		uc.logger.Info("GetAvailableSlots: using settings id=%d", settings.ID)
	}

	// 5. Проверяем ограничение глубины бронирования
	if err := validateAdvanceLimit(req.Date, now, settings.MaxAdvanceDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: advance limit check failed: %v", err)
		return nil, err
	}

	// 6. Генерируем сетку временных слотов
	timeSlots, err := generateTimeSlots(settings, req.Date, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 7. Получаем все активные сессии платформы на эту дату
	filter := domain.ClubSessionsFilter{
		PlatformID:      ptr.Ptr(req.PlatformID),
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false, // Отмененные сессии место не занимают
	}

	sessions, err := uc.sessionRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get sessions: %v", err)
		return nil, fmt.Errorf("%w: failed to get sessions: %v", ErrInternal, err)
	}

	// 8. Вычисляем занятость каждого слота
	slots := calculateAvailableUnits(
		timeSlots,
		settings.SlotGranularityMinutes,
		sessions,
		platform.UnitCount,
	)

	uc.logger.Info("GetAvailableSlots: generated %d slots for platform=%s, date=%s",
		len(slots), req.PlatformID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:       req.Date,
		PlatformID: req.PlatformID,
		Slots:      slots,
	}, nil
}
