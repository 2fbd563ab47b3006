package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avdm/GameClub-BookingService/internal/catalog"
	"github.com/avdm/GameClub-BookingService/internal/domain"
	sessionRepo "github.com/avdm/GameClub-BookingService/internal/infra/storage/session"
	settingsRepo "github.com/avdm/GameClub-BookingService/internal/infra/storage/settings"
	"github.com/avdm/GameClub-BookingService/internal/pricing"
	"github.com/avdm/GameClub-BookingService/pkg/ptr"
)

// UseCase use case для создания игровой сессии
// Единственная точка системы, создающая записи о сессиях
type UseCase struct {
	sessionRepo  SessionRepository
	settingsRepo SettingsRepository
	catalog      PlatformCatalog
	calculator   PriceCalculator
	txManager    TransactionManager
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	settingsRepo SettingsRepository,
	platformCatalog PlatformCatalog,
	calculator PriceCalculator,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo:  sessionRepo,
		settingsRepo: settingsRepo,
		catalog:      platformCatalog,
		calculator:   calculator,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// Execute выполняет use case создания сессии
//
// Повторная проверка занятости и вставка выполняются в сериализуемой
// транзакции с блокировкой строк (FOR UPDATE). Вторым рубежом служит
// EXCLUDE-ограничение таблицы sessions: его нарушение репозиторий
// превращает в ErrSlotConflict, а этот usecase - в ErrSlotNotAvailable.
// Конфликт не ретраится - пользователь должен заново увидеть занятость
// и выбрать другое время
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: owner=%d, platform=%s, date=%s, time=%s, duration=%dm, players=%d",
		req.OwnerID, req.PlatformID, req.Date.Format(domain.DateFormat), req.StartTime,
		req.DurationMinutes, req.PlayerCount)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время в таймзоне клуба
	now := uc.timeProvider.Now().In(uc.location)

	// 3. Проверяем платформу в каталоге
	platform, err := uc.catalog.Get(req.PlatformID)
	if err != nil {
		if errors.Is(err, catalog.ErrPlatformNotFound) {
			uc.logger.Warn("CreateBooking: platform %q not found", req.PlatformID)
			return nil, ErrPlatformNotFound
		}
		uc.logger.Error("CreateBooking: failed to get platform %q: %v", req.PlatformID, err)
		return nil, fmt.Errorf("%w: failed to get platform: %v", ErrInternal, err)
	}

	// 4. Считаем стоимость (чистая функция, вне транзакции)
	quote, err := uc.calculator.ComputeTotal(req.PlatformID, req.DurationMinutes, req.PlayerCount, req.Extras)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrUnknownAddon):
			uc.logger.Warn("CreateBooking: unknown addon: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrUnknownAddon, err)
		case errors.Is(err, pricing.ErrUnsupportedDuration):
			uc.logger.Warn("CreateBooking: unsupported duration: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedDuration, err)
		default:
			uc.logger.Error("CreateBooking: failed to compute price: %v", err)
			return nil, fmt.Errorf("%w: failed to compute price: %v", ErrInternal, err)
		}
	}

	// 5. Вычисляем интервал сессии
	endTime, err := req.StartTime.AddMinutes(req.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateBooking: interval crosses midnight: %v", err)
		return nil, fmt.Errorf("%w: session interval crosses midnight", ErrOutsideOperatingHours)
	}

	// Переменная для хранения результата
	var result *domain.GameSession

	// 6. Выполняем проверку занятости и вставку в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем действующие настройки клуба для платформы
		settings, err := uc.settingsRepo.GetEffective(txCtx, req.PlatformID)
		if err != nil && !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Error("CreateBooking: failed to get settings: %v", err)
			return fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}

		// Если настроек нет, используем значения по умолчанию
		if settings == nil {
			settings = domain.DefaultClubSettings()
			uc.logger.Info("CreateBooking: using default settings for platform=%s", req.PlatformID)
		} else {
			uc.logger.Info("CreateBooking: using settings id=%d", settings.ID)
		}

		// 6.2. Валидация даты (не в прошлом, не дальше maxAdvanceDays)
		if err := validateDate(req.Date, now, settings.MaxAdvanceDays); err != nil {
			uc.logger.Warn("CreateBooking: date validation failed: %v", err)
			return err
		}

		// 6.3. Интервал должен лежать в рабочих часах и попадать на сетку слотов
		if err := validateInterval(req.StartTime, req.DurationMinutes, settings); err != nil {
			uc.logger.Warn("CreateBooking: interval validation failed: %v", err)
			return err
		}

		// 6.4. Проверка минимального времени до начала сессии
		if err := validateNotice(req.Date, req.StartTime, now, settings.MinNoticeMinutes); err != nil {
			uc.logger.Warn("CreateBooking: notice validation failed: %v", err)
			return err
		}

		// 6.5. Получаем все активные сессии платформы на эту дату с блокировкой (FOR UPDATE)
		filter := domain.ClubSessionsFilter{
			PlatformID:      ptr.Ptr(req.PlatformID),
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false, // Отмененные сессии место не занимают
		}

		sessions, err := uc.sessionRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get sessions: %v", err)
			return fmt.Errorf("%w: failed to get sessions: %v", ErrInternal, err)
		}

		// 6.6. Проверяем занятость интервала против вместимости платформы.
		// Считаем различные занятые места, а не пересекающиеся сессии:
		// две последовательные сессии на одном месте занимают одно место
		busyUnits := collectBusyUnits(req.StartTime, endTime, sessions)
		if len(busyUnits) >= platform.UnitCount {
			uc.logger.Warn("CreateBooking: slot not available, %d/%d units taken",
				len(busyUnits), platform.UnitCount)
			return ErrSlotNotAvailable
		}

		uc.logger.Info("CreateBooking: slot available, %d/%d units taken", len(busyUnits), platform.UnitCount)

		// 6.7. Назначаем свободное место платформы
		unitNo, ok := pickFreeUnit(busyUnits, platform.UnitCount)
		if !ok {
			// Не должно происходить после проверки выше
			return ErrSlotNotAvailable
		}

		// 6.8. Сохраняем сессию
		session := &domain.GameSession{
			PlatformID:      req.PlatformID,
			UnitNo:          unitNo,
			OwnerID:         req.OwnerID,
			SessionDate:     req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: req.DurationMinutes,
			PlayerCount:     req.PlayerCount,
			Extras:          req.Extras,
			TotalPrice:      quote.Total,
			Status:          domain.StatusBooked,
		}

		created, err := uc.sessionRepo.Create(txCtx, session)
		if err != nil {
			// Конкурирующая запись успела занять место - ограничение БД сработало
			if errors.Is(err, sessionRepo.ErrSlotConflict) {
				uc.logger.Warn("CreateBooking: lost slot race for platform=%s, time=%s",
					req.PlatformID, req.StartTime)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create session: %v", err)
			return fmt.Errorf("%w: failed to create session: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created session id=%d, total=%d", result.ID, result.TotalPrice)

	resultEnd, err := result.EndTime()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
	}

	return &Response{
		ID:              result.ID,
		OwnerID:         result.OwnerID,
		PlatformID:      result.PlatformID,
		UnitNo:          result.UnitNo,
		SessionDate:     result.SessionDate,
		StartTime:       result.StartTime,
		EndTime:         resultEnd,
		DurationMinutes: result.DurationMinutes,
		PlayerCount:     result.PlayerCount,
		Extras:          result.Extras,
		TotalPrice:      result.TotalPrice,
		Status:          string(result.Status),
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
