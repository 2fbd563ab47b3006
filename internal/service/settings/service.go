package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/avdm/GameClub-BookingService/internal/domain"
	settingsRepo "github.com/avdm/GameClub-BookingService/internal/infra/storage/settings"
	authClient "github.com/avdm/GameClub-BookingService/internal/integrations/authservice"
	"github.com/avdm/GameClub-BookingService/internal/service/settings/models"
)

// Service сервис для работы с настройками бронирования клуба
type Service struct {
	settingsRepo    SettingsRepository
	platformCatalog PlatformCatalog
	authClient      AuthServiceClient
	logger          Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(
	settingsRepo SettingsRepository,
	platformCatalog PlatformCatalog,
	authClient AuthServiceClient,
	logger Logger,
) *Service {
	return &Service{
		settingsRepo:    settingsRepo,
		platformCatalog: platformCatalog,
		authClient:      authClient,
		logger:          logger,
	}
}

// GetEffective получает действующие настройки для платформы
// Публичный метод - доступен всем
// Если платформа не указана, возвращает общеклубные настройки
// Если в БД нет ни одной подходящей строки, возвращает значения по умолчанию
func (s *Service) GetEffective(ctx context.Context, platformID *string) (*models.SettingsResponse, error) {
	s.logger.Info("GetEffective: fetching settings for platform=%v", platformID)

	if platformID != nil {
		// Проверяем существование платформы в каталоге
		if _, err := s.platformCatalog.Get(*platformID); err != nil {
			s.logger.Warn("GetEffective: platform id=%s not found", *platformID)
			return nil, ErrPlatformNotFound
		}
	}

	var (
		settings *domain.ClubSettings
		err      error
	)
	if platformID != nil {
		settings, err = s.settingsRepo.GetEffective(ctx, *platformID)
	} else {
		settings, err = s.settingsRepo.GetByPlatform(ctx, nil)
	}

	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Info("GetEffective: no settings in storage, using defaults")
			return models.FromDomainSettings(domain.DefaultClubSettings()), nil
		}
		s.logger.Error("GetEffective: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetEffective - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetEffective: successfully fetched settings id=%d", settings.ID)
	return models.FromDomainSettings(settings), nil
}

// GetAll получает все строки настроек клуба
// Доступно только сотрудникам
func (s *Service) GetAll(ctx context.Context, userID int64) (*models.SettingsListResponse, error) {
	s.logger.Info("GetAll: fetching all settings by user=%d", userID)

	if err := s.checkStaffAccess(ctx, userID); err != nil {
		return nil, err
	}

	settings, err := s.settingsRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAll: successfully fetched %d settings rows", len(settings))
	return models.FromDomainSettingsList(settings), nil
}

// Update создает или обновляет настройки клуба (платформенные или общеклубные)
// Доступно только сотрудникам
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating settings for platform=%v by user=%d", req.PlatformID, req.UserID)

	// 1. Проверяем права сотрудника
	if err := s.checkStaffAccess(ctx, req.UserID); err != nil {
		s.logger.Warn("Update: access denied for user=%d", req.UserID)
		return nil, err
	}

	// 2. Если указана платформа, проверяем её существование в каталоге
	if req.PlatformID != nil {
		if _, err := s.platformCatalog.Get(*req.PlatformID); err != nil {
			s.logger.Warn("Update: platform id=%s not found", *req.PlatformID)
			return nil, ErrPlatformNotFound
		}
	}

	// 3. Валидируем параметры настроек
	if err := s.validateSettingsData(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	// 4. Создаем или обновляем строку настроек
	updated, err := s.settingsRepo.Upsert(ctx, req.ToDomainSettings())
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated settings id=%d", updated.ID)
	return models.FromDomainSettings(updated), nil
}

// Delete удаляет строку настроек по ID
// Удаление платформенной строки возвращает платформу на общеклубные настройки
// Доступно только сотрудникам
func (s *Service) Delete(ctx context.Context, settingsID int64, userID int64) error {
	s.logger.Info("Delete: deleting settings id=%d by user=%d", settingsID, userID)

	if err := s.checkStaffAccess(ctx, userID); err != nil {
		s.logger.Warn("Delete: access denied for user=%d", userID)
		return err
	}

	if err := s.settingsRepo.Delete(ctx, settingsID); err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Warn("Delete: settings id=%d not found", settingsID)
			return ErrSettingsNotFound
		}
		s.logger.Error("Delete: repository error: %v", err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted settings id=%d", settingsID)
	return nil
}

// Вспомогательные методы

// validateSettingsData валидирует параметры настроек
func (s *Service) validateSettingsData(req *models.UpdateSettingsRequest) error {
	if req.SlotGranularityMinutes < domain.MinSlotGranularityMinutes ||
		req.SlotGranularityMinutes > domain.MaxSlotGranularityMinutes {
		return fmt.Errorf("%w: slot granularity must be between %d and %d minutes",
			ErrInvalidInput, domain.MinSlotGranularityMinutes, domain.MaxSlotGranularityMinutes)
	}

	if req.OpeningHour < domain.MinOpeningHour || req.OpeningHour > domain.MaxClosingHour {
		return fmt.Errorf("%w: opening hour must be between %d and %d",
			ErrInvalidInput, domain.MinOpeningHour, domain.MaxClosingHour)
	}

	if req.ClosingHour < domain.MinOpeningHour || req.ClosingHour > domain.MaxClosingHour {
		return fmt.Errorf("%w: closing hour must be between %d and %d",
			ErrInvalidInput, domain.MinOpeningHour, domain.MaxClosingHour)
	}

	if req.OpeningHour >= req.ClosingHour {
		return fmt.Errorf("%w: opening hour must be before closing hour", ErrInvalidInput)
	}

	// Часы работы должны вмещать хотя бы один слот
	if (req.ClosingHour-req.OpeningHour)*60 < req.SlotGranularityMinutes {
		return fmt.Errorf("%w: operating hours are shorter than one slot", ErrInvalidInput)
	}

	if req.MinNoticeMinutes < 0 || req.MinNoticeMinutes > domain.MinNoticeMinutesLimit {
		return fmt.Errorf("%w: min notice must be between 0 and %d minutes",
			ErrInvalidInput, domain.MinNoticeMinutesLimit)
	}

	if req.MaxAdvanceDays < 0 || req.MaxAdvanceDays > domain.MaxAdvanceDaysLimit {
		return fmt.Errorf("%w: max advance days must be between 0 and %d",
			ErrInvalidInput, domain.MaxAdvanceDaysLimit)
	}

	return nil
}

// checkStaffAccess проверяет, что пользователь является сотрудником клуба
func (s *Service) checkStaffAccess(ctx context.Context, userID int64) error {
	profile, err := s.authClient.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, authClient.ErrUserNotFound) {
			s.logger.Warn("checkStaffAccess: user=%d not found", userID)
			return ErrAccessDenied
		}
		s.logger.Error("checkStaffAccess: failed to get user=%d: %v", userID, err)
		return fmt.Errorf("%w: checkStaffAccess - failed to get user: %v", ErrInternal, err)
	}

	if !profile.IsStaff() {
		s.logger.Warn("checkStaffAccess: user=%d is not a staff member", userID)
		return ErrAccessDenied
	}

	return nil
}
