package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avdm/GameClub-BookingService/internal/domain"
	sessionRepo "github.com/avdm/GameClub-BookingService/internal/infra/storage/session"
	authClient "github.com/avdm/GameClub-BookingService/internal/integrations/authservice"
	"github.com/avdm/GameClub-BookingService/internal/service/sessions/models"
)

// Service сервис для работы с существующими игровыми сессиями
// Управляет чтением и переходами статусов; создание сессий - зона
// ответственности usecase create_booking
type Service struct {
	sessionRepo  SessionRepository
	authClient   AuthServiceClient
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewService создает новый экземпляр сервиса сессий
func NewService(
	sessionRepo SessionRepository,
	authClient AuthServiceClient,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		sessionRepo:  sessionRepo,
		authClient:   authClient,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// GetByID получает сессию по ID
// Пользователь может видеть только свою сессию, сотрудник - любую
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.SessionResponse, error) {
	s.logger.Info("GetByID: fetching session id=%d for user=%d", id, userID)

	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("GetByID: session id=%d not found", id)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("GetByID: repository error for session id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkOwnerAccess(ctx, session, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to session id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched session id=%d", id)
	return models.FromDomainSession(session), nil
}

// GetUserSessions получает историю сессий пользователя
// Опционально фильтрует по статусу; чужую историю может смотреть только сотрудник
func (s *Service) GetUserSessions(ctx context.Context, req *models.GetUserSessionsRequest) (*models.SessionListResponse, error) {
	s.logger.Info("GetUserSessions: fetching sessions for owner=%d, requestor=%d, status=%v",
		req.OwnerID, req.RequestorID, req.Status)

	if req.OwnerID != req.RequestorID {
		if err := s.checkStaffAccess(ctx, req.RequestorID); err != nil {
			s.logger.Warn("GetUserSessions: access denied for user=%d to sessions of owner=%d",
				req.RequestorID, req.OwnerID)
			return nil, ErrAccessDenied
		}
	}

	// Конвертируем статус из строки в доменный
	var domainStatus *domain.SessionStatus
	if req.Status != nil {
		status, err := models.ToDomainSessionStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserSessions: invalid status=%s for owner=%d", *req.Status, req.OwnerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	sessions, err := s.sessionRepo.GetByOwnerID(ctx, req.OwnerID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserSessions: repository error for owner=%d: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: GetUserSessions - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserSessions: successfully fetched %d sessions for owner=%d", len(sessions), req.OwnerID)
	return models.FromDomainSessionList(sessions), nil
}

// GetClubSessions получает сессии клуба с гибкой фильтрацией
// Доступно только сотрудникам (админский список бронирований)
func (s *Service) GetClubSessions(ctx context.Context, req *models.GetClubSessionsRequest) (*models.SessionListResponse, error) {
	s.logger.Info("GetClubSessions: fetching club sessions for user=%d", req.UserID)

	// Проверяем права сотрудника
	if err := s.checkStaffAccess(ctx, req.UserID); err != nil {
		return nil, err
	}

	// Конвертируем request в доменный фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetClubSessions: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	sessions, err := s.sessionRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetClubSessions: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetClubSessions - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClubSessions: successfully fetched %d sessions", len(sessions))
	return models.FromDomainSessionList(sessions), nil
}

// Cancel отменяет сессию (переход booked -> cancelled)
// Владелец может отменить свою сессию, сотрудник - любую.
// Отмена возможна только до начала сессии; из терминальных статусов
// переходов нет
func (s *Service) Cancel(ctx context.Context, sessionID int64, req *models.CancelSessionRequest) error {
	s.logger.Info("Cancel: cancelling session id=%d by user=%d", sessionID, req.UserID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: cancellation reason too long for session id=%d", sessionID)
		return fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	// Получаем сессию
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("Cancel: session id=%d not found", sessionID)
			return ErrSessionNotFound
		}
		s.logger.Error("Cancel: repository error for session id=%d: %v", sessionID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа (владелец или сотрудник)
	if err := s.checkOwnerAccess(ctx, session, req.UserID); err != nil {
		s.logger.Warn("Cancel: access denied for user=%d to session id=%d", req.UserID, sessionID)
		return err
	}

	// Проверяем допустимость перехода
	now := s.timeProvider.Now().In(s.location)
	if !session.CanBeCancelled(now) {
		s.logger.Warn("Cancel: invalid transition for session id=%d, status=%s, start=%s",
			sessionID, session.Status, session.StartInstant().Format(time.RFC3339))
		return ErrInvalidStateTransition
	}

	// Отменяем сессию
	if err := s.sessionRepo.Cancel(ctx, sessionID, req.CancellationReason); err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("Cancel: session id=%d not found during cancellation", sessionID)
			return ErrSessionNotFound
		}
		s.logger.Error("Cancel: repository error for session id=%d: %v", sessionID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled session id=%d", sessionID)
	return nil
}

// Complete завершает сессию (переход booked -> completed)
// Доступно только сотрудникам и только после окончания интервала сессии
func (s *Service) Complete(ctx context.Context, sessionID int64, req *models.CompleteSessionRequest) error {
	s.logger.Info("Complete: completing session id=%d by user=%d", sessionID, req.UserID)

	// Проверяем права сотрудника
	if err := s.checkStaffAccess(ctx, req.UserID); err != nil {
		s.logger.Warn("Complete: access denied for user=%d to session id=%d", req.UserID, sessionID)
		return err
	}

	// Получаем сессию
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("Complete: session id=%d not found", sessionID)
			return ErrSessionNotFound
		}
		s.logger.Error("Complete: repository error for session id=%d: %v", sessionID, err)
		return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	// Проверяем допустимость перехода
	now := s.timeProvider.Now().In(s.location)
	if !session.CanBeCompleted(now) {
		s.logger.Warn("Complete: invalid transition for session id=%d, status=%s, end=%s",
			sessionID, session.Status, session.EndInstant().Format(time.RFC3339))
		return ErrInvalidStateTransition
	}

	// Обновляем статус
	if err := s.sessionRepo.UpdateStatus(ctx, sessionID, domain.StatusCompleted); err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("Complete: session id=%d not found during update", sessionID)
			return ErrSessionNotFound
		}
		s.logger.Error("Complete: repository error for session id=%d: %v", sessionID, err)
		return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Complete: successfully completed session id=%d", sessionID)
	return nil
}

// Вспомогательные методы

// checkOwnerAccess проверяет, что пользователь имеет доступ к сессии
// Доступ разрешен владельцу сессии и сотрудникам клуба
func (s *Service) checkOwnerAccess(ctx context.Context, session *domain.GameSession, userID int64) error {
	// Если пользователь владелец сессии - доступ разрешен
	if session.OwnerID == userID {
		return nil
	}

	// Иначе доступ есть только у сотрудника
	if err := s.checkStaffAccess(ctx, userID); err != nil {
		return ErrAccessDenied
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

	s.logger.Info("checkStaffAccess: user=%d is a staff member", userID)
	return nil
}
