package models

import (
	"errors"
	"time"

	"github.com/avdm/GameClub-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid session status")
)

// Request модели

// CancelSessionRequest запрос на отмену сессии
type CancelSessionRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// CompleteSessionRequest запрос на завершение сессии (только для сотрудников)
type CompleteSessionRequest struct {
	UserID int64 `json:"userId"`
}

// GetUserSessionsRequest запрос на получение сессий пользователя
type GetUserSessionsRequest struct {
	OwnerID     int64   `json:"ownerId"`
	RequestorID int64   `json:"requestorId"`
	Status      *string `json:"status,omitempty"`
}

// GetClubSessionsRequest запрос на получение сессий клуба (для сотрудников)
type GetClubSessionsRequest struct {
	UserID          int64      `json:"userId"`
	PlatformID      *string    `json:"platformId,omitempty"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"includeInactive"`
}

// ToDomainFilter конвертирует запрос в доменный фильтр
func (r *GetClubSessionsRequest) ToDomainFilter() (domain.ClubSessionsFilter, error) {
	filter := domain.ClubSessionsFilter{
		PlatformID:      r.PlatformID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainSessionStatus(*r.Status)
		if err != nil {
			return domain.ClubSessionsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// SessionResponse сессия в ответе сервиса
type SessionResponse struct {
	ID              int64    `json:"id"`
	OwnerID         int64    `json:"ownerId"`
	PlatformID      string   `json:"platformId"`
	UnitNo          int      `json:"unitNo"`
	SessionDate     string   `json:"sessionDate"`
	StartTime       string   `json:"startTime"`
	DurationMinutes int      `json:"durationMinutes"`
	PlayerCount     int      `json:"playerCount"`
	Extras          []string `json:"extras"`
	TotalPrice      int64    `json:"totalPrice"`
	Status          string   `json:"status"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// SessionListResponse список сессий
type SessionListResponse struct {
	Sessions []SessionResponse `json:"sessions"`
	Total    int               `json:"total"`
}

// FromDomainSession конвертирует доменную модель в ответ сервиса
func FromDomainSession(s *domain.GameSession) *SessionResponse {
	resp := &SessionResponse{
		ID:                 s.ID,
		OwnerID:            s.OwnerID,
		PlatformID:         s.PlatformID,
		UnitNo:             s.UnitNo,
		SessionDate:        s.SessionDate.Format(domain.DateFormat),
		StartTime:          s.StartTime.String(),
		DurationMinutes:    s.DurationMinutes,
		PlayerCount:        s.PlayerCount,
		Extras:             s.Extras,
		TotalPrice:         s.TotalPrice,
		Status:             string(s.Status),
		CancellationReason: s.CancellationReason,
		CreatedAt:          s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          s.UpdatedAt.Format(time.RFC3339),
	}

	if s.CancelledAt != nil {
		cancelledAt := s.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	if resp.Extras == nil {
		resp.Extras = []string{}
	}

	return resp
}

// FromDomainSessionList конвертирует список доменных моделей
func FromDomainSessionList(sessions []*domain.GameSession) *SessionListResponse {
	result := make([]SessionResponse, len(sessions))
	for i, s := range sessions {
		result[i] = *FromDomainSession(s)
	}
	return &SessionListResponse{
		Sessions: result,
		Total:    len(result),
	}
}

// ToDomainSessionStatus конвертирует строку в доменный статус
func ToDomainSessionStatus(s string) (domain.SessionStatus, error) {
	switch domain.SessionStatus(s) {
	case domain.StatusBooked, domain.StatusCompleted, domain.StatusCancelled:
		return domain.SessionStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}
