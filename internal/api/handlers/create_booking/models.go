package create_booking

import (
	"time"

	"github.com/avdm/GameClub-BookingService/internal/domain"
	createBooking "github.com/avdm/GameClub-BookingService/internal/usecase/create_booking"
	"github.com/avdm/GameClub-BookingService/pkg/types"
)

// CreateSessionRequest HTTP request model
type CreateSessionRequest struct {
	PlatformID      string   `json:"platformId"`
	SessionDate     string   `json:"sessionDate"` // "2026-09-15"
	StartTime       string   `json:"startTime"`   // "16:00"
	DurationMinutes int      `json:"durationMinutes"`
	PlayerCount     int      `json:"playerCount"`
	Extras          []string `json:"extras,omitempty"`
}

// SessionResponse HTTP response model
type SessionResponse struct {
	ID              int64    `json:"id"`
	OwnerID         int64    `json:"ownerId"`
	PlatformID      string   `json:"platformId"`
	UnitNo          int      `json:"unitNo"`
	SessionDate     string   `json:"sessionDate"`
	StartTime       string   `json:"startTime"`
	EndTime         string   `json:"endTime"`
	DurationMinutes int      `json:"durationMinutes"`
	PlayerCount     int      `json:"playerCount"`
	Extras          []string `json:"extras"`
	TotalPrice      int64    `json:"totalPrice"`
	Status          string   `json:"status"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateSessionRequest) ToUseCaseRequest(ownerID int64) (*createBooking.Request, error) {
	// Парсим дату
	sessionDate, err := time.Parse(domain.DateFormat, r.SessionDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		OwnerID:         ownerID,
		PlatformID:      r.PlatformID,
		Date:            sessionDate,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		PlayerCount:     r.PlayerCount,
		Extras:          r.Extras,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *SessionResponse {
	extras := resp.Extras
	if extras == nil {
		extras = []string{}
	}

	return &SessionResponse{
		ID:              resp.ID,
		OwnerID:         resp.OwnerID,
		PlatformID:      resp.PlatformID,
		UnitNo:          resp.UnitNo,
		SessionDate:     resp.SessionDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		PlayerCount:     resp.PlayerCount,
		Extras:          extras,
		TotalPrice:      resp.TotalPrice,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
