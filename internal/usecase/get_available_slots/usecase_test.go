package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdm/GameClub-BookingService/internal/catalog"
	"github.com/avdm/GameClub-BookingService/internal/domain"
	settingsRepo "github.com/avdm/GameClub-BookingService/internal/infra/storage/settings"
	"github.com/avdm/GameClub-BookingService/pkg/types"
)

// Фейки зависимостей use case

type fakeSessionRepo struct {
	sessions []*domain.GameSession
	err      error
}

func (f *fakeSessionRepo) GetWithFilter(_ context.Context, _ domain.ClubSessionsFilter) ([]*domain.GameSession, error) {
	return f.sessions, f.err
}

type fakeSettingsRepo struct {
	settings *domain.ClubSettings
	err      error
}

func (f *fakeSettingsRepo) GetEffective(_ context.Context, _ string) (*domain.ClubSettings, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.settings, nil
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func session(t *testing.T, start string, durationMinutes, unitNo int, status domain.SessionStatus) *domain.GameSession {
	t.Helper()
	return &domain.GameSession{
		ID:              1,
		PlatformID:      "ps5",
		UnitNo:          unitNo,
		OwnerID:         100,
		SessionDate:     time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       mustTime(t, start),
		DurationMinutes: durationMinutes,
		PlayerCount:     1,
		Status:          status,
	}
}

func newTestUseCase(sessions *fakeSessionRepo, settings *fakeSettingsRepo, now time.Time) *UseCase {
	return newTestUseCaseIn(sessions, settings, now, time.UTC)
}

func newTestUseCaseIn(
	sessions *fakeSessionRepo,
	settings *fakeSettingsRepo,
	now time.Time,
	location *time.Location,
) *UseCase {
	uc := NewUseCase(sessions, settings, catalog.NewDefault(), location, noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func TestExecute_FullDayGrid(t *testing.T) {
	// Запрос на будущую дату без сессий: полная сетка 10:00-22:00 с шагом 30 минут
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeSessionRepo{}, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		PlatformID: "ps5",
		Date:       time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// (22 - 10) * 60 / 30 = 24 слота
	require.Len(t, resp.Slots, 24)
	assert.Equal(t, "10:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "21:30", resp.Slots[23].StartTime.String())

	// Слоты строго хронологические, все свободны
	for i, slot := range resp.Slots {
		if i > 0 {
			assert.True(t, resp.Slots[i-1].StartTime.IsBefore(slot.StartTime))
		}
		assert.True(t, slot.Available)
		assert.Equal(t, 4, slot.AvailableUnits)
		assert.Equal(t, 4, slot.TotalUnits)
		assert.Equal(t, 30, slot.DurationMinutes)
	}
}

func TestExecute_SessionBlocksCoveredSlots(t *testing.T) {
	// Сессия 14:00-15:00 занимает одно место в слотах 14:00 и 14:30,
	// слот 15:00 уже свободен (конец интервала не блокирует)
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	repo := &fakeSessionRepo{sessions: []*domain.GameSession{
		session(t, "14:00", 60, 0, domain.StatusBooked),
	}}
	uc := newTestUseCase(repo, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		PlatformID: "ps5",
		Date:       time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	byStart := make(map[string]Slot)
	for _, slot := range resp.Slots {
		byStart[slot.StartTime.String()] = slot
	}

	assert.Equal(t, 3, byStart["14:00"].AvailableUnits)
	assert.Equal(t, 3, byStart["14:30"].AvailableUnits)
	assert.Equal(t, 4, byStart["13:30"].AvailableUnits)
	assert.Equal(t, 4, byStart["15:00"].AvailableUnits)
}

func TestExecute_FullPlatformMarksSlotUnavailable(t *testing.T) {
	// Все 2 места VR заняты на 16:00 - слот недоступен
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	sessions := []*domain.GameSession{
		session(t, "16:00", 60, 0, domain.StatusBooked),
		session(t, "16:00", 60, 1, domain.StatusBooked),
	}
	uc := newTestUseCase(&fakeSessionRepo{sessions: sessions}, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		PlatformID: "vr",
		Date:       time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		if slot.StartTime.String() == "16:00" || slot.StartTime.String() == "16:30" {
			assert.False(t, slot.Available, "slot %s", slot.StartTime)
			assert.Equal(t, 0, slot.AvailableUnits)
		} else {
			assert.True(t, slot.Available, "slot %s", slot.StartTime)
		}
	}
}

func TestExecute_CancelledSessionDoesNotBlock(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	repo := &fakeSessionRepo{sessions: []*domain.GameSession{
		session(t, "14:00", 60, 0, domain.StatusCancelled),
	}}
	uc := newTestUseCase(repo, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		PlatformID: "ps5",
		Date:       time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		assert.Equal(t, 4, slot.AvailableUnits)
	}
}

func TestExecute_Idempotent(t *testing.T) {
	// Повторный запрос при неизменном состоянии дает идентичный результат
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	repo := &fakeSessionRepo{sessions: []*domain.GameSession{
		session(t, "12:00", 90, 0, domain.StatusBooked),
	}}
	uc := newTestUseCase(repo, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound}, now)

	req := &Request{PlatformID: "ps5", Date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExecute_SameDayNoticeFiltering(t *testing.T) {
	// Сегодня 14:10, minNotice 60 минут: первый доступный слот - 15:30
	now := time.Date(2026, 9, 15, 14, 10, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeSessionRepo{}, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		PlatformID: "ps5",
		Date:       time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, "15:30", resp.Slots[0].StartTime.String())
	assert.Equal(t, "21:30", resp.Slots[len(resp.Slots)-1].StartTime.String())
}

func TestExecute_PastDateReturnsFullGrid(t *testing.T) {
	// Исторический запрос: фильтрация по notice не применяется
	now := time.Date(2026, 9, 20, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeSessionRepo{}, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		PlatformID: "ps5",
		Date:       time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 24)
}

func TestExecute_CustomSettings(t *testing.T) {
	// Часовая сетка 12:00-20:00 дает 8 слотов
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	settings := &domain.ClubSettings{
		ID:                     7,
		SlotGranularityMinutes: 60,
		OpeningHour:            12,
		ClosingHour:            20,
		MinNoticeMinutes:       60,
	}
	uc := newTestUseCase(&fakeSessionRepo{}, &fakeSettingsRepo{settings: settings}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		PlatformID: "ps5",
		Date:       time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 8)
	assert.Equal(t, "12:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "19:00", resp.Slots[7].StartTime.String())
	assert.Equal(t, 60, resp.Slots[0].DurationMinutes)
}

func TestExecute_AdvanceLimit(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	settings := &domain.ClubSettings{
		ID:                     8,
		SlotGranularityMinutes: 30,
		OpeningHour:            10,
		ClosingHour:            22,
		MinNoticeMinutes:       60,
		MaxAdvanceDays:         7,
	}
	uc := newTestUseCase(&fakeSessionRepo{}, &fakeSettingsRepo{settings: settings}, now)

	// Ровно через 7 дней - можно
	_, err := uc.Execute(context.Background(), &Request{
		PlatformID: "ps5",
		Date:       time.Date(2026, 9, 17, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// Через 8 дней - за пределами окна
	_, err = uc.Execute(context.Background(), &Request{
		PlatformID: "ps5",
		Date:       time.Date(2026, 9, 18, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_AdvanceLimitInEasternTimezone(t *testing.T) {
	// Дата запроса парсится как полночь UTC, а now приходит в зоне клуба.
	// Сравниваются календарные дни: восточнее UTC запрос ровно на
	// maxAdvanceDays вперед не должен отбрасываться на границе окна
	loc := time.FixedZone("UTC+12", 12*3600)
	now := time.Date(2026, 9, 10, 23, 0, 0, 0, loc)
	settings := &domain.ClubSettings{
		ID:                     8,
		SlotGranularityMinutes: 30,
		OpeningHour:            10,
		ClosingHour:            22,
		MinNoticeMinutes:       60,
		MaxAdvanceDays:         7,
	}
	uc := newTestUseCaseIn(&fakeSessionRepo{}, &fakeSettingsRepo{settings: settings}, now, loc)

	resp, err := uc.Execute(context.Background(), &Request{
		PlatformID: "ps5",
		Date:       time.Date(2026, 9, 17, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 24)
}

func TestExecute_UnknownPlatform(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeSessionRepo{}, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound}, now)

	_, err := uc.Execute(context.Background(), &Request{
		PlatformID: "dendy",
		Date:       time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrPlatformNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeSessionRepo{}, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound}, now)

	_, err := uc.Execute(context.Background(), &Request{PlatformID: "", Date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{PlatformID: "ps5"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
