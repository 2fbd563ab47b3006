package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdm/GameClub-BookingService/internal/catalog"
	"github.com/avdm/GameClub-BookingService/internal/domain"
	sessionRepo "github.com/avdm/GameClub-BookingService/internal/infra/storage/session"
	settingsRepo "github.com/avdm/GameClub-BookingService/internal/infra/storage/settings"
	"github.com/avdm/GameClub-BookingService/internal/pricing"
	"github.com/avdm/GameClub-BookingService/pkg/types"
)

// Фейки зависимостей use case

type fakeSessionRepo struct {
	existing  []*domain.GameSession
	createErr error
	created   *domain.GameSession
}

func (f *fakeSessionRepo) GetWithFilter(_ context.Context, _ domain.ClubSessionsFilter) ([]*domain.GameSession, error) {
	return f.existing, nil
}

func (f *fakeSessionRepo) Create(_ context.Context, session *domain.GameSession) (*domain.GameSession, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *session
	created.ID = 101
	created.CreatedAt = time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
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

// fakeTxManager исполняет функцию без транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
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

func existingSession(t *testing.T, start string, durationMinutes, unitNo int, status domain.SessionStatus) *domain.GameSession {
	t.Helper()
	return &domain.GameSession{
		ID:              1,
		PlatformID:      "ps5",
		UnitNo:          unitNo,
		OwnerID:         7,
		SessionDate:     time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       mustTime(t, start),
		DurationMinutes: durationMinutes,
		PlayerCount:     1,
		Status:          status,
	}
}

func newTestUseCase(repo *fakeSessionRepo, settings *fakeSettingsRepo, now time.Time) (*UseCase, *fakeTxManager) {
	return newTestUseCaseIn(repo, settings, now, time.UTC)
}

func newTestUseCaseIn(
	repo *fakeSessionRepo,
	settings *fakeSettingsRepo,
	now time.Time,
	location *time.Location,
) (*UseCase, *fakeTxManager) {
	c := catalog.NewDefault()
	txMgr := &fakeTxManager{}
	uc := NewUseCase(repo, settings, c, pricing.NewCalculator(c), txMgr, location, noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc, txMgr
}

func validRequest(t *testing.T) *Request {
	t.Helper()
	return &Request{
		OwnerID:         42,
		PlatformID:      "xbox",
		Date:            time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       mustTime(t, "16:00"),
		DurationMinutes: 60,
		PlayerCount:     1,
	}
}

func TestExecute_Success(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	repo := &fakeSessionRepo{}
	uc, txMgr := newTestUseCase(repo, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound}, now)

	resp, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, int64(42), resp.OwnerID)
	assert.Equal(t, "xbox", resp.PlatformID)
	assert.Equal(t, 0, resp.UnitNo)
	assert.Equal(t, "16:00", resp.StartTime.String())
	assert.Equal(t, "17:00", resp.EndTime.String())
	// Час Xbox по часовой ставке без дополнений
	assert.Equal(t, int64(1500), resp.TotalPrice)
	assert.Equal(t, string(domain.StatusBooked), resp.Status)

	// Вставка шла внутри транзакции
	assert.Equal(t, 1, txMgr.calls)
	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusBooked, repo.created.Status)
}

func TestExecute_AssignsLowestFreeUnit(t *testing.T) {
	// Места 0 и 2 заняты пересекающимися сессиями: новая сессия получает место 1
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	repo := &fakeSessionRepo{existing: []*domain.GameSession{
		existingSession(t, "15:30", 60, 0, domain.StatusBooked),
		existingSession(t, "16:00", 90, 2, domain.StatusBooked),
	}}
	uc, _ := newTestUseCase(repo, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound}, now)

	req := validRequest(t)
	req.PlatformID = "ps5"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.UnitNo)
}

func TestExecute_SlotFullyBooked(t *testing.T) {
	// Все 3 места Xbox заняты на пересекающийся интервал
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	repo := &fakeSessionRepo{existing: []*domain.GameSession{
		existingSession(t, "16:00", 60, 0, domain.StatusBooked),
		existingSession(t, "15:30", 60, 1, domain.StatusBooked),
		existingSession(t, "16:30", 60, 2, domain.StatusBooked),
	}}
	uc, _ := newTestUseCase(repo, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound}, now)

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, repo.created)
}

func TestExecute_SequentialSessionsOnOneUnitOccupyOneUnit(t *testing.T) {
	// Две последовательные сессии на месте 0 (15:30-16:30 и 16:30-17:30) обе
	// пересекаются с запросом [16:00, 17:00), но занимают одно место, а не два:
	// на VR с двумя местами запрос должен получить место 1
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	first := existingSession(t, "15:30", 60, 0, domain.StatusBooked)
	second := existingSession(t, "16:30", 60, 0, domain.StatusBooked)
	first.PlatformID = "vr"
	second.PlatformID = "vr"
	repo := &fakeSessionRepo{existing: []*domain.GameSession{first, second}}
	uc, _ := newTestUseCase(repo, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound}, now)

	req := validRequest(t)
	req.PlatformID = "vr"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.UnitNo)
}

func TestExecute_AdjacentSessionsDoNotConflict(t *testing.T) {
	// Сессия, заканчивающаяся ровно в 16:00, не пересекается с [16:00, 17:00)
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	repo := &fakeSessionRepo{existing: []*domain.GameSession{
		existingSession(t, "15:00", 60, 0, domain.StatusBooked),
		existingSession(t, "17:00", 60, 0, domain.StatusBooked),
	}}
	uc, _ := newTestUseCase(repo, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound}, now)

	resp, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)
	assert.Equal(t, 0, resp.UnitNo)
}

func TestExecute_CancelledSessionFreesSlot(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	repo := &fakeSessionRepo{existing: []*domain.GameSession{
		existingSession(t, "16:00", 60, 0, domain.StatusCancelled),
	}}
	uc, _ := newTestUseCase(repo, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound}, now)

	resp, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)
	assert.Equal(t, 0, resp.UnitNo)
}

func TestExecute_LostRaceMapsConflictToSlotNotAvailable(t *testing.T) {
	// Ограничение БД сработало при вставке - пользователь получает тот же
	// ответ, что и при обычной занятости слота
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	repo := &fakeSessionRepo{createErr: sessionRepo.ErrSlotConflict}
	uc, _ := newTestUseCase(repo, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound}, now)

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_PastDateRejected(t *testing.T) {
	now := time.Date(2026, 9, 16, 12, 0, 0, 0, time.UTC)
	uc, _ := newTestUseCase(&fakeSessionRepo{}, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound}, now)

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_AdvanceLimitRejected(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	settings := &domain.ClubSettings{
		ID:                     3,
		SlotGranularityMinutes: 30,
		OpeningHour:            10,
		ClosingHour:            22,
		MinNoticeMinutes:       60,
		MaxAdvanceDays:         3,
	}
	uc, _ := newTestUseCase(&fakeSessionRepo{}, &fakeSettingsRepo{settings: settings}, now)

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_SameDayBookingInWesternTimezone(t *testing.T) {
	// Дата сессии парсится как полночь UTC, а now приходит в зоне клуба.
	// Западнее UTC полночь UTC наступает раньше местной: сравнение абсолютных
	// моментов забраковало бы любую сегодняшнюю бронь как прошедшую дату
	loc := time.FixedZone("UTC-4", -4*3600)
	now := time.Date(2026, 9, 15, 8, 0, 0, 0, loc)
	repo := &fakeSessionRepo{}
	uc, _ := newTestUseCaseIn(repo, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound}, now, loc)

	resp, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)
	assert.Equal(t, "16:00", resp.StartTime.String())
}

func TestExecute_AdvanceBoundaryInEasternTimezone(t *testing.T) {
	// Восточнее UTC местная полночь наступает раньше UTC: бронь ровно на
	// maxAdvanceDays вперед должна проходить, сравниваются календарные дни
	loc := time.FixedZone("UTC+12", 12*3600)
	now := time.Date(2026, 9, 12, 23, 0, 0, 0, loc)
	settings := &domain.ClubSettings{
		ID:                     3,
		SlotGranularityMinutes: 30,
		OpeningHour:            10,
		ClosingHour:            22,
		MinNoticeMinutes:       60,
		MaxAdvanceDays:         3,
	}
	repo := &fakeSessionRepo{}
	uc, _ := newTestUseCaseIn(repo, &fakeSettingsRepo{settings: settings}, now, loc)

	resp, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)

	// На день позже ограничение срабатывает
	req := validRequest(t)
	req.Date = time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_OutsideOperatingHours(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	uc, _ := newTestUseCase(&fakeSessionRepo{}, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound}, now)

	// Начало до открытия
	req := validRequest(t)
	req.StartTime = mustTime(t, "09:00")
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideOperatingHours)

	// Конец после закрытия: 21:30 + 60 минут = 22:30
	req = validRequest(t)
	req.StartTime = mustTime(t, "21:30")
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideOperatingHours)
}

func TestExecute_MisalignedStartTime(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	uc, _ := newTestUseCase(&fakeSessionRepo{}, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound}, now)

	req := validRequest(t)
	req.StartTime = mustTime(t, "16:15")
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_TooLateToBook(t *testing.T) {
	// Сегодня 15:30, notice 60 минут: 16:00 бронировать уже поздно
	now := time.Date(2026, 9, 15, 15, 30, 0, 0, time.UTC)
	uc, _ := newTestUseCase(&fakeSessionRepo{}, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound}, now)

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_UnsupportedDuration(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	uc, _ := newTestUseCase(&fakeSessionRepo{}, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound}, now)

	req := validRequest(t)
	req.DurationMinutes = 45
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrUnsupportedDuration)
}

func TestExecute_UnknownAddon(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	uc, _ := newTestUseCase(&fakeSessionRepo{}, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound}, now)

	req := validRequest(t)
	req.Extras = []string{"pizza"}
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrUnknownAddon)
}

func TestExecute_UnknownPlatform(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	uc, _ := newTestUseCase(&fakeSessionRepo{}, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound}, now)

	req := validRequest(t)
	req.PlatformID = "dendy"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPlatformNotFound)
}

func TestExecute_InvalidPlayerCount(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	uc, _ := newTestUseCase(&fakeSessionRepo{}, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound}, now)

	req := validRequest(t)
	req.PlayerCount = 0
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_PriceIncludesExtrasAndSurcharge(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	repo := &fakeSessionRepo{}
	uc, _ := newTestUseCase(repo, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound}, now)

	req := validRequest(t)
	req.PlatformID = "ps5"
	req.DurationMinutes = 120
	req.PlayerCount = 2
	req.Extras = []string{"snacks"}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	// 2000*2 + 2000 + 500
	assert.Equal(t, int64(6500), resp.TotalPrice)
	assert.Equal(t, int64(6500), repo.created.TotalPrice)
}
