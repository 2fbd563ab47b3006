package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avdm/GameClub-BookingService/internal/domain"
	"github.com/avdm/GameClub-BookingService/pkg/dbmetrics"
	"github.com/avdm/GameClub-BookingService/pkg/psqlbuilder"
)

var settingsColumns = []string{
	"id",
	"platform_id",
	"slot_granularity_minutes",
	"opening_hour",
	"closing_hour",
	"min_notice_minutes",
	"max_advance_days",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с настройками клуба
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByPlatform получает строку настроек для платформы (или общеклубную при platformID == nil)
func (r *Repository) GetByPlatform(ctx context.Context, platformID *string) (*domain.ClubSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(settingsColumns...).
		From("club_settings")

	if platformID == nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"platform_id": nil})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"platform_id": *platformID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPlatform - build select query: %v", ErrBuildQuery, err)
	}

	settings, err := r.scanSettings(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPlatform - scan settings: %v", ErrScanRow, err)
	}

	return settings, nil
}

// GetEffective получает действующие настройки для платформы с учетом приоритета:
// 1. Строка для конкретной платформы
// 2. Общеклубная строка (platform_id IS NULL)
//
// Если ни одной строки нет, возвращает ErrSettingsNotFound
// (вызывающая сторона применяет значения по умолчанию)
func (r *Repository) GetEffective(ctx context.Context, platformID string) (*domain.ClubSettings, error) {
	settings, err := r.GetByPlatform(ctx, &platformID)
	if err == nil {
		return settings, nil
	}
	if err != ErrSettingsNotFound {
		return nil, fmt.Errorf("%w: GetEffective - platform level: %v", ErrExecQuery, err)
	}

	settings, err = r.GetByPlatform(ctx, nil)
	if err == nil {
		return settings, nil
	}
	if err != ErrSettingsNotFound {
		return nil, fmt.Errorf("%w: GetEffective - club level: %v", ErrExecQuery, err)
	}

	return nil, ErrSettingsNotFound
}

// GetAll получает все строки настроек (общеклубная первой)
func (r *Repository) GetAll(ctx context.Context) ([]*domain.ClubSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(settingsColumns...).
		From("club_settings").
		OrderBy("platform_id ASC NULLS FIRST").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.ClubSettings, 0)
	for rows.Next() {
		settings, err := r.scanSettings(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}
		result = append(result, settings)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Upsert создает или обновляет строку настроек для уровня (платформа или клуб)
func (r *Repository) Upsert(ctx context.Context, settings *domain.ClubSettings) (*domain.ClubSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("club_settings").
		Columns(
			"platform_id",
			"slot_granularity_minutes",
			"opening_hour",
			"closing_hour",
			"min_notice_minutes",
			"max_advance_days",
		).
		Values(
			settings.PlatformID,
			settings.SlotGranularityMinutes,
			settings.OpeningHour,
			settings.ClosingHour,
			settings.MinNoticeMinutes,
			settings.MaxAdvanceDays,
		).
		Suffix(`ON CONFLICT (COALESCE(platform_id, '')) DO UPDATE SET
			slot_granularity_minutes = EXCLUDED.slot_granularity_minutes,
			opening_hour = EXCLUDED.opening_hour,
			closing_hour = EXCLUDED.closing_hour,
			min_notice_minutes = EXCLUDED.min_notice_minutes,
			max_advance_days = EXCLUDED.max_advance_days,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	return settings, nil
}

// Delete удаляет строку настроек по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("club_settings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSettingsNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanSettings(row rowScanner) (*domain.ClubSettings, error) {
	var settings domain.ClubSettings
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&settings.ID,
		&settings.PlatformID,
		&settings.SlotGranularityMinutes,
		&settings.OpeningHour,
		&settings.ClosingHour,
		&settings.MinNoticeMinutes,
		&settings.MaxAdvanceDays,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	return &settings, nil
}
