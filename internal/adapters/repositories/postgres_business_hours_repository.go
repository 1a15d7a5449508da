package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"freight-quote-service/internal/domain"
)

// Postgres-backed implementation of the BusinessHoursRepository port.
// Per-date overrides (holidays, exceptional closures) take precedence over
// the weekly default schedule.
type PostgresBusinessHoursRepository struct{ DB *sql.DB }

func NewPostgresBusinessHoursRepository(db *sql.DB) *PostgresBusinessHoursRepository {
	return &PostgresBusinessHoursRepository{DB: db}
}

func (r *PostgresBusinessHoursRepository) GetHoursForDate(ctx context.Context, date time.Time) (domain.BusinessHours, error) {
	if r.DB == nil {
		return domain.BusinessHours{}, errors.New("business hours repository: DB is nil")
	}

	overrideQuery := `
	SELECT
		COALESCE(open_time, ''),
		COALESCE(close_time, ''),
		closed,
		holiday,
		COALESCE(holiday_name, '')
	FROM business_hours_overrides
	WHERE on_date = $1;
	`
	var h domain.BusinessHours
	err := r.DB.QueryRowContext(ctx, overrideQuery, date.Format("2006-01-02")).
		Scan(&h.OpenTime, &h.CloseTime, &h.Closed, &h.Holiday, &h.HolidayName)
	if err == nil {
		return h, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return domain.BusinessHours{}, fmt.Errorf("get hours for %s: query overrides: %w",
			date.Format("2006-01-02"), err)
	}

	weeklyQuery := `
	SELECT
		COALESCE(open_time, ''),
		COALESCE(close_time, ''),
		closed
	FROM business_hours_weekly
	WHERE day_of_week = $1;
	`
	err = r.DB.QueryRowContext(ctx, weeklyQuery, int(date.Weekday())).
		Scan(&h.OpenTime, &h.CloseTime, &h.Closed)
	if errors.Is(err, sql.ErrNoRows) {
		// No configured entry at all; the allocator treats this as closed.
		return domain.BusinessHours{}, nil
	}
	if err != nil {
		return domain.BusinessHours{}, fmt.Errorf("get hours for %s: query weekly schedule: %w",
			date.Format("2006-01-02"), err)
	}

	return h, nil
}
