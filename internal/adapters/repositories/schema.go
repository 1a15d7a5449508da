package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createDestinationsQuery := `
	CREATE TABLE IF NOT EXISTS destinations (
		destination_id SERIAL PRIMARY KEY,
		country TEXT NOT NULL,
		city TEXT NOT NULL,
		airport_code TEXT NOT NULL,
		tier1_rate_per_lb DOUBLE PRECISION NOT NULL,
		tier2_rate_per_lb DOUBLE PRECISION NOT NULL,
		tier3_rate_per_lb DOUBLE PRECISION NOT NULL,
		tier4_rate_per_lb DOUBLE PRECISION NOT NULL,
		express_surcharge_pct DOUBLE PRECISION NOT NULL DEFAULT 0,
		transit_days_min INTEGER NOT NULL,
		transit_days_max INTEGER NOT NULL
	);
	`

	createVehiclesQuery := `
	CREATE TABLE IF NOT EXISTS vehicles (
		vehicle_id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		capacity_lb DOUBLE PRECISION NOT NULL,
		active BOOLEAN NOT NULL DEFAULT TRUE
	);
	`

	createBookingsQuery := `
	CREATE TABLE IF NOT EXISTS bookings (
		booking_id SERIAL PRIMARY KEY,
		status TEXT NOT NULL,
		vehicle_id INTEGER REFERENCES vehicles(vehicle_id),
		window_start TIMESTAMPTZ NOT NULL,
		window_end TIMESTAMPTZ NOT NULL,
		estimated_weight_lb DOUBLE PRECISION NOT NULL
	);
	`

	createWeeklyHoursQuery := `
	CREATE TABLE IF NOT EXISTS business_hours_weekly (
		day_of_week INTEGER PRIMARY KEY,
		open_time TEXT,
		close_time TEXT,
		closed BOOLEAN NOT NULL DEFAULT FALSE
	);
	`

	createHourOverridesQuery := `
	CREATE TABLE IF NOT EXISTS business_hours_overrides (
		on_date DATE PRIMARY KEY,
		open_time TEXT,
		close_time TEXT,
		closed BOOLEAN NOT NULL DEFAULT FALSE,
		holiday BOOLEAN NOT NULL DEFAULT FALSE,
		holiday_name TEXT
	);
	`

	createQuotesQuery := `
	CREATE TABLE IF NOT EXISTS quotes (
		quote_id TEXT PRIMARY KEY,
		customer_ref TEXT NOT NULL,
		destination_id INTEGER NOT NULL REFERENCES destinations(destination_id),
		service_type TEXT NOT NULL,
		weight_lb DOUBLE PRECISION NOT NULL,
		billable_weight_lb DOUBLE PRECISION NOT NULL,
		dimensional_weight_lb DOUBLE PRECISION,
		rate_per_lb DOUBLE PRECISION NOT NULL,
		base_shipping_cost DOUBLE PRECISION NOT NULL,
		express_surcharge DOUBLE PRECISION NOT NULL,
		consolidation_fee DOUBLE PRECISION NOT NULL,
		handling_fee DOUBLE PRECISION NOT NULL,
		insurance_cost DOUBLE PRECISION NOT NULL,
		total_cost DOUBLE PRECISION NOT NULL,
		transit_days_min INTEGER NOT NULL,
		transit_days_max INTEGER NOT NULL,
		status TEXT NOT NULL,
		calculation_flagged BOOLEAN NOT NULL DEFAULT FALSE,
		issued_at TIMESTAMPTZ NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL
	);
	`

	createBookingIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_bookings_window
	ON bookings(window_start, window_end);
	`

	statements := []string{
		createDestinationsQuery,
		createVehiclesQuery,
		createBookingsQuery,
		createWeeklyHoursQuery,
		createHourOverridesQuery,
		createQuotesQuery,
		createBookingIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
