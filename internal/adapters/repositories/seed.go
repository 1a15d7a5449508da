package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type DestinationSeed struct {
	DestinationID       int     `json:"destination_id"`
	Country             string  `json:"country"`
	City                string  `json:"city"`
	AirportCode         string  `json:"airport_code"`
	Tier1RatePerLb      float64 `json:"tier1_rate_per_lb"`
	Tier2RatePerLb      float64 `json:"tier2_rate_per_lb"`
	Tier3RatePerLb      float64 `json:"tier3_rate_per_lb"`
	Tier4RatePerLb      float64 `json:"tier4_rate_per_lb"`
	ExpressSurchargePct float64 `json:"express_surcharge_pct"`
	TransitDaysMin      int     `json:"transit_days_min"`
	TransitDaysMax      int     `json:"transit_days_max"`
}

type VehicleSeed struct {
	VehicleID  int     `json:"vehicle_id"`
	Name       string  `json:"name"`
	CapacityLb float64 `json:"capacity_lb"`
	Active     bool    `json:"active"`
}

type WeeklyHoursSeed struct {
	DayOfWeek int    `json:"day_of_week"` // 0 = Sunday
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
	Closed    bool   `json:"closed"`
}

// Populate the destinations table from a JSON file.
func SeedDestinationsFromJSON(db *sql.DB, jsonPath string) error {
	var data []DestinationSeed
	if err := readSeedFile(jsonPath, &data); err != nil {
		return fmt.Errorf("seed destinations: %w", err)
	}

	for i, d := range data {
		if d.DestinationID <= 0 {
			return fmt.Errorf("seed destinations: invalid destination_id at index %d: %d", i+1, d.DestinationID)
		}
		if strings.TrimSpace(d.Country) == "" || strings.TrimSpace(d.City) == "" {
			return fmt.Errorf("seed destinations: item at index %d: country and city cannot be empty", i+1)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed destinations: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO destinations (
		destination_id, country, city, airport_code,
		tier1_rate_per_lb, tier2_rate_per_lb, tier3_rate_per_lb, tier4_rate_per_lb,
		express_surcharge_pct, transit_days_min, transit_days_max
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (destination_id) DO UPDATE
	SET country = EXCLUDED.country,
		city = EXCLUDED.city,
		airport_code = EXCLUDED.airport_code,
		tier1_rate_per_lb = EXCLUDED.tier1_rate_per_lb,
		tier2_rate_per_lb = EXCLUDED.tier2_rate_per_lb,
		tier3_rate_per_lb = EXCLUDED.tier3_rate_per_lb,
		tier4_rate_per_lb = EXCLUDED.tier4_rate_per_lb,
		express_surcharge_pct = EXCLUDED.express_surcharge_pct,
		transit_days_min = EXCLUDED.transit_days_min,
		transit_days_max = EXCLUDED.transit_days_max;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed destinations: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, d := range data {
		_, err := stmt.Exec(
			d.DestinationID, d.Country, d.City, d.AirportCode,
			d.Tier1RatePerLb, d.Tier2RatePerLb, d.Tier3RatePerLb, d.Tier4RatePerLb,
			d.ExpressSurchargePct, d.TransitDaysMin, d.TransitDaysMax,
		)
		if err != nil {
			return fmt.Errorf("seed destinations: insert destination_id=%d: %w", d.DestinationID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed destinations: commit tx: %w", err)
	}

	return nil
}

// Populate the vehicles table from a JSON file.
func SeedVehiclesFromJSON(db *sql.DB, jsonPath string) error {
	var data []VehicleSeed
	if err := readSeedFile(jsonPath, &data); err != nil {
		return fmt.Errorf("seed vehicles: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed vehicles: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO vehicles (vehicle_id, name, capacity_lb, active)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (vehicle_id) DO UPDATE
	SET name = EXCLUDED.name,
		capacity_lb = EXCLUDED.capacity_lb,
		active = EXCLUDED.active;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed vehicles: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, v := range data {
		if v.VehicleID <= 0 || v.CapacityLb <= 0 {
			return fmt.Errorf("seed vehicles: item at index %d: id and capacity must be positive", i+1)
		}
		if _, err := stmt.Exec(v.VehicleID, v.Name, v.CapacityLb, v.Active); err != nil {
			return fmt.Errorf("seed vehicles: insert vehicle_id=%d: %w", v.VehicleID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed vehicles: commit tx: %w", err)
	}

	return nil
}

// Populate the weekly business hours table from a JSON file.
func SeedBusinessHoursFromJSON(db *sql.DB, jsonPath string) error {
	var data []WeeklyHoursSeed
	if err := readSeedFile(jsonPath, &data); err != nil {
		return fmt.Errorf("seed business hours: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed business hours: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO business_hours_weekly (day_of_week, open_time, close_time, closed)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (day_of_week) DO UPDATE
	SET open_time = EXCLUDED.open_time,
		close_time = EXCLUDED.close_time,
		closed = EXCLUDED.closed;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed business hours: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, h := range data {
		if h.DayOfWeek < 0 || h.DayOfWeek > 6 {
			return fmt.Errorf("seed business hours: item at index %d: day_of_week must be 0-6", i+1)
		}
		if _, err := stmt.Exec(h.DayOfWeek, h.OpenTime, h.CloseTime, h.Closed); err != nil {
			return fmt.Errorf("seed business hours: insert day_of_week=%d: %w", h.DayOfWeek, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed business hours: commit tx: %w", err)
	}

	return nil
}

func readSeedFile(jsonPath string, out any) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("read %q: %w", jsonPath, err)
	}

	if err := json.Unmarshal(bytes, out); err != nil {
		return fmt.Errorf("parse json: %w", err)
	}

	return nil
}
