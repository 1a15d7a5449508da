package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"freight-quote-service/internal/domain"
)

// Postgres-backed implementation of the DestinationRepository port.
type PostgresDestinationRepository struct{ DB *sql.DB }

func NewPostgresDestinationRepository(db *sql.DB) *PostgresDestinationRepository {
	return &PostgresDestinationRepository{DB: db}
}

const destinationColumns = `
	destination_id,
	country,
	city,
	airport_code,
	tier1_rate_per_lb,
	tier2_rate_per_lb,
	tier3_rate_per_lb,
	tier4_rate_per_lb,
	express_surcharge_pct,
	transit_days_min,
	transit_days_max`

// Return all destinations with their rate cards.
func (r *PostgresDestinationRepository) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	if r.DB == nil {
		return nil, errors.New("destination repository: DB is nil")
	}

	query := `SELECT` + destinationColumns + `
	FROM destinations
	ORDER BY destination_id;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list destinations: query destinations table: %w", err)
	}
	defer rows.Close()

	destinations := make([]domain.Destination, 0, 32)
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("list destinations: %w", err)
		}
		destinations = append(destinations, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list destinations: row iteration: %w", err)
	}

	return destinations, nil
}

// Return a single destination by ID.
func (r *PostgresDestinationRepository) GetDestination(ctx context.Context, id int) (domain.Destination, error) {
	if r.DB == nil {
		return domain.Destination{}, errors.New("destination repository: DB is nil")
	}

	query := `SELECT` + destinationColumns + `
	FROM destinations
	WHERE destination_id = $1;
	`
	row := r.DB.QueryRowContext(ctx, query, id)

	d, err := scanDestination(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Destination{}, fmt.Errorf("get destination %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Destination{}, fmt.Errorf("get destination %d: %w", id, err)
	}

	return d, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDestination(row rowScanner) (domain.Destination, error) {
	var d domain.Destination
	err := row.Scan(
		&d.DestinationID,
		&d.Country,
		&d.City,
		&d.AirportCode,
		&d.Tier1RatePerLb,
		&d.Tier2RatePerLb,
		&d.Tier3RatePerLb,
		&d.Tier4RatePerLb,
		&d.ExpressSurchargePct,
		&d.TransitDaysMin,
		&d.TransitDaysMax,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Destination{}, err
		}
		return domain.Destination{}, fmt.Errorf("scan row: %w", err)
	}
	return d, nil
}
