package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"freight-quote-service/internal/domain"
)

// Postgres-backed implementation of the BookingRepository port.
type PostgresBookingRepository struct{ DB *sql.DB }

func NewPostgresBookingRepository(db *sql.DB) *PostgresBookingRepository {
	return &PostgresBookingRepository{DB: db}
}

// Return non-cancelled bookings whose window intersects [from, to).
func (r *PostgresBookingRepository) ListActiveBookingsBetween(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	if r.DB == nil {
		return nil, errors.New("booking repository: DB is nil")
	}

	query := `
	SELECT
		booking_id,
		status,
		vehicle_id,
		window_start,
		window_end,
		estimated_weight_lb
	FROM bookings
	WHERE status <> 'cancelled'
		AND window_start < $2
		AND window_end > $1
	ORDER BY booking_id;
	`
	rows, err := r.DB.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list bookings: query bookings table: %w", err)
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0, 32)
	for rows.Next() {
		var b domain.Booking
		var vehicleID sql.NullInt64
		if err := rows.Scan(&b.BookingID, &b.Status, &vehicleID, &b.WindowStart, &b.WindowEnd, &b.EstimatedWeightLb); err != nil {
			return nil, fmt.Errorf("list bookings: scan row: %w", err)
		}
		if vehicleID.Valid {
			id := int(vehicleID.Int64)
			b.VehicleID = &id
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bookings: row iteration: %w", err)
	}

	return bookings, nil
}
