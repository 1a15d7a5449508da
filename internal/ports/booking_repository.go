package ports

import (
	"context"
	"time"

	"freight-quote-service/internal/domain"
)

// Port: a boundary for reading existing bookings.
type BookingRepository interface {
	// Retrieve non-cancelled bookings whose window intersects [from, to).
	ListActiveBookingsBetween(ctx context.Context, from, to time.Time) ([]domain.Booking, error)
}
