package ports

import (
	"context"
	"time"

	"freight-quote-service/internal/domain"
)

// Port: a boundary for resolving the operating schedule of a date.
type BusinessHoursRepository interface {
	// Resolve hours for a date, preferring a per-date override (holidays)
	// over the weekly default. A date with no configured entry returns a
	// zero-value BusinessHours (no hours, not closed).
	GetHoursForDate(ctx context.Context, date time.Time) (domain.BusinessHours, error)
}
