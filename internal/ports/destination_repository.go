package ports

import (
	"context"

	"freight-quote-service/internal/domain"
)

// Port: a boundary for retrieving destination rate cards.
type DestinationRepository interface {
	// Retrieve all destinations with their tier rates.
	ListDestinations(ctx context.Context) ([]domain.Destination, error)

	// Retrieve a single destination. Returns domain.ErrNotFound when the
	// identifier does not resolve.
	GetDestination(ctx context.Context, id int) (domain.Destination, error)
}
