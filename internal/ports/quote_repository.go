package ports

import (
	"context"

	"freight-quote-service/internal/domain"
)

// Port: a boundary for quote persistence.
type QuoteRepository interface {
	CreateQuote(ctx context.Context, quote *domain.Quote) error

	// Retrieve a quote by ID. Returns domain.ErrNotFound when absent.
	GetQuote(ctx context.Context, id string) (*domain.Quote, error)
}
