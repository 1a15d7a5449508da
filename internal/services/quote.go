package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"freight-quote-service/internal/config"
	"freight-quote-service/internal/domain"
	"freight-quote-service/internal/ports"
)

// QuoteRequest describes a quote creation request.
type QuoteRequest struct {
	CustomerRef   string
	DestinationID int
	Shipment      domain.ShipmentRequest

	// ClientBreakdown, when present, echoes the numbers the caller's UI
	// displayed. It is compared against the server recomputation and then
	// discarded; it is never persisted.
	ClientBreakdown *domain.RateBreakdown

	Now time.Time
}

// CreateQuote prices a shipment, verifies any client-echoed breakdown, and
// persists the resulting quote. On a tampering mismatch the request fails
// outright and no quote record is created.
func CreateQuote(
	ctx context.Context,
	req QuoteRequest,
	destinations ports.DestinationRepository,
	quotes ports.QuoteRepository,
	cfg config.RateConfig,
) (*domain.Quote, error) {
	if req.CustomerRef == "" {
		return nil, fmt.Errorf("create quote: customer reference is required: %w", domain.ErrValidation)
	}

	dest, err := destinations.GetDestination(ctx, req.DestinationID)
	if err != nil {
		return nil, fmt.Errorf("create quote: destination %d: %w", req.DestinationID, err)
	}

	breakdown, err := ComputeRate(req.Shipment, dest, cfg)
	if err != nil {
		return nil, fmt.Errorf("create quote: %w", err)
	}

	if req.ClientBreakdown != nil {
		if err := ValidateQuote(*req.ClientBreakdown, breakdown); err != nil {
			return nil, fmt.Errorf("create quote: %w", err)
		}
	}

	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}

	serviceType := domain.ServiceTypeStandard
	if req.Shipment.IsExpress() {
		serviceType = domain.ServiceTypeExpress
	}

	quote := &domain.Quote{
		QuoteID:            uuid.NewString(),
		CustomerRef:        req.CustomerRef,
		DestinationID:      dest.DestinationID,
		ServiceType:        serviceType,
		WeightLb:           req.Shipment.WeightLb,
		Breakdown:          breakdown,
		TransitDaysMin:     dest.TransitDaysMin,
		TransitDaysMax:     dest.TransitDaysMax,
		Status:             domain.QuoteStatusActive,
		CalculationFlagged: false,
		IssuedAt:           now,
		ExpiresAt:          now.AddDate(0, 0, cfg.QuoteValidityDays),
	}

	if err := quotes.CreateQuote(ctx, quote); err != nil {
		return nil, fmt.Errorf("create quote: persist: %w", err)
	}

	return quote, nil
}
