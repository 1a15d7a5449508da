package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"freight-quote-service/internal/domain"
	"freight-quote-service/internal/platform/obs"
)

// Postgres-backed implementation of the QuoteRepository port.
type PostgresQuoteRepository struct{ DB *sql.DB }

func NewPostgresQuoteRepository(db *sql.DB) *PostgresQuoteRepository {
	return &PostgresQuoteRepository{DB: db}
}

func (r *PostgresQuoteRepository) CreateQuote(ctx context.Context, q *domain.Quote) (err error) {
	defer obs.Time(ctx, "quotes.Create")(&err)

	if r.DB == nil {
		return errors.New("quote repository: DB is nil")
	}

	query := `
	INSERT INTO quotes (
		quote_id, customer_ref, destination_id, service_type, weight_lb,
		billable_weight_lb, dimensional_weight_lb, rate_per_lb,
		base_shipping_cost, express_surcharge, consolidation_fee,
		handling_fee, insurance_cost, total_cost,
		transit_days_min, transit_days_max,
		status, calculation_flagged, issued_at, expires_at
	) VALUES (
		$1, $2, $3, $4, $5,
		$6, $7, $8,
		$9, $10, $11,
		$12, $13, $14,
		$15, $16,
		$17, $18, $19, $20
	);
	`
	_, err = r.DB.ExecContext(ctx, query,
		q.QuoteID, q.CustomerRef, q.DestinationID, q.ServiceType, q.WeightLb,
		q.Breakdown.BillableWeightLb, q.Breakdown.DimensionalWeightLb, q.Breakdown.RatePerLb,
		q.Breakdown.BaseShippingCost, q.Breakdown.ExpressSurcharge, q.Breakdown.ConsolidationFee,
		q.Breakdown.HandlingFee, q.Breakdown.InsuranceCost, q.Breakdown.TotalCost,
		q.TransitDaysMin, q.TransitDaysMax,
		q.Status, q.CalculationFlagged, q.IssuedAt, q.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("create quote %s: %w", q.QuoteID, err)
	}

	return nil
}

func (r *PostgresQuoteRepository) GetQuote(ctx context.Context, id string) (_ *domain.Quote, err error) {
	defer obs.Time(ctx, "quotes.Get")(&err)

	if r.DB == nil {
		return nil, errors.New("quote repository: DB is nil")
	}

	query := `
	SELECT
		quote_id, customer_ref, destination_id, service_type, weight_lb,
		billable_weight_lb, dimensional_weight_lb, rate_per_lb,
		base_shipping_cost, express_surcharge, consolidation_fee,
		handling_fee, insurance_cost, total_cost,
		transit_days_min, transit_days_max,
		status, calculation_flagged, issued_at, expires_at
	FROM quotes
	WHERE quote_id = $1;
	`
	row := r.DB.QueryRowContext(ctx, query, id)

	var q domain.Quote
	var dimensional sql.NullFloat64
	err = row.Scan(
		&q.QuoteID, &q.CustomerRef, &q.DestinationID, &q.ServiceType, &q.WeightLb,
		&q.Breakdown.BillableWeightLb, &dimensional, &q.Breakdown.RatePerLb,
		&q.Breakdown.BaseShippingCost, &q.Breakdown.ExpressSurcharge, &q.Breakdown.ConsolidationFee,
		&q.Breakdown.HandlingFee, &q.Breakdown.InsuranceCost, &q.Breakdown.TotalCost,
		&q.TransitDaysMin, &q.TransitDaysMax,
		&q.Status, &q.CalculationFlagged, &q.IssuedAt, &q.ExpiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get quote %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get quote %s: scan row: %w", id, err)
	}

	if dimensional.Valid {
		q.Breakdown.DimensionalWeightLb = &dimensional.Float64
	}

	return &q, nil
}
