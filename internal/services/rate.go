package services

import (
	"fmt"

	"freight-quote-service/internal/config"
	"freight-quote-service/internal/domain"
)

// ComputeRate prices a shipment against a destination's rate card.
//
// The function is pure and deterministic: identical inputs always produce an
// identical breakdown. The integrity guard relies on this to recompute quotes
// server-side and compare them against client-echoed numbers.
func ComputeRate(req domain.ShipmentRequest, dest domain.Destination, cfg config.RateConfig) (domain.RateBreakdown, error) {
	if req.WeightLb <= 0 {
		return domain.RateBreakdown{}, fmt.Errorf("compute rate: weight must be positive, got %v: %w", req.WeightLb, domain.ErrValidation)
	}
	if req.DeclaredValue < 0 {
		return domain.RateBreakdown{}, fmt.Errorf("compute rate: declared value must be non-negative, got %v: %w", req.DeclaredValue, domain.ErrValidation)
	}
	if req.ConsolidationFee < 0 {
		return domain.RateBreakdown{}, fmt.Errorf("compute rate: consolidation fee must be non-negative, got %v: %w", req.ConsolidationFee, domain.ErrValidation)
	}

	// Dimensional weight applies only when all three sides are present;
	// a partial set is treated as absent.
	var dimensionalLb *float64
	billableLb := req.WeightLb
	if req.Dimensions != nil && req.Dimensions.Complete() {
		dim := req.Dimensions.VolumeCubicIn() / cfg.DimensionalDivisor
		dimensionalLb = &dim
		if dim > billableLb {
			billableLb = dim
		}
	}

	ratePerLb := dest.RateForWeight(billableLb)
	baseCost := billableLb * ratePerLb

	// The surcharge is computed on the pre-surcharge base and then folded
	// into the reported base. Preserve this ordering exactly; downstream
	// consumers bill off the folded value.
	expressSurcharge := 0.0
	if req.IsExpress() {
		expressSurcharge = baseCost * (dest.ExpressSurchargePct / 100)
		baseCost += expressSurcharge
	}

	handlingFee := 0.0
	if billableLb > cfg.HandlingThresholdLb {
		handlingFee = cfg.HandlingFee
	}

	insuranceCost := 0.0
	if req.DeclaredValue > cfg.InsuranceFloor {
		insuranceCost = (req.DeclaredValue - cfg.InsuranceFloor) / 100 * cfg.InsuranceRatePer100
		if insuranceCost < cfg.InsuranceMinimum {
			insuranceCost = cfg.InsuranceMinimum
		}
	}

	totalCost := baseCost + req.ConsolidationFee + handlingFee + insuranceCost

	return domain.RateBreakdown{
		BillableWeightLb:    billableLb,
		DimensionalWeightLb: dimensionalLb,
		RatePerLb:           domain.Round2(ratePerLb),
		BaseShippingCost:    domain.Round2(baseCost),
		ExpressSurcharge:    domain.Round2(expressSurcharge),
		ConsolidationFee:    domain.Round2(req.ConsolidationFee),
		HandlingFee:         domain.Round2(handlingFee),
		InsuranceCost:       domain.Round2(insuranceCost),
		TotalCost:           domain.Round2(totalCost),
	}, nil
}
