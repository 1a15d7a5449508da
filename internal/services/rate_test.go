package services

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"freight-quote-service/internal/config"
	"freight-quote-service/internal/domain"
)

func testDestination() domain.Destination {
	return domain.Destination{
		DestinationID:       1,
		Country:             "Jamaica",
		City:                "Kingston",
		AirportCode:         "KIN",
		Tier1RatePerLb:      6.00,
		Tier2RatePerLb:      5.00,
		Tier3RatePerLb:      4.00,
		Tier4RatePerLb:      3.00,
		ExpressSurchargePct: 25,
		TransitDaysMin:      3,
		TransitDaysMax:      5,
	}
}

func TestComputeRateEndToEnd(t *testing.T) {
	// 75 lb, no dimensions, standard, no declared value, 51-100 tier at
	// $4.00/lb: base 300.00 + handling 20.00 (75 > 70) = 320.00.
	dest := testDestination()
	dest.Tier2RatePerLb = 4.00

	req := domain.ShipmentRequest{WeightLb: 75, ServiceType: domain.ServiceTypeStandard}

	b, err := ComputeRate(req, dest, config.DefaultRateConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.BillableWeightLb != 75 {
		t.Errorf("billable weight = %v, want 75", b.BillableWeightLb)
	}
	if b.RatePerLb != 4.00 {
		t.Errorf("rate per lb = %v, want 4.00", b.RatePerLb)
	}
	if b.BaseShippingCost != 300.00 {
		t.Errorf("base cost = %v, want 300.00", b.BaseShippingCost)
	}
	if b.HandlingFee != 20.00 {
		t.Errorf("handling fee = %v, want 20.00", b.HandlingFee)
	}
	if b.InsuranceCost != 0 {
		t.Errorf("insurance = %v, want 0", b.InsuranceCost)
	}
	if b.TotalCost != 320.00 {
		t.Errorf("total = %v, want 320.00", b.TotalCost)
	}
}

func TestComputeRateTierBoundary(t *testing.T) {
	cfg := config.DefaultRateConfig()
	dest := testDestination()

	at, err := ComputeRate(domain.ShipmentRequest{WeightLb: 50}, dest, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if at.RatePerLb != 6.00 {
		t.Errorf("rate at 50 lb = %v, want lower tier 6.00", at.RatePerLb)
	}

	over, err := ComputeRate(domain.ShipmentRequest{WeightLb: 50.01}, dest, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if over.RatePerLb != 5.00 {
		t.Errorf("rate at 50.01 lb = %v, want next tier 5.00", over.RatePerLb)
	}
}

func TestComputeRateDimensionalWeightDominates(t *testing.T) {
	// 24x24x24 in => 13824/166 ~ 83.28 lb, which out-rates the 10 lb actual.
	req := domain.ShipmentRequest{
		WeightLb:   10,
		Dimensions: &domain.Dimensions{LengthIn: 24, WidthIn: 24, HeightIn: 24},
	}

	b, err := ComputeRate(req, testDestination(), config.DefaultRateConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantDim := 24.0 * 24 * 24 / 166
	if b.DimensionalWeightLb == nil {
		t.Fatal("dimensional weight not computed")
	}
	if math.Abs(*b.DimensionalWeightLb-wantDim) > 1e-9 {
		t.Errorf("dimensional weight = %v, want %v", *b.DimensionalWeightLb, wantDim)
	}
	if b.BillableWeightLb != wantDim {
		t.Errorf("billable weight = %v, want dimensional %v", b.BillableWeightLb, wantDim)
	}
	// 83.28 lb falls in the 51-100 tier.
	if b.RatePerLb != 5.00 {
		t.Errorf("rate per lb = %v, want 5.00", b.RatePerLb)
	}
}

func TestComputeRatePartialDimensionsIgnored(t *testing.T) {
	req := domain.ShipmentRequest{
		WeightLb:   10,
		Dimensions: &domain.Dimensions{LengthIn: 24, WidthIn: 24}, // height missing
	}

	b, err := ComputeRate(req, testDestination(), config.DefaultRateConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.DimensionalWeightLb != nil {
		t.Errorf("dimensional weight = %v, want nil for partial dimensions", *b.DimensionalWeightLb)
	}
	if b.BillableWeightLb != 10 {
		t.Errorf("billable weight = %v, want actual 10", b.BillableWeightLb)
	}
}

func TestComputeRateExpressSurchargeCompounding(t *testing.T) {
	// 25 lb at $4.00/lb = $100 base; 25% express surcharge folds in to $125
	// exactly, computed on the pre-surcharge base.
	dest := testDestination()
	dest.Tier1RatePerLb = 4.00

	req := domain.ShipmentRequest{WeightLb: 25, ServiceType: domain.ServiceTypeExpress}

	b, err := ComputeRate(req, dest, config.DefaultRateConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.ExpressSurcharge != 25.00 {
		t.Errorf("surcharge = %v, want 25.00", b.ExpressSurcharge)
	}
	if b.BaseShippingCost != 125.00 {
		t.Errorf("base cost = %v, want 125.00", b.BaseShippingCost)
	}
	if b.TotalCost != 125.00 {
		t.Errorf("total = %v, want 125.00", b.TotalCost)
	}
}

func TestComputeRateUnknownServiceTypeIsStandard(t *testing.T) {
	cfg := config.DefaultRateConfig()
	dest := testDestination()

	unknown, err := ComputeRate(domain.ShipmentRequest{WeightLb: 25, ServiceType: "overnight"}, dest, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	standard, err := ComputeRate(domain.ShipmentRequest{WeightLb: 25, ServiceType: domain.ServiceTypeStandard}, dest, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(unknown, standard) {
		t.Errorf("unknown service type priced %+v, want standard %+v", unknown, standard)
	}
	if unknown.ExpressSurcharge != 0 {
		t.Errorf("surcharge = %v, want 0", unknown.ExpressSurcharge)
	}
}

func TestComputeRateInsurance(t *testing.T) {
	cfg := config.DefaultRateConfig()
	dest := testDestination()

	cases := []struct {
		declared float64
		want     float64
	}{
		{0, 0},
		{100, 0},      // at the floor, no insurance
		{150, 15.00},  // (150-100)/100*7.50 = 3.75, clamped to the minimum
		{600, 37.50},  // (600-100)/100*7.50
		{1100, 75.00}, // (1100-100)/100*7.50
	}

	for _, tc := range cases {
		b, err := ComputeRate(domain.ShipmentRequest{WeightLb: 10, DeclaredValue: tc.declared}, dest, cfg)
		if err != nil {
			t.Fatalf("declared %v: unexpected error: %v", tc.declared, err)
		}
		if b.InsuranceCost != tc.want {
			t.Errorf("declared %v: insurance = %v, want %v", tc.declared, b.InsuranceCost, tc.want)
		}
	}
}

func TestComputeRateIdempotent(t *testing.T) {
	req := domain.ShipmentRequest{
		WeightLb:      42.5,
		Dimensions:    &domain.Dimensions{LengthIn: 18, WidthIn: 12, HeightIn: 9},
		ServiceType:   domain.ServiceTypeExpress,
		DeclaredValue: 850,
	}
	cfg := config.DefaultRateConfig()
	dest := testDestination()

	first, err := ComputeRate(req, dest, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ComputeRate(req, dest, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("breakdowns differ across identical calls:\n%+v\n%+v", first, second)
	}
}

func TestComputeRateMonotonicInWeight(t *testing.T) {
	// With a uniform rate card the total must never decrease as weight
	// rises (tiered cards with falling per-lb rates can legitimately dip
	// at boundaries, so monotonicity is asserted per rate).
	dest := testDestination()
	dest.Tier1RatePerLb = 4.50
	dest.Tier2RatePerLb = 4.50
	dest.Tier3RatePerLb = 4.50
	dest.Tier4RatePerLb = 4.50

	cfg := config.DefaultRateConfig()
	prev := -1.0
	for weight := 1.0; weight <= 300; weight += 0.5 {
		b, err := ComputeRate(domain.ShipmentRequest{WeightLb: weight, DeclaredValue: 500}, dest, cfg)
		if err != nil {
			t.Fatalf("weight %v: unexpected error: %v", weight, err)
		}
		if b.TotalCost < prev {
			t.Fatalf("total decreased at weight %v: %v -> %v", weight, prev, b.TotalCost)
		}
		prev = b.TotalCost
	}
}

func TestComputeRateConsolidationFeePassThrough(t *testing.T) {
	req := domain.ShipmentRequest{WeightLb: 10, ConsolidationFee: 12.50}

	b, err := ComputeRate(req, testDestination(), config.DefaultRateConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.ConsolidationFee != 12.50 {
		t.Errorf("consolidation fee = %v, want 12.50", b.ConsolidationFee)
	}
	if b.TotalCost != 72.50 { // 10*6.00 + 12.50
		t.Errorf("total = %v, want 72.50", b.TotalCost)
	}
}

func TestComputeRateValidation(t *testing.T) {
	cfg := config.DefaultRateConfig()
	dest := testDestination()

	cases := []domain.ShipmentRequest{
		{WeightLb: 0},
		{WeightLb: -5},
		{WeightLb: 10, DeclaredValue: -1},
		{WeightLb: 10, ConsolidationFee: -1},
	}

	for i, req := range cases {
		if _, err := ComputeRate(req, dest, cfg); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("case %d: error = %v, want ErrValidation", i, err)
		}
	}
}
