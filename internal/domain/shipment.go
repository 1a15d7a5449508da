package domain

import "math"

// Dimensions are the physical dimensions of a shipment in inches.
// A partial set (any side missing or zero) is treated as absent.
type Dimensions struct {
	LengthIn float64
	WidthIn  float64
	HeightIn float64
}

// Complete reports whether all three sides are present.
func (d Dimensions) Complete() bool {
	return d.LengthIn > 0 && d.WidthIn > 0 && d.HeightIn > 0
}

// VolumeCubicIn returns L*W*H.
func (d Dimensions) VolumeCubicIn() float64 {
	return d.LengthIn * d.WidthIn * d.HeightIn
}

// ShipmentRequest describes a shipment to be rated. It is ephemeral input;
// nothing in it is persisted directly.
type ShipmentRequest struct {
	WeightLb         float64
	Dimensions       *Dimensions
	ServiceType      string // "standard" or "express"; anything else rates as standard
	DeclaredValue    float64
	ConsolidationFee float64 // pass-through, supplied by the caller
}

// IsExpress reports whether the request asks for express service.
func (s ShipmentRequest) IsExpress() bool {
	return s.ServiceType == ServiceTypeExpress
}

const (
	ServiceTypeStandard = "standard"
	ServiceTypeExpress  = "express"
)

// RateBreakdown is the priced output of the rate calculator.
// All monetary fields are rounded to 2 decimals.
type RateBreakdown struct {
	BillableWeightLb    float64
	DimensionalWeightLb *float64
	RatePerLb           float64
	BaseShippingCost    float64
	ExpressSurcharge    float64
	ConsolidationFee    float64
	HandlingFee         float64
	InsuranceCost       float64
	TotalCost           float64
}

// Round2 rounds a monetary value to 2 decimal places (standard rounding).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
