package dto

import "time"

type DimensionsRequest struct {
	LengthIn float64 `json:"length_in"`
	WidthIn  float64 `json:"width_in"`
	HeightIn float64 `json:"height_in"`
}

// ClientBreakdown echoes the numbers the caller's UI displayed. It is only
// compared against the server recomputation, never persisted.
type ClientBreakdown struct {
	BaseShippingCost float64 `json:"base_shipping_cost"`
	ExpressSurcharge float64 `json:"express_surcharge"`
	TotalCost        float64 `json:"total_cost"`
}

type QuoteCreateRequest struct {
	CustomerRef      string             `json:"customer_ref"`
	DestinationID    int                `json:"destination_id"`
	WeightLb         float64            `json:"weight_lb"`
	Dimensions       *DimensionsRequest `json:"dimensions"`
	ServiceType      string             `json:"service_type"`
	DeclaredValue    float64            `json:"declared_value"`
	ConsolidationFee float64            `json:"consolidation_fee"`
	ClientBreakdown  *ClientBreakdown   `json:"client_breakdown"`
}

type RateBreakdownResponse struct {
	BillableWeightLb    float64  `json:"billable_weight_lb"`
	DimensionalWeightLb *float64 `json:"dimensional_weight_lb,omitempty"`
	RatePerLb           float64  `json:"rate_per_lb"`
	BaseShippingCost    float64  `json:"base_shipping_cost"`
	ExpressSurcharge    float64  `json:"express_surcharge"`
	ConsolidationFee    float64  `json:"consolidation_fee"`
	HandlingFee         float64  `json:"handling_fee"`
	InsuranceCost       float64  `json:"insurance_cost"`
	TotalCost           float64  `json:"total_cost"`
}

type QuoteResponse struct {
	QuoteID        string                `json:"quote_id"`
	CustomerRef    string                `json:"customer_ref"`
	DestinationID  int                   `json:"destination_id"`
	ServiceType    string                `json:"service_type"`
	WeightLb       float64               `json:"weight_lb"`
	Breakdown      RateBreakdownResponse `json:"breakdown"`
	TransitDaysMin int                   `json:"transit_days_min"`
	TransitDaysMax int                   `json:"transit_days_max"`
	Status         string                `json:"status"`
	IssuedAt       time.Time             `json:"issued_at"`
	ExpiresAt      time.Time             `json:"expires_at"`
}
