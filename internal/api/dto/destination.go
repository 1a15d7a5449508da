package dto

type DestinationResponse struct {
	DestinationID       int     `json:"destination_id"`
	Country             string  `json:"country"`
	City                string  `json:"city"`
	AirportCode         string  `json:"airport_code"`
	Tier1RatePerLb      float64 `json:"tier1_rate_per_lb"`
	Tier2RatePerLb      float64 `json:"tier2_rate_per_lb"`
	Tier3RatePerLb      float64 `json:"tier3_rate_per_lb"`
	Tier4RatePerLb      float64 `json:"tier4_rate_per_lb"`
	ExpressSurchargePct float64 `json:"express_surcharge_pct"`
	TransitDaysMin      int     `json:"transit_days_min"`
	TransitDaysMax      int     `json:"transit_days_max"`
}

type ListDestinationsResponse struct {
	Destinations []DestinationResponse `json:"destinations"`
}
