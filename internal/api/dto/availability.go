package dto

import "time"

type AvailabilityRequest struct {
	Date              string  `json:"date"` // YYYY-MM-DD
	EstimatedWeightLb float64 `json:"estimated_weight_lb"`
	Mode              string  `json:"mode"` // "pickup" or "dropoff"
	ZipCode           string  `json:"zip_code"`
	ServiceType       string  `json:"service_type"`
}

type AvailableWindowResponse struct {
	Start                 time.Time `json:"start"`
	End                   time.Time `json:"end"`
	VehicleID             int       `json:"vehicle_id"`
	VehicleName           string    `json:"vehicle_name"`
	RemainingCapacityLb   float64   `json:"remaining_capacity_lb"`
	TravelEstimateMinutes *int      `json:"travel_estimate_minutes,omitempty"`
}

type AvailabilityResponse struct {
	Status        string                    `json:"status"`
	Message       string                    `json:"message,omitempty"`
	DistanceMiles *float64                  `json:"distance_miles,omitempty"`
	City          string                    `json:"city,omitempty"`
	State         string                    `json:"state,omitempty"`
	Windows       []AvailableWindowResponse `json:"windows"`
}
