package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"freight-quote-service/internal/api/dto"
	"freight-quote-service/internal/config"
	"freight-quote-service/internal/ports"
	"freight-quote-service/internal/services"
)

type AvailabilityHandler struct {
	Vehicles ports.VehicleRepository
	Bookings ports.BookingRepository
	Hours    ports.BusinessHoursRepository
	Geocoder ports.ZipGeocoder
	Cfg      config.AvailabilityConfig
}

// Find returns the bookable windows for a requested date. Closed days,
// out-of-area pickups, and an empty fleet come back as 200 responses with an
// explanatory status; only malformed input is an error.
func (h *AvailabilityHandler) Find(w http.ResponseWriter, r *http.Request) {
	var req dto.AvailabilityRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "date must be formatted YYYY-MM-DD")
		return
	}

	svcReq := services.AvailabilityRequest{
		Date:              date,
		EstimatedWeightLb: req.EstimatedWeightLb,
		Mode:              req.Mode,
		ZipCode:           req.ZipCode,
		ServiceType:       req.ServiceType,
		Now:               time.Now(),
	}

	result, err := services.FindAvailableWindows(r.Context(), svcReq, h.Vehicles, h.Bookings, h.Hours, h.Geocoder, h.Cfg)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	res := dto.AvailabilityResponse{
		Status:        result.Status,
		Message:       result.Message,
		DistanceMiles: result.DistanceMiles,
		City:          result.City,
		State:         result.State,
		Windows:       make([]dto.AvailableWindowResponse, 0, len(result.Windows)),
	}
	for _, win := range result.Windows {
		res.Windows = append(res.Windows, dto.AvailableWindowResponse{
			Start:                 win.Start,
			End:                   win.End,
			VehicleID:             win.VehicleID,
			VehicleName:           win.VehicleName,
			RemainingCapacityLb:   win.RemainingCapacityLb,
			TravelEstimateMinutes: win.TravelEstimateMinutes,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
