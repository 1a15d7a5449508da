package handlers

import (
	"net/http"

	"freight-quote-service/internal/api/dto"
	"freight-quote-service/internal/ports"
)

type DestinationHandler struct {
	Repo ports.DestinationRepository
}

// List returns the full rate card: every serviced destination with its
// per-tier rates and transit estimates.
func (h *DestinationHandler) List(w http.ResponseWriter, r *http.Request) {
	dests, err := h.Repo.ListDestinations(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	res := dto.ListDestinationsResponse{Destinations: make([]dto.DestinationResponse, 0, len(dests))}
	for _, d := range dests {
		res.Destinations = append(res.Destinations, dto.DestinationResponse{
			DestinationID:       d.DestinationID,
			Country:             d.Country,
			City:                d.City,
			AirportCode:         d.AirportCode,
			Tier1RatePerLb:      d.Tier1RatePerLb,
			Tier2RatePerLb:      d.Tier2RatePerLb,
			Tier3RatePerLb:      d.Tier3RatePerLb,
			Tier4RatePerLb:      d.Tier4RatePerLb,
			ExpressSurchargePct: d.ExpressSurchargePct,
			TransitDaysMin:      d.TransitDaysMin,
			TransitDaysMax:      d.TransitDaysMax,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
