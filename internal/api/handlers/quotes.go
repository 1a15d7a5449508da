package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"freight-quote-service/internal/api/dto"
	"freight-quote-service/internal/config"
	"freight-quote-service/internal/domain"
	"freight-quote-service/internal/ports"
	"freight-quote-service/internal/services"
)

type QuoteHandler struct {
	Destinations ports.DestinationRepository
	Quotes       ports.QuoteRepository
	RateCfg      config.RateConfig

	// Now is an injectable clock for expiry checks; nil means time.Now.
	Now func() time.Time
}

func (h *QuoteHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// Create prices a shipment and persists the resulting quote. When the request
// echoes a client-side breakdown, the server recomputation must match it
// exactly or the request is rejected.
func (h *QuoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.QuoteCreateRequest

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

	if strings.TrimSpace(req.CustomerRef) == "" {
		writeError(w, r, http.StatusBadRequest, "customer_ref is required")
		return
	}

	shipment := domain.ShipmentRequest{
		WeightLb:         req.WeightLb,
		ServiceType:      req.ServiceType,
		DeclaredValue:    req.DeclaredValue,
		ConsolidationFee: req.ConsolidationFee,
	}
	if req.Dimensions != nil {
		shipment.Dimensions = &domain.Dimensions{
			LengthIn: req.Dimensions.LengthIn,
			WidthIn:  req.Dimensions.WidthIn,
			HeightIn: req.Dimensions.HeightIn,
		}
	}

	svcReq := services.QuoteRequest{
		CustomerRef:   strings.TrimSpace(req.CustomerRef),
		DestinationID: req.DestinationID,
		Shipment:      shipment,
		Now:           h.now(),
	}
	if req.ClientBreakdown != nil {
		svcReq.ClientBreakdown = &domain.RateBreakdown{
			BaseShippingCost: req.ClientBreakdown.BaseShippingCost,
			ExpressSurcharge: req.ClientBreakdown.ExpressSurcharge,
			TotalCost:        req.ClientBreakdown.TotalCost,
		}
	}

	quote, err := services.CreateQuote(r.Context(), svcReq, h.Destinations, h.Quotes, h.RateCfg)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, toQuoteResponse(quote))
}

// Get returns a previously issued quote by ID.
func (h *QuoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		writeError(w, r, http.StatusBadRequest, "quote id is required")
		return
	}

	quote, err := h.Quotes.GetQuote(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	res := toQuoteResponse(quote)

	// Expiry is derived at read time; the stored row keeps its issued status.
	if quote.Status == domain.QuoteStatusActive && quote.Expired(h.now()) {
		res.Status = domain.QuoteStatusExpired
	}

	writeJSON(w, r, http.StatusOK, res)
}

func toQuoteResponse(q *domain.Quote) dto.QuoteResponse {
	return dto.QuoteResponse{
		QuoteID:       q.QuoteID,
		CustomerRef:   q.CustomerRef,
		DestinationID: q.DestinationID,
		ServiceType:   q.ServiceType,
		WeightLb:      q.WeightLb,
		Breakdown: dto.RateBreakdownResponse{
			BillableWeightLb:    q.Breakdown.BillableWeightLb,
			DimensionalWeightLb: q.Breakdown.DimensionalWeightLb,
			RatePerLb:           q.Breakdown.RatePerLb,
			BaseShippingCost:    q.Breakdown.BaseShippingCost,
			ExpressSurcharge:    q.Breakdown.ExpressSurcharge,
			ConsolidationFee:    q.Breakdown.ConsolidationFee,
			HandlingFee:         q.Breakdown.HandlingFee,
			InsuranceCost:       q.Breakdown.InsuranceCost,
			TotalCost:           q.Breakdown.TotalCost,
		},
		TransitDaysMin: q.TransitDaysMin,
		TransitDaysMax: q.TransitDaysMax,
		Status:         q.Status,
		IssuedAt:       q.IssuedAt,
		ExpiresAt:      q.ExpiresAt,
	}
}
