package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"freight-quote-service/internal/config"
	"freight-quote-service/internal/domain"
)

type fakeDestinationRepo struct {
	dest domain.Destination
}

func (f *fakeDestinationRepo) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	return []domain.Destination{f.dest}, nil
}

func (f *fakeDestinationRepo) GetDestination(ctx context.Context, id int) (domain.Destination, error) {
	if id != f.dest.DestinationID {
		return domain.Destination{}, fmt.Errorf("destination %d: %w", id, domain.ErrNotFound)
	}
	return f.dest, nil
}

type fakeQuoteRepo struct {
	saved []*domain.Quote
}

func (f *fakeQuoteRepo) CreateQuote(ctx context.Context, q *domain.Quote) error {
	f.saved = append(f.saved, q)
	return nil
}

func (f *fakeQuoteRepo) GetQuote(ctx context.Context, id string) (*domain.Quote, error) {
	for _, q := range f.saved {
		if q.QuoteID == id {
			return q, nil
		}
	}
	return nil, fmt.Errorf("quote %q: %w", id, domain.ErrNotFound)
}

func newQuoteHandler() (*QuoteHandler, *fakeQuoteRepo) {
	quotes := &fakeQuoteRepo{}
	h := &QuoteHandler{
		Destinations: &fakeDestinationRepo{dest: domain.Destination{
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
		}},
		Quotes:  quotes,
		RateCfg: config.DefaultRateConfig(),
	}
	return h, quotes
}

func TestQuoteCreateReturnsPricedQuote(t *testing.T) {
	h, quotes := newQuoteHandler()

	body := `{"customer_ref":"CUST-100","destination_id":1,"weight_lb":75,"service_type":"standard"}`
	req := httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var res struct {
		QuoteID   string `json:"quote_id"`
		Breakdown struct {
			TotalCost float64 `json:"total_cost"`
		} `json:"breakdown"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	// 75 lb at tier 2 ($5.00/lb) plus $20 handling over 70 lb.
	if res.Breakdown.TotalCost != 395.00 {
		t.Errorf("total_cost = %v, want 395.00", res.Breakdown.TotalCost)
	}
	if res.QuoteID == "" {
		t.Error("quote_id should not be empty")
	}
	if len(quotes.saved) != 1 {
		t.Errorf("persisted %d quotes, want 1", len(quotes.saved))
	}
}

func TestQuoteCreateRejectsTamperedBreakdown(t *testing.T) {
	h, quotes := newQuoteHandler()

	body := `{
		"customer_ref": "CUST-100",
		"destination_id": 1,
		"weight_lb": 75,
		"service_type": "standard",
		"client_breakdown": {"base_shipping_cost": 375.00, "express_surcharge": 0, "total_cost": 394.00}
	}`
	req := httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusUnprocessableEntity, rec.Body.String())
	}
	if len(quotes.saved) != 0 {
		t.Errorf("persisted %d quotes after tampering rejection, want 0", len(quotes.saved))
	}
}

func TestQuoteCreateUnknownDestinationIs404(t *testing.T) {
	h, _ := newQuoteHandler()

	body := `{"customer_ref":"CUST-100","destination_id":99,"weight_lb":10}`
	req := httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusNotFound, rec.Body.String())
	}
}

func TestQuoteCreateRejectsMalformedBody(t *testing.T) {
	h, _ := newQuoteHandler()

	cases := []struct {
		name string
		body string
	}{
		{"not json", "weight=75"},
		{"unknown field", `{"customer_ref":"C","destination_id":1,"weight_lb":10,"bogus":true}`},
		{"trailing object", `{"customer_ref":"C","destination_id":1,"weight_lb":10}{}`},
		{"blank customer ref", `{"customer_ref":"  ","destination_id":1,"weight_lb":10}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			h.Create(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestQuoteGetRoundTrip(t *testing.T) {
	h, _ := newQuoteHandler()

	body := `{"customer_ref":"CUST-7","destination_id":1,"weight_lb":20}`
	createReq := httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(body))
	createRec := httptest.NewRecorder()
	h.Create(createRec, createReq)
	if createRec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want %d", createRec.Code, http.StatusCreated)
	}

	var created struct {
		QuoteID string `json:"quote_id"`
	}
	if err := json.NewDecoder(createRec.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}

	getReq := httptest.NewRequest(http.MethodGet, "/quotes/"+created.QuoteID, nil)
	getReq.SetPathValue("id", created.QuoteID)
	getRec := httptest.NewRecorder()

	h.Get(getRec, getReq)

	if getRec.Code != http.StatusOK {
		t.Fatalf("get status = %d, want %d; body: %s", getRec.Code, http.StatusOK, getRec.Body.String())
	}

	var fetched struct {
		QuoteID     string `json:"quote_id"`
		CustomerRef string `json:"customer_ref"`
	}
	if err := json.NewDecoder(getRec.Body).Decode(&fetched); err != nil {
		t.Fatalf("decode get response: %v", err)
	}
	if fetched.QuoteID != created.QuoteID {
		t.Errorf("quote_id = %q, want %q", fetched.QuoteID, created.QuoteID)
	}
	if fetched.CustomerRef != "CUST-7" {
		t.Errorf("customer_ref = %q, want %q", fetched.CustomerRef, "CUST-7")
	}
}

func TestQuoteGetReportsExpiredStatus(t *testing.T) {
	h, quotes := newQuoteHandler()

	issued := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	quotes.saved = append(quotes.saved, &domain.Quote{
		QuoteID:       "q-expired",
		CustomerRef:   "CUST-9",
		DestinationID: 1,
		ServiceType:   domain.ServiceTypeStandard,
		WeightLb:      20,
		Status:        domain.QuoteStatusActive,
		IssuedAt:      issued,
		ExpiresAt:     issued.AddDate(0, 0, 7),
	})

	// One day past expiry: the stored row still says active, the read must not.
	h.Now = func() time.Time { return issued.AddDate(0, 0, 8) }

	req := httptest.NewRequest(http.MethodGet, "/quotes/q-expired", nil)
	req.SetPathValue("id", "q-expired")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var res struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Status != domain.QuoteStatusExpired {
		t.Errorf("status = %q, want %q", res.Status, domain.QuoteStatusExpired)
	}

	// A quote still inside its validity window keeps reporting active.
	h.Now = func() time.Time { return issued.AddDate(0, 0, 3) }

	rec = httptest.NewRecorder()
	h.Get(rec, req)

	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Status != domain.QuoteStatusActive {
		t.Errorf("status = %q, want %q", res.Status, domain.QuoteStatusActive)
	}
}

func TestQuoteGetUnknownIDIs404(t *testing.T) {
	h, _ := newQuoteHandler()

	req := httptest.NewRequest(http.MethodGet, "/quotes/nope", nil)
	req.SetPathValue("id", "nope")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
