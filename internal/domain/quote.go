package domain

import "time"

// Quote statuses.
const (
	QuoteStatusActive   = "active"
	QuoteStatusAccepted = "accepted"
	QuoteStatusExpired  = "expired"
)

// Quote is a priced, persisted offer. The stored breakdown is always the
// server recomputation, never the client-submitted numbers.
type Quote struct {
	QuoteID            string
	CustomerRef        string
	DestinationID      int
	ServiceType        string
	WeightLb           float64
	Breakdown          RateBreakdown
	TransitDaysMin     int
	TransitDaysMax     int
	Status             string
	CalculationFlagged bool
	IssuedAt           time.Time
	ExpiresAt          time.Time
}

// Expired reports whether the quote's validity window has passed.
func (q *Quote) Expired(now time.Time) bool {
	return now.After(q.ExpiresAt)
}
