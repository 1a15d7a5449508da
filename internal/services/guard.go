package services

import (
	"fmt"

	"freight-quote-service/internal/domain"
)

// ValidateQuote compares a client-echoed rate breakdown against the server
// recomputation, field by field, with zero tolerance.
//
// Both sides are rounded to 2 decimals before comparing, so exact equality is
// safe; a mismatch means the client numbers were manipulated, not float
// noise. On rejection the whole quote request fails and nothing is persisted.
func ValidateQuote(client, server domain.RateBreakdown) error {
	checks := []struct {
		field  string
		client float64
		server float64
	}{
		{"total_cost", client.TotalCost, server.TotalCost},
		{"base_shipping_cost", client.BaseShippingCost, server.BaseShippingCost},
		{"express_surcharge", client.ExpressSurcharge, server.ExpressSurcharge},
	}

	for _, c := range checks {
		// Round before comparing, never after.
		if domain.Round2(c.client) != domain.Round2(c.server) {
			return fmt.Errorf("validate quote: %s mismatch: client %.2f, server %.2f: %w",
				c.field, c.client, c.server, domain.ErrTampering)
		}
	}

	return nil
}
