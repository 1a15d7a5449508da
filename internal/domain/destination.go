package domain

// Destination is a shipping destination with its published rate card.
// Rates are per pound and tiered by billable weight. Read-only to this
// service; administrative rate updates happen elsewhere.
type Destination struct {
	DestinationID       int
	Country             string
	City                string
	AirportCode         string
	Tier1RatePerLb      float64 // 1-50 lb
	Tier2RatePerLb      float64 // 51-100 lb
	Tier3RatePerLb      float64 // 101-200 lb
	Tier4RatePerLb      float64 // 201+ lb
	ExpressSurchargePct float64
	TransitDaysMin      int
	TransitDaysMax      int
}

// RateForWeight selects the per-pound rate for a billable weight.
// A weight exactly on a tier boundary uses the lower tier.
func (d Destination) RateForWeight(billableLb float64) float64 {
	switch {
	case billableLb <= 50:
		return d.Tier1RatePerLb
	case billableLb <= 100:
		return d.Tier2RatePerLb
	case billableLb <= 200:
		return d.Tier3RatePerLb
	default:
		return d.Tier4RatePerLb
	}
}
