package domain

// Vehicle is a fleet vehicle available for pickups and dropoffs.
// Read-only to this service.
type Vehicle struct {
	VehicleID  int
	Name       string
	CapacityLb float64
	Active     bool
}
