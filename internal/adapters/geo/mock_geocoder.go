package geo

import (
	"context"
	"fmt"

	"freight-quote-service/internal/domain"
	"freight-quote-service/internal/ports"
)

// MockGeocoder serves lookups from a fixed table. Used in tests and local
// runs without an API key.
type MockGeocoder struct {
	m map[string]ports.ZipLocation
}

// defaultMockLocations covers ZIPs around the Miami origin facility so the
// "mock" provider exercises both sides of the service-radius gate locally.
func defaultMockLocations() []ports.ZipLocation {
	return []ports.ZipLocation{
		{Zip: "33101", City: "Miami", State: "Florida", Lat: 25.7617, Lon: -80.1918},
		{Zip: "33133", City: "Miami", State: "Florida", Lat: 25.7280, Lon: -80.2417},
		{Zip: "33134", City: "Coral Gables", State: "Florida", Lat: 25.7215, Lon: -80.2684},
		{Zip: "33020", City: "Hollywood", State: "Florida", Lat: 26.0112, Lon: -80.1495},
		{Zip: "33401", City: "West Palm Beach", State: "Florida", Lat: 26.7056, Lon: -80.0647},
	}
}

func NewMockGeocoder(locations []ports.ZipLocation) *MockGeocoder {
	m := make(map[string]ports.ZipLocation, len(locations))
	for _, loc := range locations {
		m[loc.Zip] = loc
	}
	return &MockGeocoder{m: m}
}

func (g *MockGeocoder) Lookup(ctx context.Context, zip string) (ports.ZipLocation, error) {
	loc, ok := g.m[zip]
	if !ok {
		return ports.ZipLocation{}, fmt.Errorf("geocode zip %q: %w", zip, domain.ErrNotFound)
	}

	return loc, nil
}
