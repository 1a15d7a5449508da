package geo

import (
	"fmt"
	"strings"

	"freight-quote-service/internal/ports"
)

// NewGeocoderByName returns a ZipGeocoder by provider name.
// Empty or "ors" selects OpenRouteService; "googlemaps" selects Google Maps;
// "mock" serves a fixed Miami-area table for local runs without an API key.
func NewGeocoderByName(name, apiKey string, cache ports.GeocodeCache) (ports.ZipGeocoder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ors", "":
		return NewORSGeocoder(apiKey, cache)
	case "googlemaps":
		return NewMapsGeocoder(apiKey, cache)
	case "mock":
		return NewMockGeocoder(defaultMockLocations()), nil
	default:
		return nil, fmt.Errorf("unknown geocoder provider %q", name)
	}
}
