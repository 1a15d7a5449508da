package geo

import (
	"context"
	"fmt"
	"log"
	"strings"

	"googlemaps.github.io/maps"

	"freight-quote-service/internal/domain"
	"freight-quote-service/internal/platform/obs"
	"freight-quote-service/internal/ports"
)

// MapsGeocoder resolves US ZIP codes through the Google Maps Geocoding API.
// Alternative to the ORS provider, selected by configuration.
type MapsGeocoder struct {
	client *maps.Client
	cache  ports.GeocodeCache
}

func NewMapsGeocoder(apiKey string, cache ports.GeocodeCache) (*MapsGeocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("maps geocoder: create client: %w", err)
	}
	return &MapsGeocoder{client: client, cache: cache}, nil
}

func (m *MapsGeocoder) Lookup(ctx context.Context, zip string) (_ ports.ZipLocation, err error) {
	defer obs.Time(ctx, "geo.maps.Lookup")(&err)

	zip = strings.TrimSpace(zip)
	if zip == "" {
		return ports.ZipLocation{}, fmt.Errorf("geocode zip: zip must not be empty: %w", domain.ErrValidation)
	}

	if m.cache != nil {
		loc, hit, err := m.cache.Get(ctx, zip)
		if err != nil {
			log.Printf("geocode cache get failed zip=%s err=%v", zip, err)
		} else if hit {
			return loc, nil
		}
	}

	results, err := m.client.Geocode(ctx, &maps.GeocodingRequest{
		Components: map[maps.Component]string{
			maps.ComponentPostalCode: zip,
			maps.ComponentCountry:    "US",
		},
	})
	if err != nil {
		return ports.ZipLocation{}, fmt.Errorf("geocode zip %q: maps api: %w", zip, err)
	}
	if len(results) == 0 {
		return ports.ZipLocation{}, fmt.Errorf("geocode zip %q: %w", zip, domain.ErrNotFound)
	}

	loc := ports.ZipLocation{
		Zip: zip,
		Lat: results[0].Geometry.Location.Lat,
		Lon: results[0].Geometry.Location.Lng,
	}
	for _, comp := range results[0].AddressComponents {
		for _, t := range comp.Types {
			switch t {
			case "locality":
				loc.City = comp.LongName
			case "administrative_area_level_1":
				loc.State = comp.ShortName
			}
		}
	}

	if m.cache != nil {
		if err := m.cache.Put(ctx, loc); err != nil {
			log.Printf("geocode cache put failed zip=%s err=%v", zip, err)
		}
	}

	return loc, nil
}
