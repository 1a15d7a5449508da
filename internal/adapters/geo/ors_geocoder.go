package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"freight-quote-service/internal/domain"
	"freight-quote-service/internal/platform/obs"
	"freight-quote-service/internal/ports"
)

const orsBaseURL = "https://api.openrouteservice.org"

// ORSGeocoder resolves US ZIP codes through the OpenRouteService geocoding
// API, consulting the injected cache before the network.
type ORSGeocoder struct {
	apiKey  string
	baseURL string
	session *http.Client
	cache   ports.GeocodeCache
}

func NewORSGeocoder(apiKey string, cache ports.GeocodeCache) (*ORSGeocoder, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("ors geocoder: api key must not be empty")
	}

	return &ORSGeocoder{
		apiKey:  apiKey,
		baseURL: orsBaseURL,
		session: &http.Client{Timeout: 15 * time.Second},
		cache:   cache,
	}, nil
}

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Locality string `json:"locality"`
			Region   string `json:"region"`
		} `json:"properties"`
	} `json:"features"`
}

// Lookup resolves a ZIP code to coordinates. A ZIP the API cannot match
// returns domain.ErrNotFound; callers decide whether that is fatal.
func (o *ORSGeocoder) Lookup(ctx context.Context, zip string) (_ ports.ZipLocation, err error) {
	defer obs.Time(ctx, "geo.ors.Lookup")(&err)

	zip = strings.TrimSpace(zip)
	if zip == "" {
		return ports.ZipLocation{}, fmt.Errorf("geocode zip: zip must not be empty: %w", domain.ErrValidation)
	}

	if o.cache != nil {
		loc, hit, err := o.cache.Get(ctx, zip)
		if err != nil {
			// A broken cache degrades to a network lookup.
			log.Printf("geocode cache get failed zip=%s err=%v", zip, err)
		} else if hit {
			return loc, nil
		}
	}

	endpoint := o.baseURL + "/geocode/search"

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := o.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("text", zip)
		q.Set("boundary.country", "US")
		q.Set("layers", "postalcode")
		q.Set("size", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return ports.ZipLocation{}, fmt.Errorf("geocode zip %q: execute request: %w", zip, err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.ZipLocation{}, fmt.Errorf("geocode zip %q: decode response: %w", zip, err)
	}

	if len(decoded.Features) == 0 {
		return ports.ZipLocation{}, fmt.Errorf("geocode zip %q: %w", zip, domain.ErrNotFound)
	}

	coords := decoded.Features[0].Geometry.Coordinates
	if len(coords) != 2 {
		return ports.ZipLocation{}, fmt.Errorf("geocode zip %q: invalid coordinate format", zip)
	}

	loc := ports.ZipLocation{
		Zip:   zip,
		City:  decoded.Features[0].Properties.Locality,
		State: decoded.Features[0].Properties.Region,
		Lon:   coords[0],
		Lat:   coords[1],
	}

	if o.cache != nil {
		if err := o.cache.Put(ctx, loc); err != nil {
			log.Printf("geocode cache put failed zip=%s err=%v", zip, err)
		}
	}

	return loc, nil
}
