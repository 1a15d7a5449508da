package ports

import "context"

// ZipLocation is a geocoded ZIP code.
type ZipLocation struct {
	Zip   string
	City  string
	State string
	Lat   float64
	Lon   float64
}

// Port: a boundary for resolving ZIP codes to coordinates.
type ZipGeocoder interface {
	// Resolve a ZIP code. Returns domain.ErrNotFound when the ZIP cannot
	// be resolved; callers decide whether that is fatal.
	Lookup(ctx context.Context, zip string) (ZipLocation, error)
}

// Port: a boundary for caching geocode results.
type GeocodeCache interface {
	// Fetch a cached location. The second return reports a cache hit.
	Get(ctx context.Context, zip string) (ZipLocation, bool, error)

	// Store a location. Entries may expire per the cache's TTL policy.
	Put(ctx context.Context, loc ZipLocation) error
}
