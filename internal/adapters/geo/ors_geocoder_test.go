package geo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"freight-quote-service/internal/domain"
	"freight-quote-service/internal/ports"
)

func newTestGeocoder(t *testing.T, handler http.HandlerFunc) (*ORSGeocoder, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	g, err := NewORSGeocoder("test-key", nil)
	if err != nil {
		t.Fatalf("NewORSGeocoder: %v", err)
	}
	g.baseURL = srv.URL

	return g, srv
}

func TestORSLookupParsesFeature(t *testing.T) {
	g, _ := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/geocode/search" {
			t.Errorf("path = %q, want /geocode/search", r.URL.Path)
		}
		if got := r.URL.Query().Get("text"); got != "33133" {
			t.Errorf("text = %q, want 33133", got)
		}
		if got := r.Header.Get("Authorization"); got != "test-key" {
			t.Errorf("Authorization = %q, want test-key", got)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"features": [{
				"geometry": {"coordinates": [-80.2417, 25.7280]},
				"properties": {"locality": "Miami", "region": "Florida"}
			}]
		}`))
	})

	loc, err := g.Lookup(context.Background(), "33133")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	if loc.City != "Miami" || loc.State != "Florida" {
		t.Errorf("locality = %s, %s; want Miami, Florida", loc.City, loc.State)
	}
	if loc.Lat != 25.7280 || loc.Lon != -80.2417 {
		t.Errorf("coords = (%v, %v), want (25.7280, -80.2417)", loc.Lat, loc.Lon)
	}
}

func TestORSLookupNoMatchIsNotFound(t *testing.T) {
	g, _ := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"features": []}`))
	})

	_, err := g.Lookup(context.Background(), "00000")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want domain.ErrNotFound", err)
	}
}

func TestORSLookupRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	g, _ := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"features": [{
				"geometry": {"coordinates": [-80.19, 25.76]},
				"properties": {"locality": "Miami", "region": "Florida"}
			}]
		}`))
	})

	loc, err := g.Lookup(context.Background(), "33101")
	if err != nil {
		t.Fatalf("Lookup after retries: %v", err)
	}
	if loc.City != "Miami" {
		t.Errorf("locality = %q, want Miami", loc.City)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("server saw %d calls, want 3", got)
	}
}

func TestORSLookupRejectsEmptyZip(t *testing.T) {
	g, err := NewORSGeocoder("test-key", nil)
	if err != nil {
		t.Fatalf("NewORSGeocoder: %v", err)
	}

	if _, err := g.Lookup(context.Background(), "   "); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("err = %v, want domain.ErrValidation", err)
	}
}

type countingCache struct {
	loc  ports.ZipLocation
	hit  bool
	gets int
	puts int
}

func (c *countingCache) Get(ctx context.Context, zip string) (ports.ZipLocation, bool, error) {
	c.gets++
	return c.loc, c.hit, nil
}

func (c *countingCache) Put(ctx context.Context, loc ports.ZipLocation) error {
	c.puts++
	c.loc = loc
	return nil
}

func TestORSLookupPrefersCache(t *testing.T) {
	cache := &countingCache{
		loc: ports.ZipLocation{Zip: "33133", City: "Miami", State: "Florida", Lat: 25.728, Lon: -80.2417},
		hit: true,
	}

	g, _ := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("network should not be consulted on a cache hit")
	})
	g.cache = cache

	loc, err := g.Lookup(context.Background(), "33133")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if loc.City != "Miami" {
		t.Errorf("locality = %q, want Miami", loc.City)
	}
	if cache.gets != 1 {
		t.Errorf("cache gets = %d, want 1", cache.gets)
	}
}

func TestORSLookupPopulatesCacheOnMiss(t *testing.T) {
	cache := &countingCache{}

	g, _ := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"features": [{
				"geometry": {"coordinates": [-80.2417, 25.7280]},
				"properties": {"locality": "Miami", "region": "Florida"}
			}]
		}`))
	})
	g.cache = cache

	if _, err := g.Lookup(context.Background(), "33133"); err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if cache.puts != 1 {
		t.Errorf("cache puts = %d, want 1", cache.puts)
	}
}
