package config

import (
	"os"
	"strconv"
	"time"
)

// RateConfig carries the pricing constants consumed by the rate calculator.
// Passing it explicitly (instead of package globals) lets tests vary the
// constants without touching calculator internals.
type RateConfig struct {
	DimensionalDivisor  float64
	HandlingFee         float64
	HandlingThresholdLb float64
	InsuranceFloor      float64
	InsuranceRatePer100 float64
	InsuranceMinimum    float64
	QuoteValidityDays   int
}

// AvailabilityConfig carries the scheduling constants consumed by the
// availability allocator.
type AvailabilityConfig struct {
	Origin               Origin
	ServiceRadiusMiles   float64
	TravelMinutesPerMile float64
	BookingHorizonDays   int
	WindowLength         time.Duration
	WindowStep           time.Duration
}

// Origin is the fixed facility location pickups are measured from.
type Origin struct {
	Lat float64
	Lon float64
}

// Config is the full service configuration assembled from the environment.
type Config struct {
	Port         string
	DatabaseURL  string
	RedisAddr    string
	GeocodeTTL   time.Duration
	Geocoder     string // "ors" (default), "googlemaps", or "mock"
	ORSAPIKey    string
	MapsAPIKey   string
	SeedDir      string
	Rate         RateConfig
	Availability AvailabilityConfig
}

// DefaultRateConfig returns the published pricing constants.
func DefaultRateConfig() RateConfig {
	return RateConfig{
		DimensionalDivisor:  166,
		HandlingFee:         20.00,
		HandlingThresholdLb: 70,
		InsuranceFloor:      100,
		InsuranceRatePer100: 7.50,
		InsuranceMinimum:    15,
		QuoteValidityDays:   7,
	}
}

// DefaultAvailabilityConfig returns the scheduling constants for the Miami
// origin facility.
func DefaultAvailabilityConfig() AvailabilityConfig {
	return AvailabilityConfig{
		Origin:               Origin{Lat: 25.7617, Lon: -80.1918},
		ServiceRadiusMiles:   25,
		TravelMinutesPerMile: 2.5,
		BookingHorizonDays:   30,
		WindowLength:         2 * time.Hour,
		WindowStep:           time.Hour,
	}
}

// Load assembles configuration from the environment with defaults.
func Load() Config {
	cfg := Config{
		Port:         Get("PORT", "8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		RedisAddr:    Get("REDIS_ADDR", "localhost:6379"),
		GeocodeTTL:   time.Duration(getInt("GEOCODE_TTL_HOURS", 720)) * time.Hour,
		Geocoder:     Get("GEOCODER", "ors"),
		ORSAPIKey:    os.Getenv("ORS_API_KEY"),
		MapsAPIKey:   os.Getenv("MAPS_API_KEY"),
		SeedDir:      Get("SEED_DIR", "data/seeds"),
		Rate:         DefaultRateConfig(),
		Availability: DefaultAvailabilityConfig(),
	}

	cfg.Rate.HandlingFee = getFloat("RATE_HANDLING_FEE", cfg.Rate.HandlingFee)
	cfg.Rate.HandlingThresholdLb = getFloat("RATE_HANDLING_THRESHOLD_LB", cfg.Rate.HandlingThresholdLb)
	cfg.Rate.QuoteValidityDays = getInt("QUOTE_VALIDITY_DAYS", cfg.Rate.QuoteValidityDays)

	cfg.Availability.Origin.Lat = getFloat("ORIGIN_LAT", cfg.Availability.Origin.Lat)
	cfg.Availability.Origin.Lon = getFloat("ORIGIN_LON", cfg.Availability.Origin.Lon)
	cfg.Availability.ServiceRadiusMiles = getFloat("SERVICE_RADIUS_MILES", cfg.Availability.ServiceRadiusMiles)
	cfg.Availability.BookingHorizonDays = getInt("BOOKING_HORIZON_DAYS", cfg.Availability.BookingHorizonDays)

	return cfg
}

// Get returns an environment variable or a fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
