package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"freight-quote-service/internal/adapters/geo"
	"freight-quote-service/internal/adapters/repositories"
	"freight-quote-service/internal/api"
	"freight-quote-service/internal/config"
	"freight-quote-service/internal/platform/db"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis, the geocoder) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := config.Load()

	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	// The geocode cache keeps ZIP lookups off the external API; Redis holds
	// them with a TTL so stale entries age out on their own.
	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	geocodeCache := geo.NewRedisGeocodeCache(redisClient, cfg.GeocodeTTL)

	apiKey := cfg.ORSAPIKey
	if cfg.Geocoder == "googlemaps" {
		apiKey = cfg.MapsAPIKey
	}
	geocoder, err := geo.NewGeocoderByName(cfg.Geocoder, apiKey, geocodeCache)
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(api.RouterDeps{
		Destinations: repositories.NewPostgresDestinationRepository(database),
		Quotes:       repositories.NewPostgresQuoteRepository(database),
		Vehicles:     repositories.NewPostgresVehicleRepository(database),
		Bookings:     repositories.NewPostgresBookingRepository(database),
		Hours:        repositories.NewPostgresBusinessHoursRepository(database),
		Geocoder:     geocoder,
		Rate:         cfg.Rate,
		Availability: cfg.Availability,
	})

	// Timeouts are tuned for cold-cache geocoding (external API latency).
	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
