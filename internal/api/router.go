package api

import (
	"net/http"

	"freight-quote-service/internal/api/handlers"
	"freight-quote-service/internal/config"
	"freight-quote-service/internal/ports"
)

// RouterDeps carries everything the HTTP layer needs. Handlers receive ports,
// never concrete adapters; this is the API composition root.
type RouterDeps struct {
	Destinations ports.DestinationRepository
	Quotes       ports.QuoteRepository
	Vehicles     ports.VehicleRepository
	Bookings     ports.BookingRepository
	Hours        ports.BusinessHoursRepository
	Geocoder     ports.ZipGeocoder
	Rate         config.RateConfig
	Availability config.AvailabilityConfig
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	destHandler := &handlers.DestinationHandler{Repo: deps.Destinations}
	quoteHandler := &handlers.QuoteHandler{
		Destinations: deps.Destinations,
		Quotes:       deps.Quotes,
		RateCfg:      deps.Rate,
	}
	availHandler := &handlers.AvailabilityHandler{
		Vehicles: deps.Vehicles,
		Bookings: deps.Bookings,
		Hours:    deps.Hours,
		Geocoder: deps.Geocoder,
		Cfg:      deps.Availability,
	}

	mux.HandleFunc("GET /health", handlers.Health)
	mux.HandleFunc("GET /destinations", destHandler.List)
	mux.HandleFunc("POST /quotes", quoteHandler.Create)
	mux.HandleFunc("GET /quotes/{id}", quoteHandler.Get)
	mux.HandleFunc("POST /availability", availHandler.Find)

	return requestIDMiddleware(loggingMiddleware(mux))
}
