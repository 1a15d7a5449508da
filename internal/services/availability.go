package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"freight-quote-service/internal/config"
	"freight-quote-service/internal/domain"
	"freight-quote-service/internal/ports"
)

// Booking modes.
const (
	ModePickup  = "pickup"
	ModeDropoff = "dropoff"
)

// Availability statuses. Closed, out-of-area, and no-vehicles are routine
// business outcomes, returned as result variants rather than errors, so the
// caller can render "try a different day/location" to the customer.
const (
	StatusAvailable        = "available"
	StatusClosed           = "closed"
	StatusOutOfServiceArea = "out_of_service_area"
	StatusNoVehicles       = "no_vehicles"
)

// AvailabilityRequest describes a single availability query.
type AvailabilityRequest struct {
	Date              time.Time // calendar date being requested
	EstimatedWeightLb float64
	Mode              string // "pickup" or "dropoff"
	ZipCode           string // optional; only consulted for pickups
	ServiceType       string
	Now               time.Time // injected clock for past-window filtering
}

// AvailableWindow is a bookable slot with its best-fit vehicle.
type AvailableWindow struct {
	Start                 time.Time
	End                   time.Time
	VehicleID             int
	VehicleName           string
	RemainingCapacityLb   float64
	TravelEstimateMinutes *int // set only when a pickup distance was resolved
}

// AvailabilityResult is the outcome of an availability query.
type AvailabilityResult struct {
	Status        string
	Message       string
	Windows       []AvailableWindow
	DistanceMiles *float64
	City          string
	State         string
}

// FindAvailableWindows determines the bookable time windows for a date.
//
// The scan is a point-in-time capacity snapshot, not a reservation: two
// concurrent callers can be offered the same window, and serializing that
// race belongs to booking confirmation, not here.
func FindAvailableWindows(
	ctx context.Context,
	req AvailabilityRequest,
	vehicles ports.VehicleRepository,
	bookings ports.BookingRepository,
	hours ports.BusinessHoursRepository,
	geocoder ports.ZipGeocoder,
	cfg config.AvailabilityConfig,
) (*AvailabilityResult, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("find windows: date is required: %w", domain.ErrValidation)
	}
	if req.EstimatedWeightLb <= 0 {
		return nil, fmt.Errorf("find windows: estimated weight must be positive, got %v: %w",
			req.EstimatedWeightLb, domain.ErrValidation)
	}
	if req.Mode != ModePickup && req.Mode != ModeDropoff {
		return nil, fmt.Errorf("find windows: mode must be %q or %q, got %q: %w",
			ModePickup, ModeDropoff, req.Mode, domain.ErrValidation)
	}

	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}

	date := startOfDay(req.Date)
	today := startOfDay(now.In(req.Date.Location()))
	if date.Before(today) {
		return nil, fmt.Errorf("find windows: date %s is in the past: %w",
			date.Format("2006-01-02"), domain.ErrOutOfRange)
	}
	if date.After(today.AddDate(0, 0, cfg.BookingHorizonDays)) {
		return nil, fmt.Errorf("find windows: date %s is more than %d days out: %w",
			date.Format("2006-01-02"), cfg.BookingHorizonDays, domain.ErrOutOfRange)
	}

	dayHours, err := hours.GetHoursForDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("find windows: get business hours: %w", err)
	}
	if closed, msg := closedMessage(dayHours, date); closed {
		return &AvailabilityResult{Status: StatusClosed, Message: msg}, nil
	}

	result := &AvailabilityResult{Status: StatusAvailable}

	// The service-radius gate applies to pickups only; dropoffs are brought
	// to the facility by the customer. An unresolvable ZIP degrades to "no
	// distance" rather than blocking the booking.
	if req.Mode == ModePickup && req.ZipCode != "" {
		loc, err := geocoder.Lookup(ctx, req.ZipCode)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			// proceed without a distance
		case err != nil:
			return nil, fmt.Errorf("find windows: geocode zip %q: %w", req.ZipCode, err)
		default:
			origin := domain.Coordinates{Lat: cfg.Origin.Lat, Lon: cfg.Origin.Lon}
			d := origin.DistanceMiles(domain.Coordinates{Lat: loc.Lat, Lon: loc.Lon})
			result.DistanceMiles = &d
			result.City = loc.City
			result.State = loc.State

			if d > cfg.ServiceRadiusMiles {
				result.Status = StatusOutOfServiceArea
				result.Message = fmt.Sprintf("pickup location is %.1f miles away, beyond the %.0f-mile service radius",
					d, cfg.ServiceRadiusMiles)
				return result, nil
			}
		}
	}

	open, err := dayHours.OpenAt(date)
	if err != nil {
		return nil, fmt.Errorf("find windows: %w", err)
	}
	closeAt, err := dayHours.CloseAt(date)
	if err != nil {
		return nil, fmt.Errorf("find windows: %w", err)
	}

	candidates := domain.GenerateWindows(open, closeAt, cfg.WindowLength, cfg.WindowStep)

	// Same-day requests cannot book a window that has already started.
	upcoming := candidates[:0]
	for _, w := range candidates {
		if w.Start.After(now) {
			upcoming = append(upcoming, w)
		}
	}
	candidates = upcoming

	fleet, err := vehicles.ListActiveVehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("find windows: list vehicles: %w", err)
	}
	if len(fleet) == 0 {
		result.Status = StatusNoVehicles
		result.Message = "no vehicles are currently in service"
		return result, nil
	}

	// One fetch covers the whole day; each window filters by overlap.
	existing, err := bookings.ListActiveBookingsBetween(ctx, open, closeAt)
	if err != nil {
		return nil, fmt.Errorf("find windows: list bookings: %w", err)
	}

	result.Windows = make([]AvailableWindow, 0, len(candidates))
	for _, w := range candidates {
		vehicle, remaining, ok := bestFitVehicle(fleet, existing, w, req.EstimatedWeightLb)
		if !ok {
			// No vehicle can take the weight in this window; the window
			// is dropped entirely, never returned with negative capacity.
			continue
		}

		aw := AvailableWindow{
			Start:               w.Start,
			End:                 w.End,
			VehicleID:           vehicle.VehicleID,
			VehicleName:         vehicle.Name,
			RemainingCapacityLb: remaining,
		}
		if result.DistanceMiles != nil {
			mins := int(math.Ceil(*result.DistanceMiles * cfg.TravelMinutesPerMile))
			aw.TravelEstimateMinutes = &mins
		}
		result.Windows = append(result.Windows, aw)
	}

	return result, nil
}

// bestFitVehicle selects the vehicle with the most remaining capacity in the
// window that can still fit the requested weight (greedy best-fit, spreading
// load across the fleet). Ties go to the first vehicle examined: replacement
// happens only on strict inequality, so fleet order decides.
func bestFitVehicle(
	fleet []domain.Vehicle,
	existing []domain.Booking,
	w domain.TimeWindow,
	weightLb float64,
) (domain.Vehicle, float64, bool) {
	loaded := make(map[int]float64, len(fleet))
	for _, b := range existing {
		if !b.CountsAgainstCapacity() || !b.Overlaps(w.Start, w.End) {
			continue
		}
		loaded[*b.VehicleID] += b.EstimatedWeightLb
	}

	var best domain.Vehicle
	bestRemaining := -1.0
	found := false

	for _, v := range fleet {
		remaining := v.CapacityLb - loaded[v.VehicleID]
		if remaining < weightLb {
			continue
		}
		if remaining > bestRemaining {
			best = v
			bestRemaining = remaining
			found = true
		}
	}

	return best, bestRemaining, found
}

// closedMessage reports whether the day is closed and why, distinguishing
// holiday closures from weekly closures and unconfigured days.
func closedMessage(h domain.BusinessHours, date time.Time) (bool, string) {
	if h.Closed {
		if h.Holiday {
			name := h.HolidayName
			if name == "" {
				name = "a holiday"
			}
			return true, fmt.Sprintf("closed for %s", name)
		}
		return true, fmt.Sprintf("closed on %ss", date.Weekday())
	}
	if !h.HasHours() {
		return true, fmt.Sprintf("no business hours configured for %s", date.Format("2006-01-02"))
	}
	return false, ""
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
