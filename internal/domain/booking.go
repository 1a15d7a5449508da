package domain

import "time"

// Booking statuses. Anything except cancelled counts against capacity.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Booking is an existing time-windowed reservation. It is read-only input
// to the capacity scan; this service never writes bookings.
type Booking struct {
	BookingID         int
	Status            string
	VehicleID         *int // nil until a vehicle is assigned
	WindowStart       time.Time
	WindowEnd         time.Time
	EstimatedWeightLb float64
}

// Overlaps reports whether the booking's window intersects [start, end).
func (b Booking) Overlaps(start, end time.Time) bool {
	return b.WindowStart.Before(end) && b.WindowEnd.After(start)
}

// CountsAgainstCapacity reports whether the booking consumes vehicle
// capacity: it must be non-cancelled and have an assigned vehicle.
func (b Booking) CountsAgainstCapacity() bool {
	return b.Status != BookingStatusCancelled && b.VehicleID != nil
}
