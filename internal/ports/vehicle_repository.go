package ports

import (
	"context"

	"freight-quote-service/internal/domain"
)

// Port: a boundary for retrieving the active vehicle fleet.
type VehicleRepository interface {
	// Retrieve active vehicles in stable order. The allocator's tie-break
	// depends on this order being deterministic.
	ListActiveVehicles(ctx context.Context) ([]domain.Vehicle, error)
}
