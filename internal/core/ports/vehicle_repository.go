package ports

import (
	"context"

	"shipcore/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for fleet vehicles,
// keyed by plate.
type VehicleRepository interface {
	// Add persists a new vehicle to storage.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Update persists changes to an existing vehicle, in particular its
	// availability flag.
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Get retrieves a vehicle by its plate.
	Get(ctx context.Context, plate string) (*vehicle.Vehicle, error)

	// GetAllAvailable retrieves all vehicles currently free to be taken.
	GetAllAvailable(ctx context.Context) ([]*vehicle.Vehicle, error)
}
