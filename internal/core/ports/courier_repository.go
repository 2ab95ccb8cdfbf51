// Package ports defines the repository and collaborator interfaces of the
// engine. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"shipcore/internal/core/domain/model/courier"
	"shipcore/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
// Provides methods for storing, retrieving, and querying courier entities
// with their complete state including assigned shipments.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	// The courier must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	// The courier must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	// Returns the complete courier with their assigned shipments.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAllAvailable retrieves all couriers in AVAILABLE state.
	// Availability is re-read inside the assignment transaction so a
	// concurrent reservation fails the whole operation instead of
	// double-booking the courier.
	GetAllAvailable(ctx context.Context) ([]*courier.Courier, error)
}
