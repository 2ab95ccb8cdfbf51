package ports

import (
	"context"

	"shipcore/internal/core/domain/model/kernel"
	"shipcore/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment
// aggregates, including their status history, services and incident.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	// The shipment must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate, including
	// newly appended status history entries.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	// Returns the complete shipment with its history, services and incident.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetAllPendingAssignment retrieves all shipments waiting for a courier,
	// ordered by creation time so older shipments are assigned first.
	GetAllPendingAssignment(ctx context.Context) ([]*shipment.Shipment, error)
}
