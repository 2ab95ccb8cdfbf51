package queries

import (
	"context"

	"shipcore/internal/core/domain/model/kernel"
	"shipcore/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnassignedShipmentsQueryHandler reads the assignment backlog straight
// from the database. Uses direct SQL for optimal read performance in the
// CQRS pattern.
type GetUnassignedShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetUnassignedShipmentsQueryHandler creates a handler for backlog queries.
// Requires a GORM database connection for query execution.
func NewGetUnassignedShipmentsQueryHandler(db *gorm.DB) GetUnassignedShipmentsQueryHandler {
	return GetUnassignedShipmentsQueryHandler{db: db}
}

// Handle executes the backlog query. Shipments come back oldest first, the
// same order the auto-assignment sweep consumes them in.
func (h GetUnassignedShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetUnassignedShipmentsQuery,
) ([]GetUnassignedShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	backlog := make([]GetUnassignedShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			destination_city,
			destination_zone,
			priority,
			weight_kg,
			total_cost,
			created_at,
			estimated_date
		FROM shipments
		WHERE status = ?
		ORDER BY created_at
	`, shipment.StatusPendingAssignment.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetUnassignedShipmentsQueryResponse
		var id uuid.UUID
		var zone string

		err = rows.Scan(
			&id,
			&row.DestinationCity,
			&zone,
			&row.Priority,
			&row.WeightKg,
			&row.TotalCost,
			&row.CreatedAt,
			&row.EstimatedDate,
		)
		if err != nil {
			return nil, err
		}

		shipmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = shipmentID

		destinationZone, zoneErr := kernel.ZoneFromString(zone)
		if zoneErr != nil {
			return nil, zoneErr
		}
		row.DestinationZone = destinationZone

		backlog = append(backlog, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return backlog, nil
}
