package queries

import (
	"context"

	"shipcore/internal/core/domain/model/courier"
	"shipcore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllCouriersQueryHandler retrieves all courier information from the
// database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetAllCouriersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCouriersQueryHandler creates a handler for courier retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllCouriersQueryHandler(db *gorm.DB) GetAllCouriersQueryHandler {
	return GetAllCouriersQueryHandler{db: db}
}

// Handle executes the query to retrieve all couriers.
// Returns a slice of courier read models sorted by name, each carrying the
// number of shipments currently assigned.
func (h GetAllCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCouriersQuery,
) ([]GetAllCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	couriers := make([]GetAllCouriersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			c.coverage,
			c.availability,
			c.vehicle_plate,
			COUNT(a.shipment_id) AS assigned_count
		FROM couriers c
		LEFT JOIN courier_assignments a ON a.courier_id = c.id
		GROUP BY c.id, c.name, c.coverage, c.availability, c.vehicle_plate
		ORDER BY c.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetAllCouriersQueryResponse
		var id uuid.UUID
		var coverage, availability string

		err = rows.Scan(
			&id,
			&row.Name,
			&coverage,
			&availability,
			&row.VehiclePlate,
			&row.AssignedCount,
		)
		if err != nil {
			return nil, err
		}

		courierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = courierID

		coverageZone, zoneErr := kernel.ZoneFromString(coverage)
		if zoneErr != nil {
			return nil, zoneErr
		}
		row.Coverage = coverageZone

		courierAvailability, availErr := courier.AvailabilityFromString(availability)
		if availErr != nil {
			return nil, availErr
		}
		row.Availability = courierAvailability

		couriers = append(couriers, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}
