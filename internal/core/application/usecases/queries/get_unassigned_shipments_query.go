package queries

import (
	"errors"
	"time"

	"shipcore/internal/core/domain/model/kernel"
	"shipcore/internal/pkg/guard"
)

var ErrGetUnassignedShipmentsQueryIsNotConstructed = errors.New(
	"GetUnassignedShipmentsQuery must be created via NewGetUnassignedShipmentsQuery constructor",
)

// GetUnassignedShipmentsQuery retrieves the assignment backlog: every
// shipment still waiting for a courier, oldest first.
type GetUnassignedShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnassignedShipmentsQuery creates a query for the assignment backlog.
func NewGetUnassignedShipmentsQuery() GetUnassignedShipmentsQuery {
	return GetUnassignedShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUnassignedShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetUnassignedShipmentsQueryIsNotConstructed)
}

// GetUnassignedShipmentsQueryResponse is one backlog row: enough for a
// dispatcher to judge urgency without loading the full aggregate.
type GetUnassignedShipmentsQueryResponse struct {
	ID              kernel.UUID
	DestinationCity string
	DestinationZone kernel.Zone
	Priority        int
	WeightKg        float64
	TotalCost       float64
	CreatedAt       time.Time
	EstimatedDate   time.Time
}
