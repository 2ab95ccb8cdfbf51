package queries

import (
	"errors"
	"time"

	"shipcore/internal/core/domain/model/kernel"
	"shipcore/internal/core/domain/model/shipment"
	"shipcore/internal/pkg/guard"
)

var ErrGetShipmentTrackingQueryIsNotConstructed = errors.New(
	"GetShipmentTrackingQuery must be created via NewGetShipmentTrackingQuery constructor",
)

// GetShipmentTrackingQuery retrieves the tracking view of one shipment: the
// current status plus the full audit trail of status changes.
type GetShipmentTrackingQuery struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentTrackingQuery creates a tracking query for the given shipment.
func NewGetShipmentTrackingQuery(shipmentID kernel.UUID) (GetShipmentTrackingQuery, error) {
	query := GetShipmentTrackingQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setShipmentID(shipmentID); err != nil {
		return GetShipmentTrackingQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentTrackingQueryIsNotConstructed)
}

// ShipmentID returns the identifier of the tracked shipment.
func (q GetShipmentTrackingQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

func (q *GetShipmentTrackingQuery) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	q.shipmentID = shipmentID
	return nil
}

// TrackingEvent is one entry of the shipment's audit trail.
type TrackingEvent struct {
	Previous  *shipment.Status
	Status    shipment.Status
	ChangedAt time.Time
	ChangedBy string
	Reason    string
}

// GetShipmentTrackingQueryResponse is the tracking read model: current state
// plus the ordered history of every transition the shipment went through.
type GetShipmentTrackingQueryResponse struct {
	ID            kernel.UUID
	Status        shipment.Status
	CourierID     *kernel.UUID
	VehiclePlate  *string
	EstimatedDate time.Time
	DeliveredDate *time.Time
	History       []TrackingEvent
}
