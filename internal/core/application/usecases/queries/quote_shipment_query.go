// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"shipcore/internal/core/domain/model/kernel"
	"shipcore/internal/core/domain/model/shipment"
	"shipcore/internal/core/domain/model/vehicle"
	"shipcore/internal/pkg/errs"
	"shipcore/internal/pkg/guard"
)

var ErrQuoteShipmentQueryIsNotConstructed = errors.New(
	"QuoteShipmentQuery must be created via NewQuoteShipmentQuery constructor",
)

// QuoteShipmentQuery prices a prospective shipment without persisting
// anything. The same parameters always produce the same quote.
type QuoteShipmentQuery struct { //nolint:recvcheck //using for validation
	origin       kernel.Address
	destination  kernel.Address
	pack         shipment.Package
	priority     int
	serviceTypes []shipment.ServiceType
	pickupAt     time.Time

	guard guard.ConstructorGuard
}

// NewQuoteShipmentQuery creates a quote query for the given route and parcel.
func NewQuoteShipmentQuery(
	origin kernel.Address,
	destination kernel.Address,
	pack shipment.Package,
	priority int,
	serviceTypes []shipment.ServiceType,
	pickupAt time.Time,
) (QuoteShipmentQuery, error) {
	query := QuoteShipmentQuery{
		priority:     priority,
		serviceTypes: serviceTypes,
		pickupAt:     pickupAt,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setOrigin(origin),
		query.setDestination(destination),
		query.setPackage(pack),
	); err != nil {
		return QuoteShipmentQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q QuoteShipmentQuery) Validate() error {
	return q.guard.Validate(ErrQuoteShipmentQueryIsNotConstructed)
}

// Origin returns the pickup address.
func (q QuoteShipmentQuery) Origin() kernel.Address {
	return q.origin
}

// Destination returns the delivery address.
func (q QuoteShipmentQuery) Destination() kernel.Address {
	return q.destination
}

// Package returns the parcel profile to price.
func (q QuoteShipmentQuery) Package() shipment.Package {
	return q.pack
}

// Priority returns the requested priority level.
func (q QuoteShipmentQuery) Priority() int {
	return q.priority
}

// ServiceTypes returns the requested add-on services.
func (q QuoteShipmentQuery) ServiceTypes() []shipment.ServiceType {
	return q.serviceTypes
}

// PickupAt returns the requested pickup time.
func (q QuoteShipmentQuery) PickupAt() time.Time {
	return q.pickupAt
}

func (q *QuoteShipmentQuery) setOrigin(origin kernel.Address) error {
	if err := origin.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("origin", err)
	}
	q.origin = origin
	return nil
}

func (q *QuoteShipmentQuery) setDestination(destination kernel.Address) error {
	if err := destination.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("destination", err)
	}
	q.destination = destination
	return nil
}

func (q *QuoteShipmentQuery) setPackage(pack shipment.Package) error {
	if err := pack.Validate(); err != nil {
		return err
	}
	q.pack = pack
	return nil
}

// QuoteShipmentQueryResponse is the itemized quote returned to the caller,
// including the vehicle type the parcel would be dispatched on.
type QuoteShipmentQueryResponse struct {
	Costs              shipment.CostBreakdown
	Services           []shipment.AdditionalService
	DistanceKm         float64
	EstimatedDelivery  time.Time
	RecommendedVehicle vehicle.Type
}
