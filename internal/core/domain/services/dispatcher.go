package services

import (
	"errors"
	"time"

	"shipcore/internal/core/domain/model/courier"
	"shipcore/internal/core/domain/model/shipment"
)

// ErrNoEligibleCourier is returned when no courier can take a shipment:
// none is available, or none covers the destination zone.
var ErrNoEligibleCourier = errors.New("no eligible courier for shipment")

// ShipmentDispatcher is a domain service that matches a pending shipment to
// the best eligible courier and executes the assignment on both aggregates.
//
// Eligibility: the courier is AVAILABLE and their coverage includes the
// shipment's destination zone (CITY_WIDE couriers cover every zone).
// Among eligible couriers the one carrying the fewest assigned shipments
// wins; ties break on the lowest courier id so repeated runs over the same
// state pick the same courier.
type ShipmentDispatcher struct{}

// NewShipmentDispatcher creates a new ShipmentDispatcher instance.
func NewShipmentDispatcher() ShipmentDispatcher {
	return ShipmentDispatcher{}
}

// Dispatch assigns the best eligible courier to the shipment.
//
// On success the courier is reserved (availability IN_TRANSIT) and the
// shipment moves to READY_FOR_PICKUP with changedBy stamped in its history.
// Returns ErrNoEligibleCourier when no courier qualifies; the shipment is
// left unchanged.
func (d ShipmentDispatcher) Dispatch(
	s *shipment.Shipment,
	couriers []*courier.Courier,
	changedBy string,
	at time.Time,
) (*courier.Courier, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	best, err := d.findBestCourier(s, couriers)
	if err != nil {
		return nil, err
	}

	if err = best.Reserve(s.ID(), s.Destination().Zone()); err != nil {
		return nil, err
	}

	if err = s.Assign(best.ID(), changedBy, at); err != nil {
		return nil, err
	}

	return best, nil
}

// findBestCourier filters the couriers by eligibility and picks the least
// loaded one, breaking ties on the lowest id.
func (d ShipmentDispatcher) findBestCourier(
	s *shipment.Shipment, couriers []*courier.Courier,
) (*courier.Courier, error) {
	zone := s.Destination().Zone()

	var best *courier.Courier
	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if !c.CanServe(zone) {
			continue
		}

		if best == nil ||
			c.AssignedCount() < best.AssignedCount() ||
			(c.AssignedCount() == best.AssignedCount() && c.ID().Less(best.ID())) {
			best = c
		}
	}

	if best == nil {
		return nil, ErrNoEligibleCourier
	}

	return best, nil
}
