package shipment

import (
	"errors"
	"fmt"
	"time"

	"shipcore/internal/core/domain/model/kernel"
	"shipcore/internal/pkg/errs"
	"shipcore/internal/pkg/guard"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through the NewShipment or RestoreShipment factory functions.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

// ErrIncidentAlreadyRegistered is returned when a second incident is
// registered against a shipment that already carries one.
var ErrIncidentAlreadyRegistered = errors.New("shipment already has a registered incident")

// ErrCourierIsRequired is returned when a status that requires an assigned
// courier is entered while the shipment has none.
var ErrCourierIsRequired = errors.New("status requires an assigned courier")

// Shipment represents the operational delivery created when an order is
// approved. It is the aggregate root that manages the transit lifecycle from
// assignment through pickup and delivery.
//
// Shipment follows these invariants:
//   - Status transitions follow the canonical table in Status
//   - A courier is bound exactly in the statuses reported by RequiresCourier;
//     cancellation clears the binding
//   - The cost breakdown components sum to the total within CostEpsilon
//   - The status history is append-only, chronologically non-decreasing, and
//     its first entry has no previous status
//   - At most one incident is ever registered
//
// The Shipment struct uses private fields to ensure encapsulation and
// maintains its invariants through validated methods.
type Shipment struct {
	// id is the unique identifier for the shipment
	id kernel.UUID

	// orderID references the order this shipment fulfills
	orderID kernel.UUID

	// origin is the pickup address
	origin kernel.Address

	// destination is the delivery address
	destination kernel.Address

	// pack describes the parcel dimensions and weight
	pack Package

	// priority is the urgency level, 1 (lowest) to 5 (highest)
	priority int

	// services are the purchased add-ons with their frozen costs
	services []AdditionalService

	// costs is the itemized price computed at quoting time
	costs CostBreakdown

	// status represents the current state in the transit lifecycle
	status Status

	// courierID references the assigned courier (nil before assignment)
	courierID *kernel.UUID

	// vehiclePlate references the vehicle selected for the parcel (nil before)
	vehiclePlate *string

	// createdAt is the creation timestamp
	createdAt time.Time

	// estimatedDate is the promised delivery date
	estimatedDate time.Time

	// deliveredDate is stamped when the shipment reaches Delivered
	deliveredDate *time.Time

	// incident is the registered exception, if any
	incident *Incident

	// history is the append-only audit log of status changes
	history []StatusChange

	// guard ensures the shipment was created via a constructor
	guard guard.ConstructorGuard
}

// MinPriority and MaxPriority bound the shipment urgency scale.
const (
	MinPriority = 1
	MaxPriority = 5
)

// NewShipment creates a new Shipment in PendingAssignment and writes the
// first history entry with no previous status.
//
// Returns a validation error if any identifier, address, the package, the
// priority or the cost breakdown is invalid.
func NewShipment(
	id kernel.UUID,
	orderID kernel.UUID,
	origin kernel.Address,
	destination kernel.Address,
	pack Package,
	priority int,
	services []AdditionalService,
	costs CostBreakdown,
	createdAt time.Time,
	estimatedDate time.Time,
) (*Shipment, error) {
	shipment := &Shipment{
		status:        StatusPendingAssignment,
		createdAt:     createdAt,
		estimatedDate: estimatedDate,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipment.setID(id),
		shipment.setOrderID(orderID),
		shipment.setOrigin(origin),
		shipment.setDestination(destination),
		shipment.setPackage(pack),
		shipment.setPriority(priority),
		shipment.setServices(services),
		shipment.setCosts(costs),
	); err != nil {
		return nil, err
	}

	created, err := NewStatusChange(nil, StatusPendingAssignment, createdAt, SystemActor, "shipment created")
	if err != nil {
		return nil, err
	}
	shipment.history = append(shipment.history, created)

	return shipment, nil
}

// RestoreShipment reconstructs a Shipment aggregate from persistent storage.
// Unlike NewShipment it accepts the full persisted state, including the
// courier and vehicle bindings, the incident and the status history. The
// restored shipment behaves identically to one created through normal domain
// operations.
func RestoreShipment(
	id kernel.UUID,
	orderID kernel.UUID,
	origin kernel.Address,
	destination kernel.Address,
	pack Package,
	priority int,
	services []AdditionalService,
	costs CostBreakdown,
	status Status,
	courierID *kernel.UUID,
	vehiclePlate *string,
	createdAt time.Time,
	estimatedDate time.Time,
	deliveredDate *time.Time,
	incident *Incident,
	history []StatusChange,
) (*Shipment, error) {
	shipment := &Shipment{
		courierID:     courierID,
		vehiclePlate:  vehiclePlate,
		createdAt:     createdAt,
		estimatedDate: estimatedDate,
		deliveredDate: deliveredDate,
		incident:      incident,
		history:       history,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipment.setID(id),
		shipment.setOrderID(orderID),
		shipment.setOrigin(origin),
		shipment.setDestination(destination),
		shipment.setPackage(pack),
		shipment.setPriority(priority),
		shipment.setServices(services),
		shipment.setCosts(costs),
		shipment.setStatus(status),
	); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
	}
	if err := shipment.checkCourierInvariant(status); err != nil {
		return nil, err
	}

	return shipment, nil
}

// Validate ensures the Shipment instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// OrderID returns the identifier of the order this shipment fulfills.
func (s *Shipment) OrderID() kernel.UUID {
	return s.orderID
}

// Origin returns the pickup address.
func (s *Shipment) Origin() kernel.Address {
	return s.origin
}

// Destination returns the delivery address.
func (s *Shipment) Destination() kernel.Address {
	return s.destination
}

// Package returns the parcel profile.
func (s *Shipment) Package() Package {
	return s.pack
}

// Priority returns the urgency level between MinPriority and MaxPriority.
func (s *Shipment) Priority() int {
	return s.priority
}

// Services returns a copy of the purchased add-on services.
func (s *Shipment) Services() []AdditionalService {
	services := make([]AdditionalService, len(s.services))
	copy(services, s.services)
	return services
}

// HasService reports whether a service of the given type was purchased.
func (s *Shipment) HasService(serviceType ServiceType) bool {
	for _, service := range s.services {
		if service.Type() == serviceType {
			return true
		}
	}
	return false
}

// Costs returns the itemized cost breakdown.
func (s *Shipment) Costs() CostBreakdown {
	return s.costs
}

// Status returns the current status of the shipment.
func (s *Shipment) Status() Status {
	return s.status
}

// CourierID returns the identifier of the assigned courier, or nil while the
// shipment is unassigned.
func (s *Shipment) CourierID() *kernel.UUID {
	return s.courierID
}

// VehiclePlate returns the plate of the selected vehicle, or nil before one
// is bound.
func (s *Shipment) VehiclePlate() *string {
	return s.vehiclePlate
}

// CreatedAt returns the creation timestamp.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// EstimatedDate returns the promised delivery date.
func (s *Shipment) EstimatedDate() time.Time {
	return s.estimatedDate
}

// DeliveredDate returns the actual delivery timestamp, or nil while the
// shipment is not delivered.
func (s *Shipment) DeliveredDate() *time.Time {
	return s.deliveredDate
}

// Incident returns the registered incident, or nil if none was registered.
func (s *Shipment) Incident() *Incident {
	return s.incident
}

// History returns a copy of the append-only status change log.
func (s *Shipment) History() []StatusChange {
	history := make([]StatusChange, len(s.history))
	copy(history, s.history)
	return history
}

// Assign binds a courier to the shipment and moves it to ReadyForPickup.
// The binding and the transition happen atomically so the courier invariant
// is never observable in a broken state.
//
// Legal only from PendingAssignment.
func (s *Shipment) Assign(courierID kernel.UUID, changedBy string, at time.Time) error {
	if err := courierID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("courierID", err)
	}

	newStatus, err := s.status.TransitionTo(StatusReadyForPickup)
	if err != nil {
		return err
	}

	change, err := NewStatusChange(statusPtr(s.status), newStatus, at, changedBy, "courier assigned")
	if err != nil {
		return err
	}

	s.courierID = &courierID
	s.status = newStatus
	s.history = append(s.history, change)
	return nil
}

// ChangeStatus moves the shipment to a new status and appends an audit entry.
//
// The move must be legal per the transition table and must keep the courier
// invariant intact. Entering Delivered stamps the delivery date; entering
// Cancelled releases the courier and vehicle bindings.
func (s *Shipment) ChangeStatus(newStatus Status, changedBy, reason string, at time.Time) error {
	next, err := s.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}
	if next.RequiresCourier() && s.courierID == nil {
		return errs.NewIllegalTransitionErrorWithCause(
			"shipment", s.status.String(), next.String(), ErrCourierIsRequired)
	}

	change, err := NewStatusChange(statusPtr(s.status), next, at, changedBy, reason)
	if err != nil {
		return err
	}

	s.status = next
	s.history = append(s.history, change)

	if next == StatusDelivered {
		delivered := at
		s.deliveredDate = &delivered
	}
	if next == StatusCancelled {
		s.courierID = nil
		s.vehiclePlate = nil
	}
	return nil
}

// RegisterIncident records an exception against the shipment. The incident
// does not change the status by itself.
//
// Legal only while the shipment is not terminal, and at most once.
func (s *Shipment) RegisterIncident(incident Incident) error {
	if s.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("shipment status",
			fmt.Errorf("cannot register incident in terminal status %s", s.status))
	}
	if s.incident != nil {
		return ErrIncidentAlreadyRegistered
	}

	s.incident = &incident
	return nil
}

// AssignVehicle binds the selected vehicle to the shipment by plate.
func (s *Shipment) AssignVehicle(plate string) error {
	if plate == "" {
		return errs.NewValueIsRequiredError("plate")
	}
	s.vehiclePlate = &plate
	return nil
}

// checkCourierInvariant verifies the biconditional between the courier
// binding and the statuses that require one.
func (s *Shipment) checkCourierInvariant(status Status) error {
	if status.RequiresCourier() && s.courierID == nil {
		return errs.NewValueIsInvalidErrorWithCause("courierID",
			fmt.Errorf("status %s requires an assigned courier", status))
	}
	if !status.RequiresCourier() && s.courierID != nil {
		return errs.NewValueIsInvalidErrorWithCause("courierID",
			fmt.Errorf("status %s forbids an assigned courier", status))
	}
	return nil
}

// setID validates and sets the shipment's unique identifier.
// This is a private method used only during construction.
func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

// setOrderID validates and sets the owning order's identifier.
func (s *Shipment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}
	s.orderID = orderID
	return nil
}

// setOrigin validates and sets the pickup address.
func (s *Shipment) setOrigin(origin kernel.Address) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	s.origin = origin
	return nil
}

// setDestination validates and sets the delivery address.
func (s *Shipment) setDestination(destination kernel.Address) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	s.destination = destination
	return nil
}

// setPackage validates and sets the parcel profile.
func (s *Shipment) setPackage(pack Package) error {
	if err := pack.Validate(); err != nil {
		return err
	}
	s.pack = pack
	return nil
}

// setPriority validates and sets the urgency level.
func (s *Shipment) setPriority(priority int) error {
	if priority < MinPriority || priority > MaxPriority {
		return errs.NewValueIsOutOfRangeError("priority", priority, MinPriority, MaxPriority)
	}
	s.priority = priority
	return nil
}

// setServices validates and sets the purchased add-ons, rejecting duplicates.
func (s *Shipment) setServices(services []AdditionalService) error {
	seen := make(map[ServiceType]bool, len(services))
	for _, service := range services {
		if err := service.Type().Validate(); err != nil {
			return err
		}
		if seen[service.Type()] {
			return errs.NewValueIsInvalidErrorWithCause("services",
				fmt.Errorf("service %s is listed more than once", service.Type()))
		}
		seen[service.Type()] = true
	}
	s.services = make([]AdditionalService, len(services))
	copy(s.services, services)
	return nil
}

// setCosts validates and sets the cost breakdown.
func (s *Shipment) setCosts(costs CostBreakdown) error {
	if err := costs.Validate(); err != nil {
		return err
	}
	s.costs = costs
	return nil
}

// setStatus validates and sets the status during restoration.
func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

// statusPtr returns a pointer to a copy of the given status.
func statusPtr(status Status) *Status {
	copied := status
	return &copied
}
