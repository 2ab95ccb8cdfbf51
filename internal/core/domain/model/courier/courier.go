package courier

import (
	"errors"

	"shipcore/internal/core/domain/model/kernel"
	"shipcore/internal/pkg/errs"
	"shipcore/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
	// ErrCourierNotAvailable is returned when reserving a courier that is not available.
	ErrCourierNotAvailable = errors.New("courier is not available")
	// ErrCoverageMismatch is returned when a courier's coverage does not include the target zone.
	ErrCoverageMismatch = errors.New("courier coverage does not include the destination zone")
	// ErrShipmentNotAssigned is returned when releasing a shipment the courier does not carry.
	ErrShipmentNotAssigned = errors.New("shipment is not assigned to this courier")
	// ErrCourierHasAssignments is returned when deactivating a courier that still carries shipments.
	ErrCourierHasAssignments = errors.New("courier still has assigned shipments")
)

// Courier represents a delivery agent in the system.
// It is an aggregate root that manages the agent's identity, coverage area,
// availability and the set of shipments currently assigned to them.
//
// Business rules:
//   - Courier must have a valid UUID, non-empty name and a valid coverage zone
//     (CITY_WIDE coverage serves every zone)
//   - Only an AVAILABLE courier can be reserved for a shipment
//   - Reserving moves the courier to IN_TRANSIT; releasing the last shipment
//     returns them to AVAILABLE
//   - A courier carrying shipments cannot be deactivated
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the human-readable name of the courier
	name string
	// coverage is the zone the courier serves
	coverage kernel.Zone
	// availability is the courier's current working state
	availability Availability
	// vehiclePlate references the vehicle the courier operates (nil before one is set)
	vehiclePlate *string
	// assignedShipments are the shipments currently bound to the courier
	assignedShipments []kernel.UUID
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a new Courier serving the given coverage zone.
// New couriers start AVAILABLE with no assigned shipments and no vehicle.
//
// Returns a validation error if the id, name or coverage zone is invalid.
func NewCourier(id kernel.UUID, name string, coverage kernel.Zone) (*Courier, error) {
	courier := &Courier{
		availability: AvailabilityAvailable,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setCoverage(coverage),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage.
// Unlike NewCourier it accepts the full persisted state, including the
// availability, the vehicle binding and the assigned shipments. The restored
// courier behaves identically to one created through normal domain operations.
func RestoreCourier(
	id kernel.UUID,
	name string,
	coverage kernel.Zone,
	availability Availability,
	vehiclePlate *string,
	assignedShipments []kernel.UUID,
) (*Courier, error) {
	courier := &Courier{
		vehiclePlate: vehiclePlate,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setCoverage(coverage),
		courier.setAvailability(availability),
		courier.setAssignedShipments(assignedShipments),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// Validate checks if the Courier was properly constructed using a constructor.
// The zero value of Courier is invalid and will fail this validation.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the unique identifier of the courier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the human-readable name of the courier.
func (c *Courier) Name() string {
	return c.name
}

// Coverage returns the zone the courier serves.
func (c *Courier) Coverage() kernel.Zone {
	return c.coverage
}

// Availability returns the courier's current working state.
func (c *Courier) Availability() Availability {
	return c.availability
}

// VehiclePlate returns the plate of the vehicle the courier operates,
// or nil before one is set.
func (c *Courier) VehiclePlate() *string {
	return c.vehiclePlate
}

// AssignedShipments returns a copy of the shipments currently bound to the courier.
func (c *Courier) AssignedShipments() []kernel.UUID {
	out := make([]kernel.UUID, len(c.assignedShipments))
	copy(out, c.assignedShipments)
	return out
}

// AssignedCount returns how many shipments the courier currently carries.
// The dispatcher uses this for load balancing.
func (c *Courier) AssignedCount() int {
	return len(c.assignedShipments)
}

// CanServe reports whether the courier can take a shipment bound for the
// given zone: the courier must be AVAILABLE and the zone must be inside
// their coverage.
func (c *Courier) CanServe(zone kernel.Zone) bool {
	return c.availability == AvailabilityAvailable && c.coverage.Covers(zone)
}

// Reserve binds a shipment to the courier and moves them to IN_TRANSIT.
//
// Legal only for an AVAILABLE courier whose coverage includes the
// destination zone. On failure the courier is left unchanged.
func (c *Courier) Reserve(shipmentID kernel.UUID, destinationZone kernel.Zone) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	if c.availability != AvailabilityAvailable {
		return ErrCourierNotAvailable
	}
	if !c.coverage.Covers(destinationZone) {
		return ErrCoverageMismatch
	}

	c.assignedShipments = append(c.assignedShipments, shipmentID)
	c.availability = AvailabilityInTransit
	return nil
}

// Release unbinds a shipment from the courier. When the last shipment is
// released the courier returns to AVAILABLE; an inactive courier stays
// inactive.
func (c *Courier) Release(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	for i, assigned := range c.assignedShipments {
		if assigned.IsEqual(shipmentID) {
			c.assignedShipments = append(c.assignedShipments[:i], c.assignedShipments[i+1:]...)
			if len(c.assignedShipments) == 0 && c.availability == AvailabilityInTransit {
				c.availability = AvailabilityAvailable
			}
			return nil
		}
	}

	return ErrShipmentNotAssigned
}

// SetVehicle binds the vehicle the courier operates by plate.
func (c *Courier) SetVehicle(plate string) error {
	if plate == "" {
		return errs.NewValueIsRequiredError("plate")
	}
	c.vehiclePlate = &plate
	return nil
}

// ClearVehicle unbinds the courier from their vehicle.
func (c *Courier) ClearVehicle() {
	c.vehiclePlate = nil
}

// Deactivate takes the courier off duty. Legal only when the courier
// carries no shipments.
func (c *Courier) Deactivate() error {
	if len(c.assignedShipments) > 0 {
		return ErrCourierHasAssignments
	}
	c.availability = AvailabilityInactive
	return nil
}

// Activate puts an inactive courier back on duty as AVAILABLE.
func (c *Courier) Activate() {
	if c.availability == AvailabilityInactive {
		c.availability = AvailabilityAvailable
	}
}

// setID sets the courier's unique identifier with validation.
// This is an internal setter used during courier construction.
func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

// setName sets the courier's name with validation.
func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

// setCoverage sets the coverage zone with validation. CITY_WIDE is a legal
// coverage value even though it is not a legal address zone.
func (c *Courier) setCoverage(coverage kernel.Zone) error {
	if err := coverage.Validate(); err != nil {
		return err
	}
	c.coverage = coverage
	return nil
}

// setAvailability sets the working state during restoration.
func (c *Courier) setAvailability(availability Availability) error {
	if err := availability.Validate(); err != nil {
		return err
	}
	c.availability = availability
	return nil
}

// setAssignedShipments sets the assigned shipment list during restoration.
func (c *Courier) setAssignedShipments(assignedShipments []kernel.UUID) error {
	for _, shipmentID := range assignedShipments {
		if err := shipmentID.Validate(); err != nil {
			return err
		}
	}
	c.assignedShipments = make([]kernel.UUID, len(assignedShipments))
	copy(c.assignedShipments, assignedShipments)
	return nil
}
