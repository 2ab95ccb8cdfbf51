package commands

import (
	"errors"
	"time"

	"shipcore/internal/core/domain/model/kernel"
	"shipcore/internal/core/domain/model/shipment"
	"shipcore/internal/pkg/errs"
	"shipcore/internal/pkg/guard"
)

// ErrApproveOrderCommandIsNotConstructed is returned when the command was
// not built through its constructor.
var ErrApproveOrderCommandIsNotConstructed = errors.New(
	"ApproveOrderCommand must be created via NewApproveOrderCommand constructor",
)

// ApproveOrderCommand promotes a paid or pending-approval order into an
// operational shipment. It carries the parcel profile the shipment is priced
// and created with.
type ApproveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	pack         shipment.Package
	priority     int
	serviceTypes []shipment.ServiceType
	pickupAt     time.Time

	guard guard.ConstructorGuard
}

// NewApproveOrderCommand creates a command to approve an order.
// Validates the package, the priority range and every requested service type.
func NewApproveOrderCommand(
	orderID kernel.UUID,
	pack shipment.Package,
	priority int,
	serviceTypes []shipment.ServiceType,
	pickupAt time.Time,
) (ApproveOrderCommand, error) {
	cmd := ApproveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPackage(pack),
		cmd.setPriority(priority),
		cmd.setServiceTypes(serviceTypes),
		cmd.setPickupAt(pickupAt),
	); err != nil {
		return ApproveOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being approved.
func (c ApproveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Package returns the parcel profile for the shipment.
func (c ApproveOrderCommand) Package() shipment.Package {
	return c.pack
}

// Priority returns the urgency level for the shipment.
func (c ApproveOrderCommand) Priority() int {
	return c.priority
}

// ServiceTypes returns the requested add-on services.
func (c ApproveOrderCommand) ServiceTypes() []shipment.ServiceType {
	types := make([]shipment.ServiceType, len(c.serviceTypes))
	copy(types, c.serviceTypes)
	return types
}

// PickupAt returns the requested pickup time.
func (c ApproveOrderCommand) PickupAt() time.Time {
	return c.pickupAt
}

func (c *ApproveOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ApproveOrderCommand) setPackage(pack shipment.Package) error {
	if err := pack.Validate(); err != nil {
		return err
	}
	c.pack = pack
	return nil
}

func (c *ApproveOrderCommand) setPriority(priority int) error {
	if priority < shipment.MinPriority || priority > shipment.MaxPriority {
		return errs.NewValueIsOutOfRangeError(
			"priority", priority, shipment.MinPriority, shipment.MaxPriority)
	}
	c.priority = priority
	return nil
}

func (c *ApproveOrderCommand) setServiceTypes(serviceTypes []shipment.ServiceType) error {
	for _, serviceType := range serviceTypes {
		if err := serviceType.Validate(); err != nil {
			return err
		}
	}
	c.serviceTypes = make([]shipment.ServiceType, len(serviceTypes))
	copy(c.serviceTypes, serviceTypes)
	return nil
}

func (c *ApproveOrderCommand) setPickupAt(pickupAt time.Time) error {
	if pickupAt.IsZero() {
		return errs.NewValueIsRequiredError("pickupAt")
	}
	c.pickupAt = pickupAt
	return nil
}
