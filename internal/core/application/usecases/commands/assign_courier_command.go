package commands

import (
	"errors"

	"shipcore/internal/core/domain/model/kernel"
	"shipcore/internal/pkg/errs"
	"shipcore/internal/pkg/guard"
)

// ErrAssignCourierCommandIsNotConstructed is returned when the command was
// not built through its constructor.
var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand manually binds a chosen courier to a pending
// shipment.
type AssignCourierCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	courierID  kernel.UUID
	changedBy  string

	guard guard.ConstructorGuard
}

// NewAssignCourierCommand creates a command to manually assign a courier.
func NewAssignCourierCommand(
	shipmentID kernel.UUID,
	courierID kernel.UUID,
	changedBy string,
) (AssignCourierCommand, error) {
	cmd := AssignCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setCourierID(courierID),
		cmd.setChangedBy(changedBy),
	); err != nil {
		return AssignCourierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to assign.
func (c AssignCourierCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// CourierID returns the identifier of the chosen courier.
func (c AssignCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// ChangedBy returns the acting user's id.
func (c AssignCourierCommand) ChangedBy() string {
	return c.changedBy
}

func (c *AssignCourierCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *AssignCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	c.courierID = courierID
	return nil
}

func (c *AssignCourierCommand) setChangedBy(changedBy string) error {
	if changedBy == "" {
		return errs.NewValueIsRequiredError("changedBy")
	}
	c.changedBy = changedBy
	return nil
}
