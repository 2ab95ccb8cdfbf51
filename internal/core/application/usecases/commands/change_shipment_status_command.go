package commands

import (
	"errors"

	"shipcore/internal/core/domain/model/kernel"
	"shipcore/internal/core/domain/model/shipment"
	"shipcore/internal/pkg/errs"
	"shipcore/internal/pkg/guard"
)

// ErrChangeShipmentStatusCommandIsNotConstructed is returned when the command
// was not built through its constructor.
var ErrChangeShipmentStatusCommandIsNotConstructed = errors.New(
	"ChangeShipmentStatusCommand must be created via NewChangeShipmentStatusCommand constructor",
)

// ChangeShipmentStatusCommand advances a shipment along its transit graph,
// recording who requested the change and why.
type ChangeShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	newStatus  shipment.Status
	reason     string
	changedBy  string

	guard guard.ConstructorGuard
}

// NewChangeShipmentStatusCommand creates a command to change a shipment's status.
// The target status must be valid and the actor must be known.
func NewChangeShipmentStatusCommand(
	shipmentID kernel.UUID,
	newStatus shipment.Status,
	reason string,
	changedBy string,
) (ChangeShipmentStatusCommand, error) {
	cmd := ChangeShipmentStatusCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setNewStatus(newStatus),
		cmd.setChangedBy(changedBy),
	); err != nil {
		return ChangeShipmentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeShipmentStatusCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment being moved.
func (c ChangeShipmentStatusCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// NewStatus returns the target status.
func (c ChangeShipmentStatusCommand) NewStatus() shipment.Status {
	return c.newStatus
}

// Reason returns the free-form reason for the change.
func (c ChangeShipmentStatusCommand) Reason() string {
	return c.reason
}

// ChangedBy returns the acting user's id.
func (c ChangeShipmentStatusCommand) ChangedBy() string {
	return c.changedBy
}

func (c *ChangeShipmentStatusCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *ChangeShipmentStatusCommand) setNewStatus(newStatus shipment.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	c.newStatus = newStatus
	return nil
}

func (c *ChangeShipmentStatusCommand) setChangedBy(changedBy string) error {
	if changedBy == "" {
		return errs.NewValueIsRequiredError("changedBy")
	}
	c.changedBy = changedBy
	return nil
}
