package commands

import (
	"errors"

	"shipcore/internal/core/domain/model/kernel"
	"shipcore/internal/core/domain/model/shipment"
	"shipcore/internal/pkg/errs"
	"shipcore/internal/pkg/guard"
)

// ErrRegisterIncidentCommandIsNotConstructed is returned when the command
// was not built through its constructor.
var ErrRegisterIncidentCommandIsNotConstructed = errors.New(
	"RegisterIncidentCommand must be created via NewRegisterIncidentCommand constructor",
)

// RegisterIncidentCommand records an exception against a shipment without
// forcing a status transition.
type RegisterIncidentCommand struct { //nolint:recvcheck //using for validation
	shipmentID   kernel.UUID
	incidentType shipment.IncidentType
	description  string
	changedBy    string

	guard guard.ConstructorGuard
}

// NewRegisterIncidentCommand creates a command to register an incident.
// The description must be non-empty.
func NewRegisterIncidentCommand(
	shipmentID kernel.UUID,
	incidentType shipment.IncidentType,
	description string,
	changedBy string,
) (RegisterIncidentCommand, error) {
	cmd := RegisterIncidentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setIncidentType(incidentType),
		cmd.setDescription(description),
		cmd.setChangedBy(changedBy),
	); err != nil {
		return RegisterIncidentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterIncidentCommand) Validate() error {
	return c.guard.Validate(ErrRegisterIncidentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the affected shipment.
func (c RegisterIncidentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// IncidentType returns the incident classification.
func (c RegisterIncidentCommand) IncidentType() shipment.IncidentType {
	return c.incidentType
}

// Description returns the operator-supplied description.
func (c RegisterIncidentCommand) Description() string {
	return c.description
}

// ChangedBy returns the acting user's id.
func (c RegisterIncidentCommand) ChangedBy() string {
	return c.changedBy
}

func (c *RegisterIncidentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *RegisterIncidentCommand) setIncidentType(incidentType shipment.IncidentType) error {
	if err := incidentType.Validate(); err != nil {
		return err
	}
	c.incidentType = incidentType
	return nil
}

func (c *RegisterIncidentCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	c.description = description
	return nil
}

func (c *RegisterIncidentCommand) setChangedBy(changedBy string) error {
	if changedBy == "" {
		return errs.NewValueIsRequiredError("changedBy")
	}
	c.changedBy = changedBy
	return nil
}
