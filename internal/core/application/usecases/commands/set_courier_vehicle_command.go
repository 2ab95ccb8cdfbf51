package commands

import (
	"errors"

	"shipcore/internal/core/domain/model/kernel"
	"shipcore/internal/pkg/guard"
)

// ErrSetCourierVehicleCommandIsNotConstructed is returned when the command
// was not built through its constructor.
var ErrSetCourierVehicleCommandIsNotConstructed = errors.New(
	"SetCourierVehicleCommand must be created via NewSetCourierVehicleCommand constructor",
)

// SetCourierVehicleCommand binds a vehicle to a courier, or clears the
// binding when the plate is empty.
type SetCourierVehicleCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	plate     string

	guard guard.ConstructorGuard
}

// NewSetCourierVehicleCommand creates a command to change a courier's
// vehicle. An empty plate clears the current binding.
func NewSetCourierVehicleCommand(courierID kernel.UUID, plate string) (SetCourierVehicleCommand, error) {
	cmd := SetCourierVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCourierID(courierID); err != nil {
		return SetCourierVehicleCommand{}, err
	}
	cmd.plate = plate

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCourierVehicleCommand) Validate() error {
	return c.guard.Validate(ErrSetCourierVehicleCommandIsNotConstructed)
}

// CourierID returns the identifier of the courier.
func (c SetCourierVehicleCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Plate returns the vehicle plate, empty when clearing the binding.
func (c SetCourierVehicleCommand) Plate() string {
	return c.plate
}

func (c *SetCourierVehicleCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	c.courierID = courierID
	return nil
}
