package commands

import (
	"errors"

	"shipcore/internal/pkg/guard"
)

// ErrAutoAssignCouriersCommandIsNotConstructed is returned when the command
// was not built through its constructor.
var ErrAutoAssignCouriersCommandIsNotConstructed = errors.New(
	"AutoAssignCouriersCommand must be created via NewAutoAssignCouriersCommand constructor",
)

// AutoAssignCouriersCommand sweeps pending shipments and matches them to
// available couriers. It carries no parameters beyond its construction guard.
type AutoAssignCouriersCommand struct {
	guard guard.ConstructorGuard
}

// NewAutoAssignCouriersCommand creates a command to run an assignment sweep.
func NewAutoAssignCouriersCommand() (AutoAssignCouriersCommand, error) {
	return AutoAssignCouriersCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AutoAssignCouriersCommand) Validate() error {
	return c.guard.Validate(ErrAutoAssignCouriersCommandIsNotConstructed)
}
