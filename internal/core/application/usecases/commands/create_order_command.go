package commands

import (
	"errors"

	"shipcore/internal/core/domain/model/kernel"
	"shipcore/internal/pkg/guard"
)

// ErrCreateOrderCommandIsNotConstructed is returned when the command was not
// built through its constructor.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a customer's request to open a new shipping
// order between two addresses. Pay-later orders skip the payment step and
// enter the lifecycle in the approval queue.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	userID      kernel.UUID
	origin      kernel.Address
	destination kernel.Address
	payLater    bool

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates identifiers and both addresses.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	origin kernel.Address,
	destination kernel.Address,
	payLater bool,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		payLater: payLater,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setOrigin(origin),
		cmd.setDestination(destination),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the identifier of the requesting customer.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// Origin returns the pickup address.
func (c CreateOrderCommand) Origin() kernel.Address {
	return c.origin
}

// Destination returns the delivery address.
func (c CreateOrderCommand) Destination() kernel.Address {
	return c.destination
}

// PayLater reports whether the order skips the payment step.
func (c CreateOrderCommand) PayLater() bool {
	return c.payLater
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setOrigin(origin kernel.Address) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	c.origin = origin
	return nil
}

func (c *CreateOrderCommand) setDestination(destination kernel.Address) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	c.destination = destination
	return nil
}
