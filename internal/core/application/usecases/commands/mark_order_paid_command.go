package commands

import (
	"errors"

	"shipcore/internal/core/domain/model/kernel"
	"shipcore/internal/pkg/errs"
	"shipcore/internal/pkg/guard"
)

// ErrMarkOrderPaidCommandIsNotConstructed is returned when the command was
// not built through its constructor.
var ErrMarkOrderPaidCommandIsNotConstructed = errors.New(
	"MarkOrderPaidCommand must be created via NewMarkOrderPaidCommand constructor",
)

// MarkOrderPaidCommand records a successful payment against an order.
type MarkOrderPaidCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	paymentID string

	guard guard.ConstructorGuard
}

// NewMarkOrderPaidCommand creates a command to record a payment.
// The payment reference must be non-empty.
func NewMarkOrderPaidCommand(orderID kernel.UUID, paymentID string) (MarkOrderPaidCommand, error) {
	cmd := MarkOrderPaidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPaymentID(paymentID),
	); err != nil {
		return MarkOrderPaidCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderPaidCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being paid.
func (c MarkOrderPaidCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PaymentID returns the external payment reference.
func (c MarkOrderPaidCommand) PaymentID() string {
	return c.paymentID
}

func (c *MarkOrderPaidCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *MarkOrderPaidCommand) setPaymentID(paymentID string) error {
	if paymentID == "" {
		return errs.NewValueIsRequiredError("paymentID")
	}
	c.paymentID = paymentID
	return nil
}
