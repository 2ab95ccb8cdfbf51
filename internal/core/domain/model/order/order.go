package order

import (
	"errors"
	"time"

	"shipcore/internal/core/domain/model/kernel"
	"shipcore/internal/pkg/errs"
	"shipcore/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// ErrShipmentAlreadyCreated is returned when approval would produce a second
// shipment for the same order. Exactly one shipment exists per approval.
var ErrShipmentAlreadyCreated = errors.New("order already has a shipment")

// Order represents a customer's shipping request before it becomes an
// operational shipment. It is the aggregate root that manages the order
// lifecycle from creation through payment and approval to promotion.
//
// Order follows these invariants:
//   - Must have valid identifiers and validated origin/destination addresses
//   - Status transitions follow the canonical table in Status
//   - Transitions to Approved happen at most once, and stamp exactly one shipment ID
//   - Cancelled orders are kept forever; there is no physical deletion
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// userID identifies the customer who created the order
	userID kernel.UUID

	// origin is the pickup address
	origin kernel.Address

	// destination is the delivery address
	destination kernel.Address

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is the creation timestamp
	createdAt time.Time

	// shipmentID references the shipment created on approval (nil before)
	shipmentID *kernel.UUID

	// paymentID references the recorded payment (nil until paid)
	paymentID *string

	// invoiceID references the invoice issued on approval (nil before)
	invoiceID *string

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order for the given customer and route.
// Regular orders start in AwaitingPayment; when payLater is true the order
// enters the machine at PendingApproval (payment and approval are
// independent axes, so both entry points are legal).
//
// Returns a validation error if any identifier or address is invalid.
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	origin kernel.Address,
	destination kernel.Address,
	createdAt time.Time,
	payLater bool,
) (*Order, error) {
	status := StatusAwaitingPayment
	if payLater {
		status = StatusPendingApproval
	}

	order := &Order{
		status:    status,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setUserID(userID),
		order.setOrigin(origin),
		order.setDestination(destination),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder it accepts the full persisted state, including the
// shipment, payment and invoice references. The restored order behaves
// identically to one created through normal domain operations.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	origin kernel.Address,
	destination kernel.Address,
	status Status,
	createdAt time.Time,
	shipmentID *kernel.UUID,
	paymentID *string,
	invoiceID *string,
) (*Order, error) {
	order := &Order{
		createdAt:  createdAt,
		paymentID:  paymentID,
		invoiceID:  invoiceID,
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setUserID(userID),
		order.setOrigin(origin),
		order.setDestination(destination),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	if shipmentID != nil {
		if err := shipmentID.Validate(); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the identifier of the customer who owns the order.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Origin returns the pickup address.
func (o *Order) Origin() kernel.Address {
	return o.origin
}

// Destination returns the delivery address.
func (o *Order) Destination() kernel.Address {
	return o.destination
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ShipmentID returns the identifier of the shipment created on approval.
// Returns nil while the order is not approved.
func (o *Order) ShipmentID() *kernel.UUID {
	return o.shipmentID
}

// PaymentID returns the recorded payment reference, or nil while unpaid.
func (o *Order) PaymentID() *string {
	return o.paymentID
}

// InvoiceID returns the invoice reference issued at approval, or nil before.
func (o *Order) InvoiceID() *string {
	return o.invoiceID
}

// MarkPaid records a payment against the order and moves it to Paid.
//
// Legal only from AwaitingPayment. The payment reference must be non-empty.
func (o *Order) MarkPaid(paymentID string) error {
	if paymentID == "" {
		return errs.NewValueIsRequiredError("paymentID")
	}

	newStatus, err := o.status.TransitionTo(StatusPaid)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.paymentID = &paymentID
	return nil
}

// RequestApproval moves a paid order into the administrator approval queue.
//
// Legal only from Paid. Pay-later orders are already in PendingApproval and
// never call this.
func (o *Order) RequestApproval() error {
	newStatus, err := o.status.TransitionTo(StatusPendingApproval)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Approve promotes the order, stamping the shipment created for it and the
// invoice issued at approval time.
//
// Legal from Paid or PendingApproval. Approving from AwaitingPayment fails
// with an IllegalTransitionError (payment is required first), as does
// approving an already terminal order - which guarantees at most one
// shipment ever exists per order.
func (o *Order) Approve(shipmentID kernel.UUID, invoiceID string) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	if invoiceID == "" {
		return errs.NewValueIsRequiredError("invoiceID")
	}
	if o.shipmentID != nil {
		return errs.NewIllegalTransitionErrorWithCause(
			"order", o.status.String(), StatusApproved.String(), ErrShipmentAlreadyCreated)
	}

	newStatus, err := o.status.TransitionTo(StatusApproved)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.shipmentID = &shipmentID
	o.invoiceID = &invoiceID
	return nil
}

// Cancel rejects or withdraws the order. Legal from any non-terminal state;
// no shipment is ever created for a cancelled order.
func (o *Order) Cancel() error {
	newStatus, err := o.status.TransitionTo(StatusCancelled)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setUserID validates and sets the owning customer's identifier.
func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("userID", err)
	}
	o.userID = userID
	return nil
}

// setOrigin validates and sets the pickup address.
func (o *Order) setOrigin(origin kernel.Address) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	o.origin = origin
	return nil
}

// setDestination validates and sets the delivery address.
func (o *Order) setDestination(destination kernel.Address) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	o.destination = destination
	return nil
}

// setStatus validates and sets the status during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
