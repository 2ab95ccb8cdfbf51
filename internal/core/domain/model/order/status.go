package order

import (
	"shipcore/internal/pkg/errs"
)

// Status represents the lifecycle state of an order between the customer's
// initial request and its promotion to a shipment.
//
// State transitions:
//
//	AwaitingPayment ──> Paid ──> PendingApproval ──> Approved
//	        │             │             │
//	        └─────────────┴─────────────┴──> Cancelled
//
// Paid may also be approved directly: payment and approval are independent
// axes, and a "pay later" order enters the machine at PendingApproval.
// Approved and Cancelled are terminal.
//
// Status is a value object that validates state transitions against one
// canonical transition table and provides string representations for
// persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusAwaitingPayment is the initial status of a regular order.
	// The order cannot be approved until it is paid.
	StatusAwaitingPayment

	// StatusPaid indicates payment has been recorded.
	// Paid orders may request approval or be approved directly.
	StatusPaid

	// StatusPendingApproval indicates the order awaits administrator approval.
	// Pay-later orders enter the machine here.
	StatusPendingApproval

	// StatusApproved indicates the order was promoted to a shipment.
	// This is a terminal state.
	StatusApproved

	// StatusCancelled indicates the order was rejected or withdrawn.
	// This is a terminal state; orders are never physically removed.
	StatusCancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:         "Unknown",
		StatusAwaitingPayment: "AwaitingPayment",
		StatusPaid:            "Paid",
		StatusPendingApproval: "PendingApproval",
		StatusApproved:        "Approved",
		StatusCancelled:       "Cancelled",
	}
}

// getLegalTransitions returns the canonical transition table for order statuses.
// Every status change goes through this table; there is no other transition logic.
func getLegalTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusAwaitingPayment: {StatusPaid, StatusCancelled},
		StatusPaid:            {StatusPendingApproval, StatusApproved, StatusCancelled},
		StatusPendingApproval: {StatusApproved, StatusCancelled},
		StatusApproved:        {},
		StatusCancelled:       {},
	}
}

// StatusFromString parses a status from its canonical string form.
// Used when restoring orders from persistence.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("order status")
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and any other undefined values are invalid.
func (s Status) Validate() error {
	if _, ok := getLegalTransitions()[s]; !ok {
		return errs.NewValueIsInvalidError("order status")
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	next, ok := getLegalTransitions()[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether moving to target is present in the
// legal-transition table.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range getLegalTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo returns the target status when the move is legal, or an
// IllegalTransitionError leaving the caller's state untouched otherwise.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(target) {
		return StatusUnknown, errs.NewIllegalTransitionError("order", s.String(), target.String())
	}
	return target, nil
}
