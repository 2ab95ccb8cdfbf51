package shipment

import (
	"shipcore/internal/pkg/errs"
)

// Status represents the transit state of a shipment.
//
// State transitions, in delivery order:
//
//	PendingAssignment ──> ReadyForPickup ──> InTransit ──> OutForDelivery ──> Delivered
//	        │                   │               │                │
//	        │                   │               └────┬───────────┘
//	        └───────┬───────────┘                    v
//	                v                             Returned
//	            Cancelled
//
// Cancellation is only possible before the shipment is moving; once in
// transit the exception path is Returned. Delivered, Returned and Cancelled
// are terminal.
//
// All status logic goes through one canonical transition table; there are no
// scattered switch statements deciding legality elsewhere.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPendingAssignment is the initial status: the shipment exists but
	// no courier has been bound to it yet.
	StatusPendingAssignment

	// StatusReadyForPickup indicates a courier is assigned and the parcel
	// awaits physical pickup.
	StatusReadyForPickup

	// StatusInTransit indicates the parcel is moving through the network.
	StatusInTransit

	// StatusOutForDelivery indicates the courier is on the final leg.
	StatusOutForDelivery

	// StatusDelivered indicates successful delivery. Terminal.
	StatusDelivered

	// StatusReturned indicates the parcel went back to the origin after an
	// exception while moving. Terminal.
	StatusReturned

	// StatusCancelled indicates the shipment was called off before it
	// started moving. Terminal.
	StatusCancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:           "Unknown",
		StatusPendingAssignment: "PendingAssignment",
		StatusReadyForPickup:    "ReadyForPickup",
		StatusInTransit:         "InTransit",
		StatusOutForDelivery:    "OutForDelivery",
		StatusDelivered:         "Delivered",
		StatusReturned:          "Returned",
		StatusCancelled:         "Cancelled",
	}
}

// getLegalTransitions returns the canonical transition table for shipment
// statuses. Every status change is checked against this table and nothing else.
func getLegalTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPendingAssignment: {StatusReadyForPickup, StatusCancelled},
		StatusReadyForPickup:    {StatusInTransit, StatusCancelled},
		StatusInTransit:         {StatusOutForDelivery, StatusReturned},
		StatusOutForDelivery:    {StatusDelivered, StatusReturned},
		StatusDelivered:         {},
		StatusReturned:          {},
		StatusCancelled:         {},
	}
}

// StatusFromString parses a status from its canonical string form.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("shipment status")
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and any other undefined values are invalid.
func (s Status) Validate() error {
	if _, ok := getLegalTransitions()[s]; !ok {
		return errs.NewValueIsInvalidError("shipment status")
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

// RequiresCourier reports whether a shipment in this status must have a
// courier bound to it. The invariant is a biconditional: the courier
// reference is set exactly in these statuses.
func (s Status) RequiresCourier() bool {
	switch s {
	case StatusReadyForPickup, StatusInTransit, StatusOutForDelivery, StatusDelivered, StatusReturned:
		return true
	default:
		return false
	}
}

// FreesResources reports whether entering this status releases the courier's
// availability and the assigned vehicle back to the pool.
func (s Status) FreesResources() bool {
	return s == StatusDelivered || s == StatusReturned || s == StatusCancelled
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
		return StatusUnknown, errs.NewIllegalTransitionError("shipment", s.String(), target.String())
	}
	return target, nil
}
