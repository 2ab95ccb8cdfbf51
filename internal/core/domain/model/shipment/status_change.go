package shipment

import (
	"time"

	"shipcore/internal/pkg/errs"
)

// SystemActor is the changedBy value recorded when the engine itself, rather
// than a human operator, performs a status change.
const SystemActor = "SYSTEM"

// StatusChange is one entry in a shipment's append-only audit log. The first
// entry of a shipment has a nil previous status; subsequent entries always
// record the status the shipment left. Entries are chronologically
// non-decreasing.
type StatusChange struct {
	previous  *Status
	next      Status
	changedAt time.Time
	changedBy string
	reason    string
}

// NewStatusChange creates an audit log entry. previous is nil only for the
// entry written when the shipment is created.
func NewStatusChange(previous *Status, next Status, changedAt time.Time, changedBy, reason string) (StatusChange, error) {
	if err := next.Validate(); err != nil {
		return StatusChange{}, err
	}
	if previous != nil {
		if err := previous.Validate(); err != nil {
			return StatusChange{}, err
		}
	}
	if changedBy == "" {
		return StatusChange{}, errs.NewValueIsRequiredError("changedBy")
	}
	if changedAt.IsZero() {
		return StatusChange{}, errs.NewValueIsRequiredError("changedAt")
	}

	return StatusChange{
		previous:  previous,
		next:      next,
		changedAt: changedAt,
		changedBy: changedBy,
		reason:    reason,
	}, nil
}

// Previous returns the status the shipment left, or nil for the first entry.
func (c StatusChange) Previous() *Status {
	return c.previous
}

// Next returns the status the shipment entered.
func (c StatusChange) Next() Status {
	return c.next
}

// ChangedAt returns when the change happened.
func (c StatusChange) ChangedAt() time.Time {
	return c.changedAt
}

// ChangedBy returns the actor id that performed the change, or SystemActor.
func (c StatusChange) ChangedBy() string {
	return c.changedBy
}

// Reason returns the free-form reason supplied with the change.
func (c StatusChange) Reason() string {
	return c.reason
}
