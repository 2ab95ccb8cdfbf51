package courier

import (
	"shipcore/internal/pkg/errs"
)

// Availability represents the working state of a courier.
type Availability int

const (
	// AvailabilityUnknown represents an invalid or undefined availability.
	AvailabilityUnknown Availability = iota

	// AvailabilityAvailable means the courier can take new shipments.
	AvailabilityAvailable

	// AvailabilityInTransit means the courier is out delivering and cannot
	// take new shipments until released.
	AvailabilityInTransit

	// AvailabilityInactive means the courier is off duty.
	AvailabilityInactive
)

// getAvailabilityStrings returns a map of Availability values to their string representations.
func getAvailabilityStrings() map[Availability]string {
	return map[Availability]string{
		AvailabilityUnknown:   "UNKNOWN",
		AvailabilityAvailable: "AVAILABLE",
		AvailabilityInTransit: "IN_TRANSIT",
		AvailabilityInactive:  "INACTIVE",
	}
}

// AvailabilityFromString parses an availability from its canonical string form.
func AvailabilityFromString(s string) (Availability, error) {
	for availability, str := range getAvailabilityStrings() {
		if str == s && availability != AvailabilityUnknown {
			return availability, nil
		}
	}
	return AvailabilityUnknown, errs.NewValueIsInvalidError("availability")
}

// Validate checks if the Availability value is valid.
func (a Availability) Validate() error {
	if _, ok := getAvailabilityStrings()[a]; !ok || a == AvailabilityUnknown {
		return errs.NewValueIsInvalidError("availability")
	}
	return nil
}

// String returns the canonical name of the availability.
// This method implements the fmt.Stringer interface.
func (a Availability) String() string {
	if str, ok := getAvailabilityStrings()[a]; ok {
		return str
	}
	return "UNKNOWN"
}
