package shipment

import (
	"fmt"
	"time"

	"shipcore/internal/pkg/errs"
)

// IncidentType classifies what went wrong with a shipment in flight.
type IncidentType int

const (
	// IncidentUnknown represents an invalid or undefined incident type.
	IncidentUnknown IncidentType = iota

	// IncidentDamage marks physical damage to the parcel.
	IncidentDamage

	// IncidentLoss marks a lost parcel.
	IncidentLoss

	// IncidentDelay marks a delivery running late.
	IncidentDelay

	// IncidentAddressIssue marks an unreachable or wrong destination.
	IncidentAddressIssue
)

// getIncidentTypeStrings returns a map of IncidentType values to their string representations.
func getIncidentTypeStrings() map[IncidentType]string {
	return map[IncidentType]string{
		IncidentUnknown:      "UNKNOWN",
		IncidentDamage:       "DAMAGE",
		IncidentLoss:         "LOSS",
		IncidentDelay:        "DELAY",
		IncidentAddressIssue: "ADDRESS_ISSUE",
	}
}

// IncidentTypeFromString parses an incident type from its canonical string form.
func IncidentTypeFromString(s string) (IncidentType, error) {
	for incidentType, str := range getIncidentTypeStrings() {
		if str == s && incidentType != IncidentUnknown {
			return incidentType, nil
		}
	}
	return IncidentUnknown, errs.NewValueIsInvalidErrorWithCause("incident type",
		fmt.Errorf("%q is not a valid incident type", s))
}

// Validate checks if the IncidentType value is valid.
func (t IncidentType) Validate() error {
	if _, ok := getIncidentTypeStrings()[t]; !ok || t == IncidentUnknown {
		return errs.NewValueIsInvalidErrorWithCause("incident type",
			fmt.Errorf("%d is not a valid incident type", t))
	}
	return nil
}

// String returns the canonical name of the incident type.
// This method implements the fmt.Stringer interface.
func (t IncidentType) String() string {
	if str, ok := getIncidentTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// Incident records an exception that happened to a shipment. Registering an
// incident is independent of the status graph: it never forces a transition
// by itself, the operator separately decides whether to return the parcel.
type Incident struct {
	incidentType     IncidentType
	description      string
	registrationDate time.Time
}

// NewIncident creates an Incident with a non-empty description.
func NewIncident(incidentType IncidentType, description string, registrationDate time.Time) (Incident, error) {
	if err := incidentType.Validate(); err != nil {
		return Incident{}, err
	}
	if description == "" {
		return Incident{}, errs.NewValueIsRequiredError("description")
	}
	if registrationDate.IsZero() {
		return Incident{}, errs.NewValueIsRequiredError("registrationDate")
	}

	return Incident{
		incidentType:     incidentType,
		description:      description,
		registrationDate: registrationDate,
	}, nil
}

// Type returns the incident classification.
func (i Incident) Type() IncidentType {
	return i.incidentType
}

// Description returns the operator-supplied description.
func (i Incident) Description() string {
	return i.description
}

// RegistrationDate returns when the incident was recorded.
func (i Incident) RegistrationDate() time.Time {
	return i.registrationDate
}
