package kernel

import (
	"errors"
	"fmt"

	"shipcore/internal/pkg/errs"
	"shipcore/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly initialized Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address represents a postal address inside the serviced area.
// It is an immutable value object: once attached to an order or shipment it
// never changes. Street, city and a delivery zone are required; state, zip,
// country and geographic coordinates are optional. When coordinates are
// absent, distance computations fall back to the zone-based estimate.
//
// Example:
//
//	point, _ := kernel.NewGeoPoint(40.4168, -3.7038)
//	addr, err := kernel.NewAddress("123 Main St", "Madrid", "M", "28001", "ES", kernel.ZoneCentral, &point)
//	if err != nil {
//	    // Handle validation error
//	}
type Address struct { //nolint:recvcheck //using for validation
	street  string
	city    string
	state   string
	zip     string
	country string
	zone    Zone
	geo     *GeoPoint
	guard   guard.ConstructorGuard
}

// NewAddress creates a new Address with the given fields.
// Street and city must be non-empty and the zone must be a valid address
// zone (ZoneCityWide is rejected). A nil geo point is allowed; a non-nil one
// must be properly constructed.
func NewAddress(street, city, state, zip, country string, zone Zone, geo *GeoPoint) (Address, error) {
	address := Address{
		state:   state,
		zip:     zip,
		country: country,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setStreet(street),
		address.setCity(city),
		address.setZone(zone),
		address.setGeo(geo),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// Validate checks if the Address was properly constructed using NewAddress.
// The zero value of Address is invalid and will fail this validation.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city of the address.
func (a Address) City() string {
	return a.city
}

// State returns the state or province, if any.
func (a Address) State() string {
	return a.state
}

// Zip returns the postal code, if any.
func (a Address) Zip() string {
	return a.zip
}

// Country returns the country, if any.
func (a Address) Country() string {
	return a.country
}

// Zone returns the delivery zone the address falls into.
func (a Address) Zone() Zone {
	return a.zone
}

// Geo returns the geographic coordinates of the address, or nil when the
// address was never geocoded.
func (a Address) Geo() *GeoPoint {
	return a.geo
}

// String returns a single-line human-readable representation of the address.
// This method implements the fmt.Stringer interface.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s (%s)", a.street, a.city, a.zone)
}

// IsEqual compares two addresses field by field.
// Both addresses must be properly constructed for the comparison to succeed.
func (a Address) IsEqual(other Address) (bool, error) {
	if err := errors.Join(a.Validate(), other.Validate()); err != nil {
		return false, err
	}

	if a.street != other.street || a.city != other.city || a.state != other.state ||
		a.zip != other.zip || a.country != other.country || a.zone != other.zone {
		return false, nil
	}

	if (a.geo == nil) != (other.geo == nil) {
		return false, nil
	}
	if a.geo == nil {
		return true, nil
	}
	return a.geo.IsEqual(*other.geo)
}

// setStreet sets the street line with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, to enable self-encapsulated validation during construction.
func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}

	a.street = street
	return nil
}

// setCity sets the city with validation.
func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}

	a.city = city
	return nil
}

// setZone sets the delivery zone with validation.
func (a *Address) setZone(zone Zone) error {
	if err := zone.ValidateAddressZone(); err != nil {
		return err
	}

	a.zone = zone
	return nil
}

// setGeo sets the optional geo point with validation.
func (a *Address) setGeo(geo *GeoPoint) error {
	if geo == nil {
		return nil
	}
	if err := geo.Validate(); err != nil {
		return err
	}

	point := *geo
	a.geo = &point
	return nil
}
