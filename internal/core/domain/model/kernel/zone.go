package kernel

import (
	"fmt"

	"shipcore/internal/pkg/errs"
)

// Zone represents a geographic delivery zone the operator services.
// Zones drive two concerns: the flat distance estimate used when addresses
// carry no coordinates, and the coverage areas of delivery couriers.
//
// ZoneCityWide is a coverage-only value: a courier covering it serves every
// zone, but an address can never be located "city wide".
type Zone int

const (
	// ZoneUnknown represents an invalid or undefined zone.
	// This value (0) helps catch uninitialized Zone values.
	ZoneUnknown Zone = iota

	// ZoneNorth is the northern delivery zone.
	ZoneNorth

	// ZoneSouth is the southern delivery zone.
	ZoneSouth

	// ZoneEast is the eastern delivery zone.
	ZoneEast

	// ZoneWest is the western delivery zone.
	ZoneWest

	// ZoneCentral is the central delivery zone.
	ZoneCentral

	// ZoneCityWide is the universal coverage area. Couriers covering it are
	// eligible for shipments into any zone; addresses cannot use it.
	ZoneCityWide
)

// getZoneStrings returns a map of Zone values to their string representations.
func getZoneStrings() map[Zone]string {
	return map[Zone]string{
		ZoneUnknown:  "UNKNOWN",
		ZoneNorth:    "NORTH",
		ZoneSouth:    "SOUTH",
		ZoneEast:     "EAST",
		ZoneWest:     "WEST",
		ZoneCentral:  "CENTRAL",
		ZoneCityWide: "CITY_WIDE",
	}
}

// ZoneFromString parses a zone from its canonical string form.
// Returns an error for unrecognized values.
func ZoneFromString(s string) (Zone, error) {
	for zone, str := range getZoneStrings() {
		if str == s && zone != ZoneUnknown {
			return zone, nil
		}
	}
	return ZoneUnknown, errs.NewValueIsInvalidErrorWithCause("zone", fmt.Errorf("%q is not a valid zone", s))
}

// Validate checks if the Zone value is a defined zone (address or coverage).
// ZoneUnknown and out-of-range values are invalid.
func (z Zone) Validate() error {
	if _, ok := getZoneStrings()[z]; !ok || z == ZoneUnknown {
		return errs.NewValueIsInvalidErrorWithCause("zone", fmt.Errorf("%d is not a valid zone", z))
	}
	return nil
}

// ValidateAddressZone checks if the Zone can be attached to an address.
// ZoneCityWide is coverage-only and is rejected here.
func (z Zone) ValidateAddressZone() error {
	if err := z.Validate(); err != nil {
		return err
	}
	if z == ZoneCityWide {
		return errs.NewValueIsInvalidErrorWithCause("zone",
			fmt.Errorf("%s is a coverage area, not an address zone", z.String()))
	}
	return nil
}

// Covers reports whether a courier covering z may deliver into the target zone.
// ZoneCityWide covers every zone; any other zone covers only itself.
func (z Zone) Covers(target Zone) bool {
	if z == ZoneCityWide {
		return true
	}
	return z == target
}

// String returns the canonical name of the zone.
// This method implements the fmt.Stringer interface and is safe
// to call on any Zone value, including invalid ones.
func (z Zone) String() string {
	if str, ok := getZoneStrings()[z]; ok {
		return str
	}
	return "UNKNOWN"
}
