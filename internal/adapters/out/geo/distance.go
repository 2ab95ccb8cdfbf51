// Package geo computes the distance between shipment addresses. When both
// addresses carry coordinates the great-circle distance is used; otherwise
// the distance is estimated from the delivery zones.
package geo

import (
	"math"

	"shipcore/internal/core/domain/model/kernel"
	"shipcore/internal/core/domain/services"
)

const earthRadiusKm = 6371.0

// Zone-based estimates when one of the addresses has no coordinates.
const (
	sameZoneKm    = 6
	centralZoneKm = 12
	crossCityKm   = 18
)

// HaversineCalculator implements DistanceCalculator on address coordinates,
// falling back to a zone estimate for addresses that were never geocoded.
type HaversineCalculator struct{}

// NewHaversineCalculator creates a distance calculator.
func NewHaversineCalculator() HaversineCalculator {
	return HaversineCalculator{}
}

// DistanceKm returns the distance in kilometers between two addresses.
// Returns ErrGeocodingUnavailable when neither the coordinates nor the zones
// allow an estimate.
func (c HaversineCalculator) DistanceKm(origin, destination kernel.Address) (float64, error) {
	if origin.Geo() != nil && destination.Geo() != nil {
		return haversineKm(*origin.Geo(), *destination.Geo()), nil
	}
	return zoneEstimateKm(origin.Zone(), destination.Zone())
}

// haversineKm computes the great-circle distance between two points.
func haversineKm(from, to kernel.GeoPoint) float64 {
	lat1 := from.Latitude() * math.Pi / 180
	lat2 := to.Latitude() * math.Pi / 180
	dLat := lat2 - lat1
	dLon := (to.Longitude() - from.Longitude()) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// zoneEstimateKm estimates the distance from the delivery zones alone:
// deliveries inside one zone are short, routes through the central zone are
// medium, everything else crosses the city.
func zoneEstimateKm(origin, destination kernel.Zone) (float64, error) {
	if origin.ValidateAddressZone() != nil || destination.ValidateAddressZone() != nil {
		return 0, services.ErrGeocodingUnavailable
	}

	switch {
	case origin == destination:
		return sameZoneKm, nil
	case origin == kernel.ZoneCentral || destination == kernel.ZoneCentral:
		return centralZoneKm, nil
	default:
		return crossCityKm, nil
	}
}
