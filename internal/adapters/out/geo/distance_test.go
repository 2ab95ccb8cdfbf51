package geo_test

import (
	"testing"

	"shipcore/internal/adapters/out/geo"
	"shipcore/internal/core/domain/model/kernel"
	"shipcore/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geoAddress(t *testing.T, zone kernel.Zone, point *kernel.GeoPoint) kernel.Address {
	t.Helper()
	address, err := kernel.NewAddress("12 Harbor Rd", "Porto", "PT", "4000-001", "Portugal", zone, point)
	require.NoError(t, err)
	return address
}

func geoPoint(t *testing.T, lat, lon float64) *kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	return &point
}

func TestHaversineCalculator_DistanceKm_Coordinates(t *testing.T) {
	calculator := geo.NewHaversineCalculator()

	// Porto to Lisbon, roughly 274 km great-circle
	origin := geoAddress(t, kernel.ZoneNorth, geoPoint(t, 41.1579, -8.6291))
	destination := geoAddress(t, kernel.ZoneSouth, geoPoint(t, 38.7223, -9.1393))

	km, err := calculator.DistanceKm(origin, destination)

	require.NoError(t, err)
	assert.InDelta(t, 274, km, 5)
}

func TestHaversineCalculator_DistanceKm_SamePoint(t *testing.T) {
	calculator := geo.NewHaversineCalculator()
	address := geoAddress(t, kernel.ZoneNorth, geoPoint(t, 41.1579, -8.6291))

	km, err := calculator.DistanceKm(address, address)

	require.NoError(t, err)
	assert.InDelta(t, 0, km, 1e-9)
}

func TestHaversineCalculator_DistanceKm_ZoneEstimate(t *testing.T) {
	calculator := geo.NewHaversineCalculator()

	tests := []struct {
		name        string
		origin      kernel.Zone
		destination kernel.Zone
		expectedKm  float64
	}{
		{"same zone", kernel.ZoneNorth, kernel.ZoneNorth, 6},
		{"through central", kernel.ZoneCentral, kernel.ZoneNorth, 12},
		{"into central", kernel.ZoneSouth, kernel.ZoneCentral, 12},
		{"across the city", kernel.ZoneNorth, kernel.ZoneSouth, 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			km, err := calculator.DistanceKm(
				geoAddress(t, tt.origin, nil), geoAddress(t, tt.destination, nil))

			require.NoError(t, err)
			assert.InDelta(t, tt.expectedKm, km, 1e-9)
		})
	}
}

func TestHaversineCalculator_DistanceKm_OneGeocodedAddressFallsBack(t *testing.T) {
	calculator := geo.NewHaversineCalculator()

	origin := geoAddress(t, kernel.ZoneNorth, geoPoint(t, 41.1579, -8.6291))
	destination := geoAddress(t, kernel.ZoneSouth, nil)

	km, err := calculator.DistanceKm(origin, destination)

	require.NoError(t, err)
	assert.InDelta(t, 18, km, 1e-9)
}

func TestHaversineCalculator_DistanceKm_NoZoneIsUnavailable(t *testing.T) {
	calculator := geo.NewHaversineCalculator()

	_, err := calculator.DistanceKm(geoAddress(t, kernel.ZoneNorth, nil), kernel.Address{})

	require.ErrorIs(t, err, services.ErrGeocodingUnavailable)
}
