package courier_test

import (
	"testing"

	"shipcore/internal/core/domain/model/courier"
	"shipcore/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCourier(t *testing.T, coverage kernel.Zone) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewUUID(), "Alice", coverage)
	require.NoError(t, err)
	return c
}

func TestNewCourier(t *testing.T) {
	t.Run("should create available courier", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := courier.NewCourier(id, "Alice", kernel.ZoneNorth)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "Alice", c.Name())
		assert.Equal(t, kernel.ZoneNorth, c.Coverage())
		assert.Equal(t, courier.AvailabilityAvailable, c.Availability())
		assert.Nil(t, c.VehiclePlate())
		assert.Empty(t, c.AssignedShipments())
	})

	t.Run("city wide coverage is legal", func(t *testing.T) {
		c, err := courier.NewCourier(kernel.NewUUID(), "Bob", kernel.ZoneCityWide)

		require.NoError(t, err)
		assert.Equal(t, kernel.ZoneCityWide, c.Coverage())
	})

	t.Run("should fail without name", func(t *testing.T) {
		_, err := courier.NewCourier(kernel.NewUUID(), "", kernel.ZoneNorth)

		require.Error(t, err)
		require.ErrorIs(t, err, courier.ErrNameIsRequired)
	})

	t.Run("should fail with invalid coverage", func(t *testing.T) {
		_, err := courier.NewCourier(kernel.NewUUID(), "Alice", kernel.ZoneUnknown)

		require.Error(t, err)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var c courier.Courier
		require.ErrorIs(t, c.Validate(), courier.ErrCourierIsNotConstructed)

		var nilCourier *courier.Courier
		require.ErrorIs(t, nilCourier.Validate(), courier.ErrCourierIsNotConstructed)
	})
}

func TestCourier_CanServe(t *testing.T) {
	t.Run("available courier serves own zone", func(t *testing.T) {
		c := testCourier(t, kernel.ZoneNorth)

		assert.True(t, c.CanServe(kernel.ZoneNorth))
		assert.False(t, c.CanServe(kernel.ZoneSouth))
	})

	t.Run("city wide courier serves every zone", func(t *testing.T) {
		c := testCourier(t, kernel.ZoneCityWide)

		for _, zone := range []kernel.Zone{
			kernel.ZoneNorth, kernel.ZoneSouth, kernel.ZoneEast,
			kernel.ZoneWest, kernel.ZoneCentral,
		} {
			assert.True(t, c.CanServe(zone), zone.String())
		}
	})

	t.Run("busy courier serves nothing", func(t *testing.T) {
		c := testCourier(t, kernel.ZoneCityWide)
		require.NoError(t, c.Reserve(kernel.NewUUID(), kernel.ZoneNorth))

		assert.False(t, c.CanServe(kernel.ZoneNorth))
	})
}

func TestCourier_Reserve(t *testing.T) {
	t.Run("should bind shipment and move to in transit", func(t *testing.T) {
		c := testCourier(t, kernel.ZoneNorth)
		shipmentID := kernel.NewUUID()

		err := c.Reserve(shipmentID, kernel.ZoneNorth)

		require.NoError(t, err)
		assert.Equal(t, courier.AvailabilityInTransit, c.Availability())
		require.Len(t, c.AssignedShipments(), 1)
		assert.True(t, c.AssignedShipments()[0].IsEqual(shipmentID))
		assert.Equal(t, 1, c.AssignedCount())
	})

	t.Run("should reject when not available", func(t *testing.T) {
		c := testCourier(t, kernel.ZoneNorth)
		require.NoError(t, c.Reserve(kernel.NewUUID(), kernel.ZoneNorth))

		err := c.Reserve(kernel.NewUUID(), kernel.ZoneNorth)

		require.ErrorIs(t, err, courier.ErrCourierNotAvailable)
		assert.Equal(t, 1, c.AssignedCount())
	})

	t.Run("should reject coverage mismatch", func(t *testing.T) {
		c := testCourier(t, kernel.ZoneNorth)

		err := c.Reserve(kernel.NewUUID(), kernel.ZoneSouth)

		require.ErrorIs(t, err, courier.ErrCoverageMismatch)
		assert.Equal(t, courier.AvailabilityAvailable, c.Availability())
		assert.Empty(t, c.AssignedShipments())
	})

	t.Run("should reject invalid shipment id", func(t *testing.T) {
		c := testCourier(t, kernel.ZoneNorth)
		var invalidID kernel.UUID

		err := c.Reserve(invalidID, kernel.ZoneNorth)

		require.Error(t, err)
		assert.Empty(t, c.AssignedShipments())
	})
}

func TestCourier_Release(t *testing.T) {
	t.Run("releasing last shipment returns courier to available", func(t *testing.T) {
		c := testCourier(t, kernel.ZoneNorth)
		shipmentID := kernel.NewUUID()
		require.NoError(t, c.Reserve(shipmentID, kernel.ZoneNorth))

		err := c.Release(shipmentID)

		require.NoError(t, err)
		assert.Equal(t, courier.AvailabilityAvailable, c.Availability())
		assert.Empty(t, c.AssignedShipments())
	})

	t.Run("should reject unknown shipment", func(t *testing.T) {
		c := testCourier(t, kernel.ZoneNorth)
		require.NoError(t, c.Reserve(kernel.NewUUID(), kernel.ZoneNorth))

		err := c.Release(kernel.NewUUID())

		require.ErrorIs(t, err, courier.ErrShipmentNotAssigned)
	})

	t.Run("inactive courier stays inactive after release", func(t *testing.T) {
		shipmentID := kernel.NewUUID()
		c, err := courier.RestoreCourier(
			kernel.NewUUID(), "Alice", kernel.ZoneNorth,
			courier.AvailabilityInactive, nil, []kernel.UUID{shipmentID})
		require.NoError(t, err)

		require.NoError(t, c.Release(shipmentID))

		assert.Equal(t, courier.AvailabilityInactive, c.Availability())
	})
}

func TestCourier_ActivationAndVehicle(t *testing.T) {
	t.Run("deactivate and activate", func(t *testing.T) {
		c := testCourier(t, kernel.ZoneNorth)

		require.NoError(t, c.Deactivate())
		assert.Equal(t, courier.AvailabilityInactive, c.Availability())
		assert.False(t, c.CanServe(kernel.ZoneNorth))

		c.Activate()
		assert.Equal(t, courier.AvailabilityAvailable, c.Availability())
	})

	t.Run("cannot deactivate while carrying shipments", func(t *testing.T) {
		c := testCourier(t, kernel.ZoneNorth)
		require.NoError(t, c.Reserve(kernel.NewUUID(), kernel.ZoneNorth))

		err := c.Deactivate()

		require.ErrorIs(t, err, courier.ErrCourierHasAssignments)
	})

	t.Run("set vehicle", func(t *testing.T) {
		c := testCourier(t, kernel.ZoneNorth)

		require.NoError(t, c.SetVehicle("ABC-123"))
		require.NotNil(t, c.VehiclePlate())
		assert.Equal(t, "ABC-123", *c.VehiclePlate())

		require.Error(t, c.SetVehicle(""))
	})
}

func TestRestoreCourier(t *testing.T) {
	plate := "XYZ-789"
	shipmentID := kernel.NewUUID()

	c, err := courier.RestoreCourier(
		kernel.NewUUID(), "Carol", kernel.ZoneCentral,
		courier.AvailabilityInTransit, &plate, []kernel.UUID{shipmentID})

	require.NoError(t, err)
	require.NoError(t, c.Validate())
	assert.Equal(t, courier.AvailabilityInTransit, c.Availability())
	require.NotNil(t, c.VehiclePlate())
	assert.Equal(t, plate, *c.VehiclePlate())
	require.Len(t, c.AssignedShipments(), 1)
	assert.True(t, c.AssignedShipments()[0].IsEqual(shipmentID))
}

func TestAvailabilityFromString(t *testing.T) {
	cases := map[string]courier.Availability{
		"AVAILABLE":  courier.AvailabilityAvailable,
		"IN_TRANSIT": courier.AvailabilityInTransit,
		"INACTIVE":   courier.AvailabilityInactive,
	}
	for s, want := range cases {
		got, err := courier.AvailabilityFromString(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := courier.AvailabilityFromString("NAPPING")
	require.Error(t, err)
}
