package queries_test

import (
	"testing"
	"time"

	"shipcore/internal/core/application/usecases/queries"
	"shipcore/internal/core/domain/model/kernel"
	"shipcore/internal/core/domain/model/shipment"
	"shipcore/internal/core/domain/model/vehicle"
	"shipcore/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDistance struct{ km float64 }

func (s stubDistance) DistanceKm(_, _ kernel.Address) (float64, error) {
	return s.km, nil
}

func quoteAddress(t *testing.T, zone kernel.Zone) kernel.Address {
	t.Helper()
	address, err := kernel.NewAddress("12 Harbor Rd", "Porto", "PT", "4000-001", "Portugal", zone, nil)
	require.NoError(t, err)
	return address
}

func quoteHandler(t *testing.T, km float64) queries.QuoteShipmentQueryHandler {
	t.Helper()
	engine, err := services.NewPricingEngine(services.DefaultTariff(), stubDistance{km: km})
	require.NoError(t, err)
	return queries.NewQuoteShipmentQueryHandler(engine, services.NewVehicleSelector())
}

func TestQuoteShipmentQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	pack, err := shipment.NewPackage(30, 30, 30, 5)
	require.NoError(t, err)
	pickup := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

	query, err := queries.NewQuoteShipmentQuery(
		quoteAddress(t, kernel.ZoneCentral), quoteAddress(t, kernel.ZoneNorth),
		pack, 3, []shipment.ServiceType{shipment.ServiceInsurance}, pickup)
	require.NoError(t, err)

	response, err := quoteHandler(t, 12).Handle(ctx, query)
	require.NoError(t, err)

	assert.InDelta(t, 12, response.DistanceKm, shipment.CostEpsilon)
	assert.NoError(t, response.Costs.Validate())
	require.Len(t, response.Services, 1)
	assert.Equal(t, shipment.ServiceInsurance, response.Services[0].Type())
	assert.True(t, response.EstimatedDelivery.After(pickup))
	assert.Equal(t, vehicle.TypeMotorcycle, response.RecommendedVehicle)
}

func TestQuoteShipmentQueryHandler_Handle_Deterministic(t *testing.T) {
	ctx := t.Context()
	pack, err := shipment.NewPackage(40, 40, 40, 12)
	require.NoError(t, err)
	pickup := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

	handler := quoteHandler(t, 25)
	first := func() queries.QuoteShipmentQueryResponse {
		query, qErr := queries.NewQuoteShipmentQuery(
			quoteAddress(t, kernel.ZoneCentral), quoteAddress(t, kernel.ZoneSouth),
			pack, 4,
			[]shipment.ServiceType{shipment.ServiceFragile, shipment.ServiceInsurance}, pickup)
		require.NoError(t, qErr)
		response, hErr := handler.Handle(ctx, query)
		require.NoError(t, hErr)
		return response
	}

	a, b := first(), first()
	assert.Equal(t, a.Costs, b.Costs)
	assert.Equal(t, a.EstimatedDelivery, b.EstimatedDelivery)
	// fragile cargo never rides a motorcycle, even at high priority
	assert.Equal(t, vehicle.TypeCar, a.RecommendedVehicle)
}

func TestQuoteShipmentQueryHandler_Handle_InvalidQuery(t *testing.T) {
	ctx := t.Context()
	handler := quoteHandler(t, 10)

	_, err := handler.Handle(ctx, queries.QuoteShipmentQuery{})

	require.Error(t, err)
	require.ErrorIs(t, err, queries.ErrQuoteShipmentQueryIsNotConstructed)
}
