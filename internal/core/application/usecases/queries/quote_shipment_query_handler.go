package queries

import (
	"context"

	"shipcore/internal/core/domain/model/shipment"
	"shipcore/internal/core/domain/services"
)

// QuoteShipmentQueryHandler prices prospective shipments. It is the only
// repository-free handler: quoting never touches storage, so the same query
// can be served before an order exists.
type QuoteShipmentQueryHandler struct {
	pricing  *services.PricingEngine
	selector services.VehicleSelector
}

// NewQuoteShipmentQueryHandler creates a handler for quote queries.
func NewQuoteShipmentQueryHandler(
	pricing *services.PricingEngine,
	selector services.VehicleSelector,
) QuoteShipmentQueryHandler {
	return QuoteShipmentQueryHandler{
		pricing:  pricing,
		selector: selector,
	}
}

// Handle executes the quote query. Returns the itemized breakdown, the
// computed distance, the estimated delivery time and the recommended vehicle
// type for the parcel.
func (h QuoteShipmentQueryHandler) Handle(
	_ context.Context,
	query QuoteShipmentQuery,
) (QuoteShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return QuoteShipmentQueryResponse{}, err
	}

	quote, err := h.pricing.Quote(
		query.Origin(), query.Destination(),
		query.Package(), query.Priority(), query.ServiceTypes(), query.PickupAt())
	if err != nil {
		return QuoteShipmentQueryResponse{}, err
	}

	isFragile := false
	for _, serviceType := range query.ServiceTypes() {
		if serviceType == shipment.ServiceFragile {
			isFragile = true
		}
	}

	recommended, err := h.selector.Select(
		query.Package().WeightKg(), query.Package().VolumeM3(),
		query.Priority() >= shipment.MaxPriority-1, isFragile)
	if err != nil {
		return QuoteShipmentQueryResponse{}, err
	}

	return QuoteShipmentQueryResponse{
		Costs:              quote.Costs,
		Services:           quote.Services,
		DistanceKm:         quote.DistanceKm,
		EstimatedDelivery:  quote.EstimatedDelivery,
		RecommendedVehicle: recommended,
	}, nil
}
