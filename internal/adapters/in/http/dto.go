package http

import (
	"time"

	"shipcore/internal/core/application/usecases/queries"
	"shipcore/internal/core/domain/model/kernel"
	"shipcore/internal/core/domain/model/shipment"
)

// Error is the JSON error payload returned on every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Address is the JSON form of a postal address.
type Address struct {
	Street  string   `json:"street"`
	City    string   `json:"city"`
	State   string   `json:"state,omitempty"`
	Zip     string   `json:"zip,omitempty"`
	Country string   `json:"country,omitempty"`
	Zone    string   `json:"zone"`
	Lat     *float64 `json:"lat,omitempty"`
	Lon     *float64 `json:"lon,omitempty"`
}

// Package is the JSON form of a parcel profile.
type Package struct {
	LengthCm float64 `json:"lengthCm"`
	WidthCm  float64 `json:"widthCm"`
	HeightCm float64 `json:"heightCm"`
	WeightKg float64 `json:"weightKg"`
}

// CreateOrderRequest creates a new order for a customer.
type CreateOrderRequest struct {
	UserID      string  `json:"userId"`
	Origin      Address `json:"origin"`
	Destination Address `json:"destination"`
	PayLater    bool    `json:"payLater"`
}

// CreateOrderResponse returns the identifier of the created order.
type CreateOrderResponse struct {
	OrderID string `json:"orderId"`
}

// MarkOrderPaidRequest records a payment against an order.
type MarkOrderPaidRequest struct {
	PaymentID string `json:"paymentId"`
}

// ApproveOrderRequest promotes an order to a shipment.
type ApproveOrderRequest struct {
	Package  Package   `json:"package"`
	Priority int       `json:"priority"`
	Services []string  `json:"services,omitempty"`
	PickupAt time.Time `json:"pickupAt"`
}

// QuoteRequest prices a prospective shipment without persisting anything.
type QuoteRequest struct {
	Origin      Address   `json:"origin"`
	Destination Address   `json:"destination"`
	Package     Package   `json:"package"`
	Priority    int       `json:"priority"`
	Services    []string  `json:"services,omitempty"`
	PickupAt    time.Time `json:"pickupAt"`
}

// QuoteResponse is the priced quote.
type QuoteResponse struct {
	Costs              CostBreakdown  `json:"costs"`
	Services           []QuoteService `json:"services"`
	DistanceKm         float64        `json:"distanceKm"`
	EstimatedDelivery  time.Time      `json:"estimatedDelivery"`
	RecommendedVehicle string         `json:"recommendedVehicle"`
}

// CostBreakdown itemizes a quote in the JSON response.
type CostBreakdown struct {
	BaseCost     float64 `json:"baseCost"`
	DistanceCost float64 `json:"distanceCost"`
	WeightCost   float64 `json:"weightCost"`
	VolumeCost   float64 `json:"volumeCost"`
	ServicesCost float64 `json:"servicesCost"`
	PriorityCost float64 `json:"priorityCost"`
	TotalCost    float64 `json:"totalCost"`
}

// QuoteService is one priced add-on in the quote response.
type QuoteService struct {
	Type string  `json:"type"`
	Cost float64 `json:"cost"`
}

// AssignCourierRequest manually assigns a courier to a shipment.
type AssignCourierRequest struct {
	CourierID string `json:"courierId"`
}

// AutoAssignResponse reports how many shipments an assignment sweep matched.
type AutoAssignResponse struct {
	Assigned int `json:"assigned"`
}

// ChangeShipmentStatusRequest moves a shipment through its lifecycle.
type ChangeShipmentStatusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// RegisterIncidentRequest records an exception against a shipment.
type RegisterIncidentRequest struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// SetCourierVehicleRequest binds a vehicle to a courier. An empty plate
// clears the binding.
type SetCourierVehicleRequest struct {
	Plate string `json:"plate"`
}

// Courier is one row of the courier listing.
type Courier struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Coverage      string  `json:"coverage"`
	Availability  string  `json:"availability"`
	VehiclePlate  *string `json:"vehiclePlate,omitempty"`
	AssignedCount int     `json:"assignedCount"`
}

// UnassignedShipment is one row of the assignment backlog listing.
type UnassignedShipment struct {
	ID              string    `json:"id"`
	DestinationCity string    `json:"destinationCity"`
	DestinationZone string    `json:"destinationZone"`
	Priority        int       `json:"priority"`
	WeightKg        float64   `json:"weightKg"`
	TotalCost       float64   `json:"totalCost"`
	CreatedAt       time.Time `json:"createdAt"`
	EstimatedDate   time.Time `json:"estimatedDate"`
}

// TrackingEvent is one audit entry in the tracking response.
type TrackingEvent struct {
	Previous  *string   `json:"previous,omitempty"`
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changedAt"`
	ChangedBy string    `json:"changedBy"`
	Reason    string    `json:"reason,omitempty"`
}

// Tracking is the full tracking view of one shipment.
type Tracking struct {
	ID            string          `json:"id"`
	Status        string          `json:"status"`
	CourierID     *string         `json:"courierId,omitempty"`
	VehiclePlate  *string         `json:"vehiclePlate,omitempty"`
	EstimatedDate time.Time       `json:"estimatedDate"`
	DeliveredDate *time.Time      `json:"deliveredDate,omitempty"`
	History       []TrackingEvent `json:"history"`
}

// parseAddress converts the JSON address into the domain value object.
func parseAddress(dto Address) (kernel.Address, error) {
	zone, err := kernel.ZoneFromString(dto.Zone)
	if err != nil {
		return kernel.Address{}, err
	}

	var geo *kernel.GeoPoint
	if dto.Lat != nil && dto.Lon != nil {
		point, geoErr := kernel.NewGeoPoint(*dto.Lat, *dto.Lon)
		if geoErr != nil {
			return kernel.Address{}, geoErr
		}
		geo = &point
	}

	return kernel.NewAddress(dto.Street, dto.City, dto.State, dto.Zip, dto.Country, zone, geo)
}

// parsePackage converts the JSON parcel profile into the domain value object.
func parsePackage(dto Package) (shipment.Package, error) {
	return shipment.NewPackage(dto.LengthCm, dto.WidthCm, dto.HeightCm, dto.WeightKg)
}

// parseServiceTypes converts the JSON service names into domain service types.
func parseServiceTypes(names []string) ([]shipment.ServiceType, error) {
	serviceTypes := make([]shipment.ServiceType, 0, len(names))
	for _, name := range names {
		serviceType, err := shipment.ServiceTypeFromString(name)
		if err != nil {
			return nil, err
		}
		serviceTypes = append(serviceTypes, serviceType)
	}
	return serviceTypes, nil
}

// trackingFromResponse converts the query read model into the JSON view.
func trackingFromResponse(model queries.GetShipmentTrackingQueryResponse) Tracking {
	tracking := Tracking{
		ID:            model.ID.String(),
		Status:        model.Status.String(),
		VehiclePlate:  model.VehiclePlate,
		EstimatedDate: model.EstimatedDate,
		DeliveredDate: model.DeliveredDate,
		History:       make([]TrackingEvent, 0, len(model.History)),
	}
	if model.CourierID != nil {
		courierID := model.CourierID.String()
		tracking.CourierID = &courierID
	}

	for _, event := range model.History {
		entry := TrackingEvent{
			Status:    event.Status.String(),
			ChangedAt: event.ChangedAt,
			ChangedBy: event.ChangedBy,
			Reason:    event.Reason,
		}
		if event.Previous != nil {
			previous := event.Previous.String()
			entry.Previous = &previous
		}
		tracking.History = append(tracking.History, entry)
	}

	return tracking
}
