package services

import (
	"errors"
	"time"

	"shipcore/internal/core/domain/model/kernel"
	"shipcore/internal/core/domain/model/shipment"
	"shipcore/internal/pkg/errs"
)

// ErrGeocodingUnavailable is returned when the distance between two addresses
// cannot be computed: neither address has coordinates and no zone estimate is
// possible.
var ErrGeocodingUnavailable = errors.New("geocoding unavailable: cannot compute distance")

// DistanceCalculator computes the distance in kilometers between two
// addresses. Implementations return ErrGeocodingUnavailable when no distance
// can be derived.
type DistanceCalculator interface {
	DistanceKm(origin, destination kernel.Address) (float64, error)
}

// Tariff holds the rates the pricing engine multiplies against a shipment's
// distance, weight and volume.
type Tariff struct {
	BaseFee   float64
	RatePerKm float64
	RatePerKg float64
	RatePerM3 float64
}

// DefaultTariff returns the standard rate card.
func DefaultTariff() Tariff {
	return Tariff{
		BaseFee:   5.00,
		RatePerKm: 0.80,
		RatePerKg: 1.20,
		RatePerM3: 25.00,
	}
}

// Validate checks that every rate is positive.
func (t Tariff) Validate() error {
	if t.BaseFee <= 0 || t.RatePerKm <= 0 || t.RatePerKg <= 0 || t.RatePerM3 <= 0 {
		return errs.NewValueIsInvalidError("tariff")
	}
	return nil
}

// Quote is the result of pricing a prospective shipment: the itemized cost
// breakdown, the add-on services with their frozen fees, the distance the
// price was computed over and the promised delivery time.
type Quote struct {
	Costs             shipment.CostBreakdown
	Services          []shipment.AdditionalService
	DistanceKm        float64
	EstimatedDelivery time.Time
}

// PricingEngine is a domain service that prices shipments. Quoting is a pure
// computation over the tariff and the distance: quoting twice with identical
// inputs yields identical results.
//
// The price is built in three layers:
//  1. Base components: base fee, distance, weight and volume at tariff rates.
//  2. Service fees folded over the running subtotal in the fixed order given
//     by shipment.ServiceApplicationOrder; each fee is a percentage of the
//     subtotal at the moment the service is applied.
//  3. A priority surcharge on the post-services subtotal for urgency levels
//     4 and 5.
type PricingEngine struct {
	tariff   Tariff
	distance DistanceCalculator
}

// NewPricingEngine creates a PricingEngine with the given tariff and
// distance calculator.
func NewPricingEngine(tariff Tariff, distance DistanceCalculator) (*PricingEngine, error) {
	if err := tariff.Validate(); err != nil {
		return nil, err
	}
	if distance == nil {
		return nil, errs.NewValueIsRequiredError("distance calculator")
	}
	return &PricingEngine{tariff: tariff, distance: distance}, nil
}

// serviceFeePercent returns the fee percentage a service type charges on the
// running subtotal.
func serviceFeePercent(serviceType shipment.ServiceType) float64 {
	switch serviceType {
	case shipment.ServiceInsurance:
		return 0.05
	case shipment.ServiceFragile:
		return 0.08
	case shipment.ServiceSignatureRequired:
		return 0.02
	case shipment.ServicePriority:
		return 0.15
	default:
		return 0
	}
}

// prioritySurchargePercent returns the urgency surcharge applied to the
// post-services subtotal. Levels 1 to 3 carry no surcharge.
func prioritySurchargePercent(priority int) float64 {
	switch priority {
	case 4:
		return 0.10
	case 5:
		return 0.20
	default:
		return 0
	}
}

// travelPriorityMultiplier scales the travel duration: higher urgency means
// a shorter promised window.
func travelPriorityMultiplier(priority int) float64 {
	switch priority {
	case 1:
		return 1.5
	case 2:
		return 1.25
	case 4:
		return 0.75
	case 5:
		return 0.5
	default:
		return 1.0
	}
}

const (
	handlingDuration = 4 * time.Hour
	averageSpeedKmh  = 40.0
)

// Quote prices a prospective shipment between two addresses.
//
// Returns a validation error for an invalid package, priority or pickup
// time, and ErrGeocodingUnavailable when the distance cannot be computed.
func (p *PricingEngine) Quote(
	origin kernel.Address,
	destination kernel.Address,
	pack shipment.Package,
	priority int,
	serviceTypes []shipment.ServiceType,
	pickupAt time.Time,
) (Quote, error) {
	if err := errors.Join(origin.Validate(), destination.Validate(), pack.Validate()); err != nil {
		return Quote{}, err
	}
	if priority < shipment.MinPriority || priority > shipment.MaxPriority {
		return Quote{}, errs.NewValueIsOutOfRangeError(
			"priority", priority, shipment.MinPriority, shipment.MaxPriority)
	}
	if pickupAt.IsZero() {
		return Quote{}, errs.NewValueIsRequiredError("pickupAt")
	}

	requested := make(map[shipment.ServiceType]bool, len(serviceTypes))
	for _, serviceType := range serviceTypes {
		if err := serviceType.Validate(); err != nil {
			return Quote{}, err
		}
		requested[serviceType] = true
	}

	distanceKm, err := p.distance.DistanceKm(origin, destination)
	if err != nil {
		return Quote{}, err
	}

	baseCost := p.tariff.BaseFee
	distanceCost := distanceKm * p.tariff.RatePerKm
	weightCost := pack.WeightKg() * p.tariff.RatePerKg
	volumeCost := pack.VolumeM3() * p.tariff.RatePerM3
	subtotal := baseCost + distanceCost + weightCost + volumeCost

	var services []shipment.AdditionalService
	var servicesCost float64
	for _, serviceType := range shipment.ServiceApplicationOrder() {
		if !requested[serviceType] {
			continue
		}
		fee := subtotal * serviceFeePercent(serviceType)
		service, err := shipment.NewAdditionalService(serviceType, fee)
		if err != nil {
			return Quote{}, err
		}
		services = append(services, service)
		servicesCost += fee
		subtotal += fee
	}

	priorityCost := subtotal * prioritySurchargePercent(priority)
	totalCost := subtotal + priorityCost

	costs, err := shipment.NewCostBreakdown(
		baseCost, distanceCost, weightCost, volumeCost, servicesCost, priorityCost, totalCost)
	if err != nil {
		return Quote{}, err
	}

	travel := time.Duration(distanceKm / averageSpeedKmh * travelPriorityMultiplier(priority) * float64(time.Hour))

	return Quote{
		Costs:             costs,
		Services:          services,
		DistanceKm:        distanceKm,
		EstimatedDelivery: pickupAt.Add(handlingDuration).Add(travel),
	}, nil
}
