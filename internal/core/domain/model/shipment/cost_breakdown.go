package shipment

import (
	"fmt"
	"math"

	"shipcore/internal/pkg/errs"
)

// CostEpsilon is the tolerance used when checking the pricing additivity
// invariant on floating-point cost components.
const CostEpsilon = 1e-6

// CostBreakdown itemizes the price of a shipment. The components always sum
// to TotalCost within CostEpsilon; a breakdown violating that invariant is
// rejected at construction time.
type CostBreakdown struct {
	BaseCost     float64
	DistanceCost float64
	WeightCost   float64
	VolumeCost   float64
	ServicesCost float64
	PriorityCost float64
	TotalCost    float64
}

// NewCostBreakdown creates a CostBreakdown after checking the additivity
// invariant and that no component is negative.
func NewCostBreakdown(base, distance, weight, volume, services, priority, total float64) (CostBreakdown, error) {
	breakdown := CostBreakdown{
		BaseCost:     base,
		DistanceCost: distance,
		WeightCost:   weight,
		VolumeCost:   volume,
		ServicesCost: services,
		PriorityCost: priority,
		TotalCost:    total,
	}
	if err := breakdown.Validate(); err != nil {
		return CostBreakdown{}, err
	}
	return breakdown, nil
}

// Validate checks the pricing invariant: every component is non-negative and
// the components sum to TotalCost within CostEpsilon.
func (c CostBreakdown) Validate() error {
	components := map[string]float64{
		"baseCost":     c.BaseCost,
		"distanceCost": c.DistanceCost,
		"weightCost":   c.WeightCost,
		"volumeCost":   c.VolumeCost,
		"servicesCost": c.ServicesCost,
		"priorityCost": c.PriorityCost,
		"totalCost":    c.TotalCost,
	}
	for name, value := range components {
		if value < 0 {
			return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%g is negative", value))
		}
	}

	sum := c.BaseCost + c.DistanceCost + c.WeightCost + c.VolumeCost + c.ServicesCost + c.PriorityCost
	if math.Abs(sum-c.TotalCost) > CostEpsilon {
		return errs.NewValueIsInvalidErrorWithCause("totalCost",
			fmt.Errorf("components sum to %g, total is %g", sum, c.TotalCost))
	}
	return nil
}
