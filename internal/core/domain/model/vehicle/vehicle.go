package vehicle

import (
	"errors"

	"shipcore/internal/pkg/errs"
	"shipcore/internal/pkg/guard"
)

// Domain errors for vehicle operations.
var (
	// ErrPlateIsRequired is returned when attempting to create a vehicle without a plate.
	ErrPlateIsRequired = errs.NewValueIsRequiredError("plate")
	// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
	// ErrVehicleNotAvailable is returned when reserving a vehicle that is already in use.
	ErrVehicleNotAvailable = errors.New("vehicle is not available")
)

// Vehicle represents a fleet vehicle identified by its plate. The plate is
// the aggregate key; availability flips when a courier takes or returns the
// vehicle.
type Vehicle struct {
	// plate uniquely identifies the vehicle
	plate string
	// vehicleType classifies the cargo profile
	vehicleType Type
	// capacityKg is the rated maximum load of this specific vehicle
	capacityKg float64
	// available reports whether the vehicle can be taken by a courier
	available bool
	// guard ensures the vehicle was properly constructed
	guard guard.ConstructorGuard
}

// NewVehicle creates a new available Vehicle. The rated capacity defaults to
// the type's maximum when capacityKg is zero and may never exceed it.
func NewVehicle(plate string, vehicleType Type, capacityKg float64) (*Vehicle, error) {
	if plate == "" {
		return nil, ErrPlateIsRequired
	}
	if err := vehicleType.Validate(); err != nil {
		return nil, err
	}

	maxWeight := vehicleType.Capacity().MaxWeightKg
	if capacityKg == 0 {
		capacityKg = maxWeight
	}
	if capacityKg < 0 || capacityKg > maxWeight {
		return nil, errs.NewValueIsOutOfRangeError("capacityKg", capacityKg, 0, maxWeight)
	}

	return &Vehicle{
		plate:       plate,
		vehicleType: vehicleType,
		capacityKg:  capacityKg,
		available:   true,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreVehicle reconstructs a Vehicle from persistent storage, including
// its availability.
func RestoreVehicle(plate string, vehicleType Type, capacityKg float64, available bool) (*Vehicle, error) {
	vehicle, err := NewVehicle(plate, vehicleType, capacityKg)
	if err != nil {
		return nil, err
	}
	vehicle.available = available
	return vehicle, nil
}

// Validate checks if the Vehicle was properly constructed using a constructor.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// IsEqual compares two vehicles by plate.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.plate == other.plate
}

// Plate returns the unique plate of the vehicle.
func (v *Vehicle) Plate() string {
	return v.plate
}

// Type returns the vehicle's cargo classification.
func (v *Vehicle) Type() Type {
	return v.vehicleType
}

// CapacityKg returns the rated maximum load of this vehicle.
func (v *Vehicle) CapacityKg() float64 {
	return v.capacityKg
}

// IsAvailable reports whether the vehicle can be taken by a courier.
func (v *Vehicle) IsAvailable() bool {
	return v.available
}

// Reserve marks the vehicle as taken. Fails if it is already in use.
func (v *Vehicle) Reserve() error {
	if !v.available {
		return ErrVehicleNotAvailable
	}
	v.available = false
	return nil
}

// Release returns the vehicle to the available pool.
func (v *Vehicle) Release() {
	v.available = true
}
