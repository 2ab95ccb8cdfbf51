package services

import (
	"errors"
	"fmt"

	"shipcore/internal/core/domain/model/vehicle"
)

// ErrVehicleIncompatible is returned when a vehicle type cannot carry a
// package, either by capacity or by handling constraints.
var ErrVehicleIncompatible = errors.New("vehicle type is incompatible with the package")

// VehicleSelector is a domain service that recommends and validates vehicle
// types for a package profile.
//
// Selection picks the smallest type whose weight and volume capacity both
// fit. Fragile cargo excludes MOTORCYCLE (no protected cargo space).
// Priority cargo is biased toward the fast types (MOTORCYCLE, CAR) when
// their capacity allows.
type VehicleSelector struct{}

// NewVehicleSelector creates a new VehicleSelector instance.
func NewVehicleSelector() VehicleSelector {
	return VehicleSelector{}
}

// Select recommends a vehicle type for the given load.
//
// Returns ErrVehicleIncompatible when no type can carry the load.
func (v VehicleSelector) Select(weightKg, volumeM3 float64, isPriority, isFragile bool) (vehicle.Type, error) {
	if isPriority {
		for _, fast := range []vehicle.Type{vehicle.TypeMotorcycle, vehicle.TypeCar} {
			if isFragile && fast == vehicle.TypeMotorcycle {
				continue
			}
			if fast.Fits(weightKg, volumeM3) {
				return fast, nil
			}
		}
	}

	for _, candidate := range vehicle.TypesBySize() {
		if isFragile && candidate == vehicle.TypeMotorcycle {
			continue
		}
		if candidate.Fits(weightKg, volumeM3) {
			return candidate, nil
		}
	}

	return vehicle.TypeUnknown, fmt.Errorf("%w: no type fits %gkg / %gm3",
		ErrVehicleIncompatible, weightKg, volumeM3)
}

// Validate checks whether the given vehicle type can carry the load.
//
// Returns a descriptive ErrVehicleIncompatible when the weight or volume
// exceeds the type's capacity, or when fragile cargo is paired with a
// motorcycle.
func (v VehicleSelector) Validate(
	vehicleType vehicle.Type, weightKg, volumeM3 float64, isPriority, isFragile bool,
) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}
	if isFragile && vehicleType == vehicle.TypeMotorcycle {
		return fmt.Errorf("%w: fragile cargo cannot travel by motorcycle", ErrVehicleIncompatible)
	}

	capacity := vehicleType.Capacity()
	if weightKg > capacity.MaxWeightKg {
		return fmt.Errorf("%w: %gkg exceeds %s limit of %gkg",
			ErrVehicleIncompatible, weightKg, vehicleType, capacity.MaxWeightKg)
	}
	if volumeM3 > capacity.MaxVolumeM3 {
		return fmt.Errorf("%w: %gm3 exceeds %s limit of %gm3",
			ErrVehicleIncompatible, volumeM3, vehicleType, capacity.MaxVolumeM3)
	}
	return nil
}
