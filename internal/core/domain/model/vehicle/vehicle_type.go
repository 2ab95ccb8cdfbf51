package vehicle

import (
	"shipcore/internal/pkg/errs"
)

// Type classifies a vehicle by its cargo profile.
type Type int

const (
	// TypeUnknown represents an invalid or undefined vehicle type.
	TypeUnknown Type = iota

	// TypeMotorcycle is the fastest, smallest option. No protected cargo space.
	TypeMotorcycle

	// TypeCar fits small and medium parcels.
	TypeCar

	// TypeVan fits bulky cargo.
	TypeVan

	// TypeTruck is the largest option.
	TypeTruck
)

// Capacity is the maximum load a vehicle type can carry.
type Capacity struct {
	MaxWeightKg float64
	MaxVolumeM3 float64
}

// getTypeStrings returns a map of Type values to their string representations.
func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:    "UNKNOWN",
		TypeMotorcycle: "MOTORCYCLE",
		TypeCar:        "CAR",
		TypeVan:        "VAN",
		TypeTruck:      "TRUCK",
	}
}

// getCapacities returns the capacity table per vehicle type.
func getCapacities() map[Type]Capacity {
	return map[Type]Capacity{
		TypeMotorcycle: {MaxWeightKg: 20, MaxVolumeM3: 0.1},
		TypeCar:        {MaxWeightKg: 200, MaxVolumeM3: 1.5},
		TypeVan:        {MaxWeightKg: 800, MaxVolumeM3: 8},
		TypeTruck:      {MaxWeightKg: 3000, MaxVolumeM3: 30},
	}
}

// TypesBySize returns all vehicle types ordered from smallest to largest
// capacity. Selection walks this list to find the smallest fitting type.
func TypesBySize() []Type {
	return []Type{TypeMotorcycle, TypeCar, TypeVan, TypeTruck}
}

// TypeFromString parses a vehicle type from its canonical string form.
func TypeFromString(s string) (Type, error) {
	for vehicleType, str := range getTypeStrings() {
		if str == s && vehicleType != TypeUnknown {
			return vehicleType, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidError("vehicle type")
}

// Validate checks if the Type value is valid.
func (t Type) Validate() error {
	if _, ok := getCapacities()[t]; !ok {
		return errs.NewValueIsInvalidError("vehicle type")
	}
	return nil
}

// String returns the canonical name of the vehicle type.
// This method implements the fmt.Stringer interface.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// Capacity returns the maximum weight and volume for the type.
// Unknown types have zero capacity.
func (t Type) Capacity() Capacity {
	return getCapacities()[t]
}

// Fits reports whether a load of the given weight and volume fits the type.
func (t Type) Fits(weightKg, volumeM3 float64) bool {
	capacity, ok := getCapacities()[t]
	if !ok {
		return false
	}
	return weightKg <= capacity.MaxWeightKg && volumeM3 <= capacity.MaxVolumeM3
}
