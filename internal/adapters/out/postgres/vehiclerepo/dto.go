// Package vehiclerepo provides data transfer objects and mapping functions
// for fleet vehicle persistence. Vehicles are keyed by plate.
package vehiclerepo

import (
	"shipcore/internal/core/domain/model/vehicle"
)

// VehicleDTO represents the database structure for persisting fleet vehicles.
type VehicleDTO struct {
	Plate       string  `gorm:"type:varchar(32);primaryKey"`
	VehicleType string  `gorm:"type:varchar(16);not null"`
	CapacityKg  float64 `gorm:"not null"`
	Available   bool    `gorm:"not null;index"`
}

// TableName specifies the database table name for vehicle entities.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// fromDomain converts a vehicle domain aggregate to its database representation.
func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		Plate:       aggregate.Plate(),
		VehicleType: aggregate.Type().String(),
		CapacityKg:  aggregate.CapacityKg(),
		Available:   aggregate.IsAvailable(),
	}
}

// toDomain converts a database DTO to a vehicle domain aggregate.
func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	vehicleType, err := vehicle.TypeFromString(dto.VehicleType)
	if err != nil {
		return nil, err
	}
	return vehicle.RestoreVehicle(dto.Plate, vehicleType, dto.CapacityKg, dto.Available)
}
