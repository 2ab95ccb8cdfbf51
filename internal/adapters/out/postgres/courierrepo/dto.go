// Package courierrepo provides data transfer objects and mapping functions
// for courier persistence. A courier row owns the courier_assignments child
// table linking them to the shipments they currently carry.
package courierrepo

import (
	"shipcore/internal/core/domain/model/courier"
	"shipcore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier aggregates.
type CourierDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Coverage     string          `gorm:"type:varchar(16);not null"`
	Availability string          `gorm:"type:varchar(16);not null;index"`
	VehiclePlate *string         `gorm:"type:varchar(32)"`
	Assignments  []AssignmentDTO `gorm:"foreignKey:CourierID;references:ID"`
}

// TableName specifies the database table name for courier entities.
func (CourierDTO) TableName() string {
	return "couriers"
}

// AssignmentDTO links a courier to one shipment they currently carry.
type AssignmentDTO struct {
	CourierID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the database table name for courier assignments.
func (AssignmentDTO) TableName() string {
	return "courier_assignments"
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	dto := CourierDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Coverage:     aggregate.Coverage().String(),
		Availability: aggregate.Availability().String(),
		VehiclePlate: aggregate.VehiclePlate(),
	}

	for _, shipmentID := range aggregate.AssignedShipments() {
		dto.Assignments = append(dto.Assignments, AssignmentDTO{
			CourierID:  dto.ID,
			ShipmentID: shipmentID.Bytes(),
		})
	}

	return dto
}

// toDomain converts a database DTO to a courier domain aggregate.
// Reconstructs the complete aggregate using RestoreCourier.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	coverage, err := kernel.ZoneFromString(dto.Coverage)
	if err != nil {
		return nil, err
	}

	availability, err := courier.AvailabilityFromString(dto.Availability)
	if err != nil {
		return nil, err
	}

	assignedShipments := make([]kernel.UUID, 0, len(dto.Assignments))
	for _, assignment := range dto.Assignments {
		shipmentID, idErr := kernel.UUIDFromBytes(assignment.ShipmentID[:])
		if idErr != nil {
			return nil, idErr
		}
		assignedShipments = append(assignedShipments, shipmentID)
	}

	return courier.RestoreCourier(id, dto.Name, coverage, availability, dto.VehiclePlate, assignedShipments)
}
