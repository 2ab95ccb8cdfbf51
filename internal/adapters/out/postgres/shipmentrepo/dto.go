// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. A shipment row owns two child tables: the
// append-only status history and the purchased add-on services.
package shipmentrepo

import (
	"time"

	"shipcore/internal/core/domain/model/kernel"
	"shipcore/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
type ShipmentDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Origin      AddressDTO `gorm:"embedded;embeddedPrefix:origin_"`
	Destination AddressDTO `gorm:"embedded;embeddedPrefix:destination_"`

	LengthCm float64 `gorm:"not null"`
	WidthCm  float64 `gorm:"not null"`
	HeightCm float64 `gorm:"not null"`
	WeightKg float64 `gorm:"not null"`
	Priority int     `gorm:"not null"`

	BaseCost     float64 `gorm:"not null"`
	DistanceCost float64 `gorm:"not null"`
	WeightCost   float64 `gorm:"not null"`
	VolumeCost   float64 `gorm:"not null"`
	ServicesCost float64 `gorm:"not null"`
	PriorityCost float64 `gorm:"not null"`
	TotalCost    float64 `gorm:"not null"`

	Status       string     `gorm:"type:varchar(32);not null;index"`
	CourierID    *uuid.UUID `gorm:"type:uuid;index"`
	VehiclePlate *string    `gorm:"type:varchar(32)"`

	CreatedAt     time.Time  `gorm:"not null"`
	EstimatedDate time.Time  `gorm:"not null"`
	DeliveredDate *time.Time `gorm:""`

	IncidentType        *string    `gorm:"type:varchar(32)"`
	IncidentDescription *string    `gorm:"type:varchar(1024)"`
	IncidentDate        *time.Time `gorm:""`

	History  []StatusChangeDTO `gorm:"foreignKey:ShipmentID;references:ID"`
	Services []ServiceDTO      `gorm:"foreignKey:ShipmentID;references:ID"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// StatusChangeDTO represents one entry of a shipment's audit log. The entry
// position within the history is part of the key so re-saving the aggregate
// upserts existing entries instead of duplicating them.
type StatusChangeDTO struct {
	ShipmentID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq            int       `gorm:"primaryKey"`
	PreviousStatus *string   `gorm:"type:varchar(32)"`
	NextStatus     string    `gorm:"type:varchar(32);not null"`
	ChangedAt      time.Time `gorm:"not null"`
	ChangedBy      string    `gorm:"type:varchar(255);not null"`
	Reason         string    `gorm:"type:varchar(1024)"`
}

// TableName specifies the database table name for status change entries.
func (StatusChangeDTO) TableName() string {
	return "shipment_status_changes"
}

// ServiceDTO represents one purchased add-on service with its frozen cost.
type ServiceDTO struct {
	ShipmentID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	ServiceType string    `gorm:"type:varchar(32);primaryKey"`
	Cost        float64   `gorm:"not null"`
}

// TableName specifies the database table name for shipment services.
func (ServiceDTO) TableName() string {
	return "shipment_services"
}

// AddressDTO represents an embedded postal address within the shipment row.
// Lat and Lon are null when the address was never geocoded.
type AddressDTO struct {
	Street  string   `gorm:"type:varchar(255);not null"`
	City    string   `gorm:"type:varchar(255);not null"`
	State   string   `gorm:"type:varchar(255)"`
	Zip     string   `gorm:"type:varchar(32)"`
	Country string   `gorm:"type:varchar(255)"`
	Zone    string   `gorm:"type:varchar(16);not null"`
	Lat     *float64 `gorm:"type:double precision"`
	Lon     *float64 `gorm:"type:double precision"`
}

// addressFromDomain converts an Address value object to its embedded row form.
func addressFromDomain(address kernel.Address) AddressDTO {
	dto := AddressDTO{
		Street:  address.Street(),
		City:    address.City(),
		State:   address.State(),
		Zip:     address.Zip(),
		Country: address.Country(),
		Zone:    address.Zone().String(),
	}
	if geo := address.Geo(); geo != nil {
		lat, lon := geo.Latitude(), geo.Longitude()
		dto.Lat, dto.Lon = &lat, &lon
	}
	return dto
}

// addressToDomain reconstructs an Address value object from its embedded row form.
func addressToDomain(dto AddressDTO) (kernel.Address, error) {
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

// fromDomain converts a shipment domain aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	pack := aggregate.Package()
	costs := aggregate.Costs()

	dto := ShipmentDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		Origin:      addressFromDomain(aggregate.Origin()),
		Destination: addressFromDomain(aggregate.Destination()),

		LengthCm: pack.LengthCm(),
		WidthCm:  pack.WidthCm(),
		HeightCm: pack.HeightCm(),
		WeightKg: pack.WeightKg(),
		Priority: aggregate.Priority(),

		BaseCost:     costs.BaseCost,
		DistanceCost: costs.DistanceCost,
		WeightCost:   costs.WeightCost,
		VolumeCost:   costs.VolumeCost,
		ServicesCost: costs.ServicesCost,
		PriorityCost: costs.PriorityCost,
		TotalCost:    costs.TotalCost,

		Status:       aggregate.Status().String(),
		VehiclePlate: aggregate.VehiclePlate(),

		CreatedAt:     aggregate.CreatedAt(),
		EstimatedDate: aggregate.EstimatedDate(),
		DeliveredDate: aggregate.DeliveredDate(),
	}

	if aggregate.CourierID() != nil {
		raw := aggregate.CourierID().Bytes()
		dto.CourierID = &raw
	}

	if incident := aggregate.Incident(); incident != nil {
		incidentType := incident.Type().String()
		description := incident.Description()
		registered := incident.RegistrationDate()
		dto.IncidentType = &incidentType
		dto.IncidentDescription = &description
		dto.IncidentDate = &registered
	}

	for seq, change := range aggregate.History() {
		entry := StatusChangeDTO{
			ShipmentID: dto.ID,
			Seq:        seq,
			NextStatus: change.Next().String(),
			ChangedAt:  change.ChangedAt(),
			ChangedBy:  change.ChangedBy(),
			Reason:     change.Reason(),
		}
		if change.Previous() != nil {
			previous := change.Previous().String()
			entry.PreviousStatus = &previous
		}
		dto.History = append(dto.History, entry)
	}

	for _, service := range aggregate.Services() {
		dto.Services = append(dto.Services, ServiceDTO{
			ShipmentID:  dto.ID,
			ServiceType: service.Type().String(),
			Cost:        service.Cost(),
		})
	}

	return dto
}

// toDomain converts a database DTO to a shipment domain aggregate.
// Reconstructs the complete aggregate using RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	origin, err := addressToDomain(dto.Origin)
	if err != nil {
		return nil, err
	}
	destination, err := addressToDomain(dto.Destination)
	if err != nil {
		return nil, err
	}

	pack, err := shipment.NewPackage(dto.LengthCm, dto.WidthCm, dto.HeightCm, dto.WeightKg)
	if err != nil {
		return nil, err
	}
	costs, err := shipment.NewCostBreakdown(
		dto.BaseCost, dto.DistanceCost, dto.WeightCost, dto.VolumeCost,
		dto.ServicesCost, dto.PriorityCost, dto.TotalCost)
	if err != nil {
		return nil, err
	}
	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		assignee, idErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if idErr != nil {
			return nil, idErr
		}
		courierID = &assignee
	}

	incident, err := incidentToDomain(dto)
	if err != nil {
		return nil, err
	}

	services, err := servicesToDomain(dto.Services)
	if err != nil {
		return nil, err
	}

	history, err := historyToDomain(dto.History)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id, orderID, origin, destination, pack, dto.Priority,
		services, costs, status, courierID, dto.VehiclePlate,
		dto.CreatedAt, dto.EstimatedDate, dto.DeliveredDate,
		incident, history)
}

// incidentToDomain reconstructs the registered incident, if the row carries one.
func incidentToDomain(dto ShipmentDTO) (*shipment.Incident, error) {
	if dto.IncidentType == nil || dto.IncidentDescription == nil || dto.IncidentDate == nil {
		return nil, nil //nolint:nilnil //absence of an incident is not an error
	}

	incidentType, err := shipment.IncidentTypeFromString(*dto.IncidentType)
	if err != nil {
		return nil, err
	}
	incident, err := shipment.NewIncident(incidentType, *dto.IncidentDescription, *dto.IncidentDate)
	if err != nil {
		return nil, err
	}
	return &incident, nil
}

// servicesToDomain reconstructs the purchased add-on services.
func servicesToDomain(dtos []ServiceDTO) ([]shipment.AdditionalService, error) {
	services := make([]shipment.AdditionalService, 0, len(dtos))
	for _, dto := range dtos {
		serviceType, err := shipment.ServiceTypeFromString(dto.ServiceType)
		if err != nil {
			return nil, err
		}
		service, err := shipment.NewAdditionalService(serviceType, dto.Cost)
		if err != nil {
			return nil, err
		}
		services = append(services, service)
	}
	return services, nil
}

// historyToDomain reconstructs the append-only status change log.
// Entries arrive ordered by their sequence number.
func historyToDomain(dtos []StatusChangeDTO) ([]shipment.StatusChange, error) {
	history := make([]shipment.StatusChange, 0, len(dtos))
	for _, dto := range dtos {
		var previous *shipment.Status
		if dto.PreviousStatus != nil {
			previousStatus, err := shipment.StatusFromString(*dto.PreviousStatus)
			if err != nil {
				return nil, err
			}
			previous = &previousStatus
		}

		next, err := shipment.StatusFromString(dto.NextStatus)
		if err != nil {
			return nil, err
		}

		change, err := shipment.NewStatusChange(previous, next, dto.ChangedAt, dto.ChangedBy, dto.Reason)
		if err != nil {
			return nil, err
		}
		history = append(history, change)
	}
	return history, nil
}
