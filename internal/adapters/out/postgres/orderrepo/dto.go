// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"shipcore/internal/core/domain/model/kernel"
	"shipcore/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Origin      AddressDTO `gorm:"embedded;embeddedPrefix:origin_"`
	Destination AddressDTO `gorm:"embedded;embeddedPrefix:destination_"`
	Status      string     `gorm:"type:varchar(32);not null;index"`
	CreatedAt   time.Time  `gorm:"not null"`
	ShipmentID  *uuid.UUID `gorm:"type:uuid;index"`
	PaymentID   *string    `gorm:"type:varchar(255)"`
	InvoiceID   *string    `gorm:"type:varchar(255)"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders" instead of "order_dtos".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents an embedded postal address within an owning row.
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

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:          aggregate.ID().Bytes(),
		UserID:      aggregate.UserID().Bytes(),
		Origin:      addressFromDomain(aggregate.Origin()),
		Destination: addressFromDomain(aggregate.Destination()),
		Status:      aggregate.Status().String(),
		CreatedAt:   aggregate.CreatedAt(),
		PaymentID:   aggregate.PaymentID(),
		InvoiceID:   aggregate.InvoiceID(),
	}
	if aggregate.ShipmentID() != nil {
		raw := aggregate.ShipmentID().Bytes()
		dto.ShipmentID = &raw
	}
	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
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

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var shipmentID *kernel.UUID
	if dto.ShipmentID != nil {
		sID, shipErr := kernel.UUIDFromBytes((*dto.ShipmentID)[:])
		if shipErr != nil {
			return nil, shipErr
		}
		shipmentID = &sID
	}

	return order.RestoreOrder(
		id, userID, origin, destination, status, dto.CreatedAt,
		shipmentID, dto.PaymentID, dto.InvoiceID)
}
