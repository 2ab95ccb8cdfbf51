// Package postgres provides the GORM-backed persistence adapters: one
// repository package per aggregate plus the unit of work binding them to a
// shared transaction.
package postgres

import (
	"context"

	"shipcore/internal/adapters/out/postgres/courierrepo"
	"shipcore/internal/adapters/out/postgres/orderrepo"
	"shipcore/internal/adapters/out/postgres/shipmentrepo"
	"shipcore/internal/adapters/out/postgres/vehiclerepo"
	"shipcore/internal/core/domain/model/kernel"
	"shipcore/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates GormUnitOfWork instances sharing one
// database connection.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to the given connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a fresh unit of work for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork implements the UnitOfWork pattern on top of a GORM
// transaction. Repositories obtained from it share the transaction started
// by Begin; before Begin they operate directly on the connection.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB

	trackedAggregates []trackedAggregate
}

// trackedAggregate pairs an aggregate with its identifier for change tracking.
type trackedAggregate struct {
	id        kernel.UUID
	aggregate any
}

// Begin starts a new database transaction. Calling Begin twice without a
// Commit or Rollback in between is a no-op.
func (u *GormUnitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return nil
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	u.tx = tx
	return nil
}

// Commit commits the current transaction.
func (u *GormUnitOfWork) Commit(_ context.Context) error {
	if u.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := u.tx.Commit().Error
	u.tx = nil
	u.trackedAggregates = nil
	return err
}

// Rollback rolls back the current transaction.
func (u *GormUnitOfWork) Rollback(_ context.Context) error {
	if u.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := u.tx.Rollback().Error
	u.tx = nil
	u.trackedAggregates = nil
	return err
}

// OrderRepository returns an order repository bound to the current transaction.
func (u *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(u.connection(), u)
}

// ShipmentRepository returns a shipment repository bound to the current transaction.
func (u *GormUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewGormShipmentRepository(u.connection(), u)
}

// CourierRepository returns a courier repository bound to the current transaction.
func (u *GormUnitOfWork) CourierRepository() ports.CourierRepository {
	return courierrepo.NewGormCourierRepository(u.connection(), u)
}

// VehicleRepository returns a vehicle repository bound to the current transaction.
func (u *GormUnitOfWork) VehicleRepository() ports.VehicleRepository {
	return vehiclerepo.NewGormVehicleRepository(u.connection())
}

// TrackAggregate records an aggregate touched inside the transaction.
func (u *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	u.trackedAggregates = append(u.trackedAggregates, trackedAggregate{id: id, aggregate: aggregate})
}

// connection returns the active transaction, or the bare connection when no
// transaction was started.
func (u *GormUnitOfWork) connection() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}
