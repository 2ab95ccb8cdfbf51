package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "shipcore/internal/adapters/out/postgres"
	"shipcore/internal/adapters/out/postgres/courierrepo"
	"shipcore/internal/adapters/out/postgres/orderrepo"
	"shipcore/internal/adapters/out/postgres/shipmentrepo"
	"shipcore/internal/adapters/out/postgres/vehiclerepo"
	"shipcore/internal/core/domain/model/courier"
	"shipcore/internal/core/domain/model/kernel"
	"shipcore/internal/core/domain/model/order"
	"shipcore/internal/core/domain/model/shipment"
	"shipcore/internal/core/domain/model/vehicle"
	"shipcore/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.StatusChangeDTO{},
		&shipmentrepo.ServiceDTO{},
		&courierrepo.CourierDTO{},
		&courierrepo.AssignmentDTO{},
		&vehiclerepo.VehicleDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, shipments, shipment_status_changes, shipment_services, " +
			"couriers, courier_assignments, vehicles").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow1.ShipmentRepository(), "First instance should provide shipment repository")
	suite.NotNil(uow2.CourierRepository(), "Second instance should provide courier repository")
	suite.NotNil(uow2.VehicleRepository(), "Second instance should provide vehicle repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_ShipmentRoundTrip verifies a shipment persists with its
// history, services and costs, and restores to an identical aggregate.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ShipmentRoundTrip() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShipment := createTestShipment(&suite.Suite)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	restored, err := suite.factory.Create().ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)

	suite.Equal(testShipment.ID(), restored.ID())
	suite.Equal(shipment.StatusPendingAssignment, restored.Status())
	suite.Equal(testShipment.Costs(), restored.Costs())
	suite.Equal(testShipment.Priority(), restored.Priority())
	suite.True(restored.HasService(shipment.ServiceInsurance))

	history := restored.History()
	suite.Require().Len(history, 1)
	suite.Nil(history[0].Previous())
	suite.Equal(shipment.StatusPendingAssignment, history[0].Next())
}

// TestUnitOfWork_AssignmentTransaction verifies the assignment flow spanning
// the shipment and courier repositories commits atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_AssignmentTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShipment := createTestShipment(&suite.Suite)
	testCourier := createTestCourier(&suite.Suite)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	err = uow.CourierRepository().Add(ctx, testCourier)
	suite.Require().NoError(err)

	err = testCourier.Reserve(testShipment.ID(), testShipment.Destination().Zone())
	suite.Require().NoError(err)
	err = testShipment.Assign(testCourier.ID(), "admin-1", time.Now().UTC())
	suite.Require().NoError(err)

	err = uow.ShipmentRepository().Update(ctx, testShipment)
	suite.Require().NoError(err)
	err = uow.CourierRepository().Update(ctx, testCourier)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	restoredShipment, err := newUow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.StatusReadyForPickup, restoredShipment.Status())
	suite.Require().NotNil(restoredShipment.CourierID())
	suite.Equal(testCourier.ID(), *restoredShipment.CourierID())
	suite.Len(restoredShipment.History(), 2)

	restoredCourier, err := newUow.CourierRepository().Get(ctx, testCourier.ID())
	suite.Require().NoError(err)
	suite.Equal(courier.AvailabilityInTransit, restoredCourier.Availability())
	suite.Equal(1, restoredCourier.AssignedCount())
}

// TestUnitOfWork_DeliveryReleasesAssignment verifies that releasing the last
// shipment removes the link row and returns the courier to AVAILABLE.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DeliveryReleasesAssignment() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShipment := createTestShipment(&suite.Suite)
	testCourier := createTestCourier(&suite.Suite)

	suite.Require().NoError(testCourier.Reserve(testShipment.ID(), testShipment.Destination().Zone()))
	suite.Require().NoError(testShipment.Assign(testCourier.ID(), "admin-1", time.Now().UTC()))

	err := uow.Begin(ctx)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, testShipment))
	suite.Require().NoError(uow.CourierRepository().Add(ctx, testCourier))
	suite.Require().NoError(uow.Commit(ctx))

	now := time.Now().UTC()
	suite.Require().NoError(testShipment.ChangeStatus(shipment.StatusInTransit, "courier-1", "picked up", now))
	suite.Require().NoError(testShipment.ChangeStatus(shipment.StatusOutForDelivery, "courier-1", "final leg", now))
	suite.Require().NoError(testShipment.ChangeStatus(shipment.StatusDelivered, "courier-1", "delivered", now))
	suite.Require().NoError(testCourier.Release(testShipment.ID()))

	uow = suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ShipmentRepository().Update(ctx, testShipment))
	suite.Require().NoError(uow.CourierRepository().Update(ctx, testCourier))
	suite.Require().NoError(uow.Commit(ctx))

	newUow := suite.factory.Create()

	restoredShipment, err := newUow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.StatusDelivered, restoredShipment.Status())
	suite.NotNil(restoredShipment.DeliveredDate())
	suite.Len(restoredShipment.History(), 5)

	restoredCourier, err := newUow.CourierRepository().Get(ctx, testCourier.ID())
	suite.Require().NoError(err)
	suite.Equal(courier.AvailabilityAvailable, restoredCourier.Availability())
	suite.Equal(0, restoredCourier.AssignedCount())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(&suite.Suite)
	testCourier := createTestCourier(&suite.Suite)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.CourierRepository().Add(ctx, testCourier)
	suite.Require().NoError(err)

	// Visible inside the transaction
	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")

	_, err = newUow.CourierRepository().Get(ctx, testCourier.ID())
	suite.Require().Error(err, "Courier should not exist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	van, err := vehicle.NewVehicle("AA-12-BB", vehicle.TypeVan, 0)
	suite.Require().NoError(err)

	err = uow.VehicleRepository().Add(ctx, van)
	suite.Require().NoError(err)

	restored, err := suite.factory.Create().VehicleRepository().Get(ctx, "AA-12-BB")
	suite.Require().NoError(err)
	suite.Equal(vehicle.TypeVan, restored.Type())
	suite.True(restored.IsAvailable())
}

// createTestAddress creates a valid address in the given zone.
func createTestAddress(s *suite.Suite, zone kernel.Zone) kernel.Address {
	address, err := kernel.NewAddress("12 Harbor Rd", "Porto", "PT", "4000-001", "Portugal", zone, nil)
	s.Require().NoError(err)
	return address
}

// createTestOrder creates a valid order for testing purposes.
func createTestOrder(s *suite.Suite) *order.Order {
	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		createTestAddress(s, kernel.ZoneCentral),
		createTestAddress(s, kernel.ZoneNorth),
		time.Now().UTC(), false)
	s.Require().NoError(err)
	return testOrder
}

// createTestShipment creates a valid pending shipment for testing purposes.
func createTestShipment(s *suite.Suite) *shipment.Shipment {
	pack, err := shipment.NewPackage(30, 30, 30, 5)
	s.Require().NoError(err)

	insurance, err := shipment.NewAdditionalService(shipment.ServiceInsurance, 1.5)
	s.Require().NoError(err)

	costs, err := shipment.NewCostBreakdown(5, 9.6, 6, 0.675, 1.5, 0, 22.775)
	s.Require().NoError(err)

	now := time.Now().UTC()
	testShipment, err := shipment.NewShipment(
		kernel.NewUUID(), kernel.NewUUID(),
		createTestAddress(s, kernel.ZoneCentral),
		createTestAddress(s, kernel.ZoneNorth),
		pack, 3, []shipment.AdditionalService{insurance}, costs,
		now, now.Add(48*time.Hour))
	s.Require().NoError(err)
	return testShipment
}

// createTestCourier creates a valid city-wide courier for testing purposes.
func createTestCourier(s *suite.Suite) *courier.Courier {
	testCourier, err := courier.NewCourier(kernel.NewUUID(), "Ana Silva", kernel.ZoneCityWide)
	s.Require().NoError(err)
	return testCourier
}

// TestUnitOfWorkIntegrationTestSuite runs the integration test suite.
// Skips if running in short mode since it requires Docker.
func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
