package queries_test

import (
	"context"
	"testing"
	"time"

	"shipcore/internal/adapters/out/postgres/courierrepo"
	"shipcore/internal/core/application/usecases/queries"
	"shipcore/internal/core/domain/model/courier"
	"shipcore/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repository tracker without recording anything.
// Query tests persist fixtures outside a unit of work.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetAllCouriersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAllCouriersQueryHandler
}

func (suite *GetAllCouriersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&courierrepo.CourierDTO{}, &courierrepo.AssignmentDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAllCouriersQueryHandler(db)
}

func (suite *GetAllCouriersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAllCouriersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE couriers, courier_assignments").Error
	suite.Require().NoError(err)
}

func (suite *GetAllCouriersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetAllCouriersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAllCouriersQueryHandlerTestSuite) TestHandle_WithCouriers_ReturnsAllOrderedByName() {
	repo := courierrepo.NewGormCourierRepository(suite.db, noopTracker{})
	ctx := context.Background()

	alice := suite.createCourier("Alice", kernel.ZoneCityWide)
	bob := suite.createCourier("Bob", kernel.ZoneNorth)
	charlie := suite.createCourier("Charlie", kernel.ZoneSouth)

	shipmentID := kernel.NewUUID()
	suite.Require().NoError(bob.Reserve(shipmentID, kernel.ZoneNorth))
	suite.Require().NoError(charlie.SetVehicle("AA-12-BB"))

	for _, aggregate := range []*courier.Courier{alice, bob, charlie} {
		suite.Require().NoError(repo.Add(ctx, aggregate))
	}

	result, err := suite.handler.Handle(ctx, queries.NewGetAllCouriersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	suite.Equal("Alice", result[0].Name)
	suite.Equal(alice.ID(), result[0].ID)
	suite.Equal(kernel.ZoneCityWide, result[0].Coverage)
	suite.Equal(courier.AvailabilityAvailable, result[0].Availability)
	suite.Equal(0, result[0].AssignedCount)
	suite.Nil(result[0].VehiclePlate)

	suite.Equal("Bob", result[1].Name)
	suite.Equal(courier.AvailabilityInTransit, result[1].Availability)
	suite.Equal(1, result[1].AssignedCount)

	suite.Equal("Charlie", result[2].Name)
	suite.Require().NotNil(result[2].VehiclePlate)
	suite.Equal("AA-12-BB", *result[2].VehiclePlate)
}

func (suite *GetAllCouriersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAllCouriersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetAllCouriersQuery constructor")
}

func (suite *GetAllCouriersQueryHandlerTestSuite) createCourier(name string, coverage kernel.Zone) *courier.Courier {
	aggregate, err := courier.NewCourier(kernel.NewUUID(), name, coverage)
	suite.Require().NoError(err)
	return aggregate
}

func TestGetAllCouriersQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	suite.Run(t, new(GetAllCouriersQueryHandlerTestSuite))
}
