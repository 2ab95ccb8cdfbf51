package commands_test

import (
	"context"
	"testing"
	"time"

	"shipcore/internal/core/application/usecases/commands"
	"shipcore/internal/core/domain/model/courier"
	"shipcore/internal/core/domain/model/kernel"
	"shipcore/internal/core/domain/model/order"
	"shipcore/internal/core/domain/model/shipment"
	"shipcore/internal/core/domain/model/vehicle"
	"shipcore/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllPendingApproval(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetAllPendingAssignment(ctx context.Context) ([]*shipment.Shipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) GetAllAvailable(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, plate string) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) GetAllAvailable(ctx context.Context) ([]*vehicle.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vehicle.Vehicle), args.Error(1)
}

// MockUoW satisfies every narrow unit of work interface so each test wires
// only the repositories its handler touches.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

func (m *MockUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockOrderShipmentUoWFactory struct{ mock.Mock }

func (m *MockOrderShipmentUoWFactory) Create() commands.OrderShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderShipmentUoW)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}

type MockFleetUoWFactory struct{ mock.Mock }

func (m *MockFleetUoWFactory) Create() commands.FleetUoW {
	args := m.Called()
	return args.Get(0).(commands.FleetUoW)
}

type MockNotificationSink struct{ mock.Mock }

func (m *MockNotificationSink) Notify(recipientID, notificationType, message string) {
	m.Called(recipientID, notificationType, message)
}

// silentNotifier is used where the notification content is not under test.
func silentNotifier() *MockNotificationSink {
	notifier := new(MockNotificationSink)
	notifier.On("Notify", mock.Anything, mock.Anything, mock.Anything).Maybe()
	return notifier
}

func cmdAddress(t *testing.T, zone kernel.Zone) kernel.Address {
	t.Helper()
	address, err := kernel.NewAddress("12 Harbor Rd", "Porto", "PT", "4000-001", "Portugal", zone, nil)
	require.NoError(t, err)
	return address
}

func cmdPackage(t *testing.T) shipment.Package {
	t.Helper()
	pack, err := shipment.NewPackage(30, 30, 30, 5)
	require.NoError(t, err)
	return pack
}

func cmdCosts(t *testing.T) shipment.CostBreakdown {
	t.Helper()
	costs, err := shipment.NewCostBreakdown(5, 9.6, 6, 0.675, 0, 0, 21.275)
	require.NoError(t, err)
	return costs
}

func cmdPickup(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
}

func cmdOrder(t *testing.T, payLater bool) *order.Order {
	t.Helper()
	aggregate, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		cmdAddress(t, kernel.ZoneCentral), cmdAddress(t, kernel.ZoneNorth),
		cmdPickup(t), payLater)
	require.NoError(t, err)
	return aggregate
}

func cmdPendingShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	aggregate, err := shipment.NewShipment(
		kernel.NewUUID(), kernel.NewUUID(),
		cmdAddress(t, kernel.ZoneCentral), cmdAddress(t, kernel.ZoneNorth),
		cmdPackage(t), 3, nil, cmdCosts(t),
		cmdPickup(t), cmdPickup(t).Add(5*time.Hour))
	require.NoError(t, err)
	return aggregate
}

func cmdCourier(t *testing.T, coverage kernel.Zone) *courier.Courier {
	t.Helper()
	aggregate, err := courier.NewCourier(kernel.NewUUID(), "Ana Silva", coverage)
	require.NoError(t, err)
	return aggregate
}
