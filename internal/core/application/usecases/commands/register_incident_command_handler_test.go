package commands_test

import (
	"testing"

	"shipcore/internal/core/application/usecases/commands"
	"shipcore/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterIncidentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testShipment := cmdPendingShipment(t)

	cmd, err := commands.NewRegisterIncidentCommand(
		testShipment.ID(), shipment.IncidentDamage, "box crushed in depot", "ops-1")
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, testShipment.ID()).Return(testShipment, nil).Once(),
		shipmentRepo.On("Update", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationSink)
	notifier.On("Notify", "ops-1", "INCIDENT_REGISTERED", mock.Anything).Once()

	handler := commands.NewRegisterIncidentCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, testShipment.Incident())
	assert.Equal(t, shipment.IncidentDamage, testShipment.Incident().Type())
	// incident registration never touches the transit graph
	assert.Equal(t, shipment.StatusPendingAssignment, testShipment.Status())
	notifier.AssertExpectations(t)
}

func TestRegisterIncidentCommandHandler_Handle_SecondIncidentFails(t *testing.T) {
	ctx := t.Context()
	testShipment := cmdPendingShipment(t)

	first, err := shipment.NewIncident(shipment.IncidentDelay, "weather hold", cmdPickup(t))
	require.NoError(t, err)
	require.NoError(t, testShipment.RegisterIncident(first))

	cmd, err := commands.NewRegisterIncidentCommand(
		testShipment.ID(), shipment.IncidentLoss, "parcel missing", "ops-1")
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, testShipment.ID()).Return(testShipment, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationSink)

	handler := commands.NewRegisterIncidentCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, shipment.ErrIncidentAlreadyRegistered)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything)
}
