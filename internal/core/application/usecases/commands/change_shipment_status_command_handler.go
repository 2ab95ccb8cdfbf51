package commands

import (
	"context"
	"fmt"
	"time"

	"shipcore/internal/core/domain/model/kernel"
	"shipcore/internal/core/domain/model/shipment"
	"shipcore/internal/core/ports"
)

// ChangeShipmentStatusCommandHandler advances a shipment's status and runs
// the resource release side effects inside the same transaction: entering
// DELIVERED frees the courier, entering RETURNED or CANCELLED frees the
// courier and their vehicle.
type ChangeShipmentStatusCommandHandler struct {
	uowFactory FleetUoWFactory
	notifier   ports.NotificationSink
}

// NewChangeShipmentStatusCommandHandler creates a handler for status changes.
func NewChangeShipmentStatusCommandHandler(
	uowFactory FleetUoWFactory,
	notifier ports.NotificationSink,
) ChangeShipmentStatusCommandHandler {
	return ChangeShipmentStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the status change command. An illegal transition fails
// the whole operation and leaves every aggregate untouched.
func (h *ChangeShipmentStatusCommandHandler) Handle(ctx context.Context, cmd ChangeShipmentStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	aggregate, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	// Cancellation clears the courier binding, so capture it first.
	courierID := aggregate.CourierID()

	if err = aggregate.ChangeStatus(cmd.NewStatus(), cmd.ChangedBy(), cmd.Reason(), time.Now().UTC()); err != nil {
		return err
	}

	if cmd.NewStatus().FreesResources() && courierID != nil {
		if err = h.releaseResources(ctx, uow, aggregate, *courierID, cmd.NewStatus()); err != nil {
			return err
		}
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(cmd.ChangedBy(), "SHIPMENT_STATUS_CHANGED",
		fmt.Sprintf("shipment %s is now %s", aggregate.ID(), cmd.NewStatus()))
	return nil
}

// releaseResources frees the courier, and for exception paths also their
// vehicle, after a terminal status is entered.
func (h *ChangeShipmentStatusCommandHandler) releaseResources(
	ctx context.Context,
	uow FleetUoW,
	aggregate *shipment.Shipment,
	courierID kernel.UUID,
	newStatus shipment.Status,
) error {
	courierRepo := uow.CourierRepository()
	assignee, err := courierRepo.Get(ctx, courierID)
	if err != nil {
		return err
	}

	if err = assignee.Release(aggregate.ID()); err != nil {
		return err
	}

	if newStatus != shipment.StatusDelivered && assignee.VehiclePlate() != nil {
		vehicleRepo := uow.VehicleRepository()
		ride, vehicleErr := vehicleRepo.Get(ctx, *assignee.VehiclePlate())
		if vehicleErr != nil {
			return vehicleErr
		}
		ride.Release()
		assignee.ClearVehicle()
		if vehicleErr = vehicleRepo.Update(ctx, ride); vehicleErr != nil {
			return vehicleErr
		}
	}

	return courierRepo.Update(ctx, assignee)
}
