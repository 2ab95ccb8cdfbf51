package commands

import (
	"context"

	"shipcore/internal/core/domain/model/kernel"
	"shipcore/internal/core/domain/model/shipment"
	"shipcore/internal/core/domain/model/vehicle"
	"shipcore/internal/core/domain/services"
)

// highPriorityThreshold marks priorities that bias vehicle selection toward
// the fast types.
const highPriorityThreshold = 4

// SetCourierVehicleCommandHandler binds a vehicle to a courier or clears the
// binding. A new vehicle must fit every shipment the courier currently
// carries; the old vehicle returns to the available pool.
type SetCourierVehicleCommandHandler struct {
	uowFactory FleetUoWFactory
	selector   services.VehicleSelector
}

// NewSetCourierVehicleCommandHandler creates a handler for vehicle binding.
func NewSetCourierVehicleCommandHandler(
	uowFactory FleetUoWFactory,
	selector services.VehicleSelector,
) SetCourierVehicleCommandHandler {
	return SetCourierVehicleCommandHandler{
		uowFactory: uowFactory,
		selector:   selector,
	}
}

// Handle processes the vehicle binding command.
func (h *SetCourierVehicleCommandHandler) Handle(ctx context.Context, cmd SetCourierVehicleCommand) error {
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

	courierRepo := uow.CourierRepository()
	assignee, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	previousPlate := assignee.VehiclePlate()

	if cmd.Plate() == "" {
		assignee.ClearVehicle()
	} else {
		if err = h.bindVehicle(ctx, uow, assignee.AssignedShipments(), cmd.Plate()); err != nil {
			return err
		}
		if err = assignee.SetVehicle(cmd.Plate()); err != nil {
			return err
		}
	}

	if previousPlate != nil && *previousPlate != cmd.Plate() {
		if err = h.releaseVehicle(ctx, uow, *previousPlate); err != nil {
			return err
		}
	}

	if err = courierRepo.Update(ctx, assignee); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// bindVehicle reserves the vehicle after checking it can carry every
// shipment currently assigned to the courier, and stamps its plate on those
// shipments.
func (h *SetCourierVehicleCommandHandler) bindVehicle(
	ctx context.Context, uow FleetUoW, shipmentIDs []kernel.UUID, plate string,
) error {
	vehicleRepo := uow.VehicleRepository()
	ride, err := vehicleRepo.Get(ctx, plate)
	if err != nil {
		return err
	}

	if err = h.restampShipments(ctx, uow, shipmentIDs, ride, plate); err != nil {
		return err
	}

	if err = ride.Reserve(); err != nil {
		return err
	}
	return vehicleRepo.Update(ctx, ride)
}

// restampShipments checks the vehicle against every assigned shipment's
// package profile and stamps the new plate on them.
func (h *SetCourierVehicleCommandHandler) restampShipments(
	ctx context.Context, uow FleetUoW, shipmentIDs []kernel.UUID, ride *vehicle.Vehicle, plate string,
) error {
	if len(shipmentIDs) == 0 {
		return nil
	}

	shipmentRepo := uow.ShipmentRepository()
	for _, shipmentID := range shipmentIDs {
		aggregate, err := shipmentRepo.Get(ctx, shipmentID)
		if err != nil {
			return err
		}

		pack := aggregate.Package()
		if err = h.selector.Validate(
			ride.Type(),
			pack.WeightKg(),
			pack.VolumeM3(),
			aggregate.Priority() >= highPriorityThreshold,
			aggregate.HasService(shipment.ServiceFragile),
		); err != nil {
			return err
		}

		if err = aggregate.AssignVehicle(plate); err != nil {
			return err
		}
		if err = shipmentRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return nil
}

// releaseVehicle returns the previously bound vehicle to the pool.
func (h *SetCourierVehicleCommandHandler) releaseVehicle(ctx context.Context, uow FleetUoW, plate string) error {
	vehicleRepo := uow.VehicleRepository()
	ride, err := vehicleRepo.Get(ctx, plate)
	if err != nil {
		return err
	}
	ride.Release()
	return vehicleRepo.Update(ctx, ride)
}
