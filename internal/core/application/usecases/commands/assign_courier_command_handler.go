package commands

import (
	"context"
	"time"
)

// AssignCourierCommandHandler manually binds a courier to a shipment.
// The courier's availability and coverage are re-read inside the transaction
// so a concurrent reservation fails the whole operation instead of
// double-booking the courier.
type AssignCourierCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAssignCourierCommandHandler creates a handler for manual assignment.
func NewAssignCourierCommandHandler(uowFactory AssignmentUoWFactory) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the manual assignment command. On success the courier is
// reserved and the shipment moves to ReadyForPickup atomically.
func (h *AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) error {
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
	courierRepo := uow.CourierRepository()

	aggregate, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	assignee, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if err = assignee.Reserve(aggregate.ID(), aggregate.Destination().Zone()); err != nil {
		return err
	}

	if err = aggregate.Assign(assignee.ID(), cmd.ChangedBy(), time.Now().UTC()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}
	if err = courierRepo.Update(ctx, assignee); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
