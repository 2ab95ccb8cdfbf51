package commands

import (
	"context"
	"errors"
	"time"

	"shipcore/internal/core/domain/model/shipment"
	"shipcore/internal/core/domain/services"
)

// AutoAssignCouriersCommandHandler matches pending shipments to available
// couriers in creation order. A shipment that cannot be matched is skipped
// and stays pending for the next sweep.
type AutoAssignCouriersCommandHandler struct {
	uowFactory AssignmentUoWFactory
	dispatcher services.ShipmentDispatcher
}

// NewAutoAssignCouriersCommandHandler creates a handler for the assignment sweep.
func NewAutoAssignCouriersCommandHandler(
	uowFactory AssignmentUoWFactory,
	dispatcher services.ShipmentDispatcher,
) AutoAssignCouriersCommandHandler {
	return AutoAssignCouriersCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the sweep and returns the number of shipments assigned.
// The whole sweep runs in one transaction so courier load counts stay
// consistent between matches.
func (h *AutoAssignCouriersCommandHandler) Handle(
	ctx context.Context, cmd AutoAssignCouriersCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	courierRepo := uow.CourierRepository()

	pending, err := shipmentRepo.GetAllPendingAssignment(ctx)
	if err != nil {
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}

	couriers, err := courierRepo.GetAllAvailable(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	assigned := 0
	for _, aggregate := range pending {
		matched, dispatchErr := h.dispatcher.Dispatch(aggregate, couriers, shipment.SystemActor, now)
		if dispatchErr != nil {
			if errors.Is(dispatchErr, services.ErrNoEligibleCourier) {
				continue
			}
			return 0, dispatchErr
		}

		if err = shipmentRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
		if err = courierRepo.Update(ctx, matched); err != nil {
			return 0, err
		}
		assigned++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return assigned, nil
}
