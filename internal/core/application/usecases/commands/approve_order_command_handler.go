package commands

import (
	"context"
	"fmt"
	"time"

	"shipcore/internal/core/domain/model/kernel"
	"shipcore/internal/core/domain/model/shipment"
	"shipcore/internal/core/domain/services"
	"shipcore/internal/core/ports"
)

// ApproveOrderCommandHandler promotes an order into a shipment.
// The order moves to Approved and exactly one shipment is created in
// PendingAssignment, priced by the pricing engine, all in one transaction.
type ApproveOrderCommandHandler struct {
	uowFactory OrderShipmentUoWFactory
	pricing    *services.PricingEngine
	notifier   ports.NotificationSink
}

// NewApproveOrderCommandHandler creates a handler for order approval.
func NewApproveOrderCommandHandler(
	uowFactory OrderShipmentUoWFactory,
	pricing *services.PricingEngine,
	notifier ports.NotificationSink,
) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
		notifier:   notifier,
	}
}

// Handle processes the approval command.
//
// The handler quotes the shipment, creates it, stamps the shipment and
// invoice references on the order and persists both aggregates. A repeat
// approval fails inside Order.Approve, so a second shipment is never created.
func (h *ApproveOrderCommandHandler) Handle(ctx context.Context, cmd ApproveOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	quote, err := h.pricing.Quote(
		aggregate.Origin(), aggregate.Destination(),
		cmd.Package(), cmd.Priority(), cmd.ServiceTypes(), cmd.PickupAt())
	if err != nil {
		return err
	}

	shipmentID := kernel.NewUUID()
	newShipment, err := shipment.NewShipment(
		shipmentID, aggregate.ID(),
		aggregate.Origin(), aggregate.Destination(),
		cmd.Package(), cmd.Priority(), quote.Services, quote.Costs,
		time.Now().UTC(), quote.EstimatedDelivery)
	if err != nil {
		return err
	}

	invoiceID := fmt.Sprintf("INV-%s", shipmentID)
	if err = aggregate.Approve(shipmentID, invoiceID); err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Add(ctx, newShipment); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(aggregate.UserID().String(), "ORDER_APPROVED",
		fmt.Sprintf("order %s approved, shipment %s created", aggregate.ID(), shipmentID))
	return nil
}
