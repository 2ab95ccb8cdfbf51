package commands

import (
	"context"
	"fmt"
	"time"

	"shipcore/internal/core/domain/model/shipment"
	"shipcore/internal/core/ports"
)

// RegisterIncidentCommandHandler attaches an incident to a shipment.
// The operator separately decides whether to move the shipment to Returned.
type RegisterIncidentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	notifier   ports.NotificationSink
}

// NewRegisterIncidentCommandHandler creates a handler for incident registration.
func NewRegisterIncidentCommandHandler(
	uowFactory ShipmentUoWFactory,
	notifier ports.NotificationSink,
) RegisterIncidentCommandHandler {
	return RegisterIncidentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the incident registration command.
func (h *RegisterIncidentCommandHandler) Handle(ctx context.Context, cmd RegisterIncidentCommand) error {
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

	incident, err := shipment.NewIncident(cmd.IncidentType(), cmd.Description(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = aggregate.RegisterIncident(incident); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(cmd.ChangedBy(), "INCIDENT_REGISTERED",
		fmt.Sprintf("incident %s registered on shipment %s", cmd.IncidentType(), aggregate.ID()))
	return nil
}
