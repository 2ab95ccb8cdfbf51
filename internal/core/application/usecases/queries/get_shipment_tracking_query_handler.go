package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"shipcore/internal/core/domain/model/kernel"
	"shipcore/internal/core/domain/model/shipment"
	"shipcore/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentTrackingQueryHandler builds the tracking view of a shipment
// from two direct SQL reads: the shipment header and its status history.
//
// Example:
//
//	handler := NewGetShipmentTrackingQueryHandler(db)
//	query, _ := NewGetShipmentTrackingQuery(shipmentID)
//
//	tracking, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("shipment %s: %s (%d events)\n",
//	    tracking.ID, tracking.Status, len(tracking.History))
type GetShipmentTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentTrackingQueryHandler creates a handler for tracking queries.
// Requires a GORM database connection for query execution.
func NewGetShipmentTrackingQueryHandler(db *gorm.DB) GetShipmentTrackingQueryHandler {
	return GetShipmentTrackingQueryHandler{db: db}
}

// Handle executes the tracking query. Returns ObjectNotFoundError when the
// shipment does not exist; history events come back in the order they were
// recorded.
func (h GetShipmentTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentTrackingQuery,
) (GetShipmentTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentTrackingQueryResponse{}, err
	}

	response, err := h.readHeader(ctx, query.ShipmentID())
	if err != nil {
		return GetShipmentTrackingQueryResponse{}, err
	}

	history, err := h.readHistory(ctx, query.ShipmentID())
	if err != nil {
		return GetShipmentTrackingQueryResponse{}, err
	}
	response.History = history

	return response, nil
}

func (h GetShipmentTrackingQueryHandler) readHeader(
	ctx context.Context, shipmentID kernel.UUID,
) (GetShipmentTrackingQueryResponse, error) {
	var response GetShipmentTrackingQueryResponse
	var status string
	var courierID *uuid.UUID
	var deliveredDate sql.NullTime

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			courier_id,
			vehicle_plate,
			estimated_date,
			delivered_date
		FROM shipments
		WHERE id = ?
	`, shipmentID.String()).Row()

	err := row.Scan(&status, &courierID, &response.VehiclePlate, &response.EstimatedDate, &deliveredDate)
	if errors.Is(err, sql.ErrNoRows) {
		return response, errs.NewObjectNotFoundError("shipment", shipmentID.String())
	}
	if err != nil {
		return response, err
	}

	response.ID = shipmentID

	shipmentStatus, err := shipment.StatusFromString(status)
	if err != nil {
		return response, err
	}
	response.Status = shipmentStatus

	if courierID != nil {
		assignee, idErr := kernel.UUIDFromBytes(courierID[:])
		if idErr != nil {
			return response, idErr
		}
		response.CourierID = &assignee
	}
	if deliveredDate.Valid {
		delivered := deliveredDate.Time
		response.DeliveredDate = &delivered
	}

	return response, nil
}

func (h GetShipmentTrackingQueryHandler) readHistory(
	ctx context.Context, shipmentID kernel.UUID,
) ([]TrackingEvent, error) {
	history := make([]TrackingEvent, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			previous_status,
			next_status,
			changed_at,
			changed_by,
			reason
		FROM shipment_status_changes
		WHERE shipment_id = ?
		ORDER BY seq
	`, shipmentID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var event TrackingEvent
		var previous *string
		var next string
		var changedAt time.Time

		if err = rows.Scan(&previous, &next, &changedAt, &event.ChangedBy, &event.Reason); err != nil {
			return nil, err
		}

		if previous != nil {
			previousStatus, statusErr := shipment.StatusFromString(*previous)
			if statusErr != nil {
				return nil, statusErr
			}
			event.Previous = &previousStatus
		}

		nextStatus, statusErr := shipment.StatusFromString(next)
		if statusErr != nil {
			return nil, statusErr
		}
		event.Status = nextStatus
		event.ChangedAt = changedAt

		history = append(history, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
