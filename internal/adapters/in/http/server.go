// Package http exposes the engine's operations over a REST API built on
// echo. Commands and queries are wired in through the application layer;
// this package only translates between JSON payloads and domain values.
package http

import (
	"errors"
	"net/http"

	"shipcore/internal/core/application/usecases/commands"
	"shipcore/internal/core/application/usecases/queries"
	"shipcore/internal/core/domain/model/courier"
	"shipcore/internal/core/domain/model/kernel"
	"shipcore/internal/core/domain/model/order"
	"shipcore/internal/core/domain/model/shipment"
	"shipcore/internal/core/domain/model/vehicle"
	"shipcore/internal/core/domain/services"
	"shipcore/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	markOrderPaidHandler     commands.MarkOrderPaidCommandHandler
	approveOrderHandler      commands.ApproveOrderCommandHandler
	rejectOrderHandler       commands.RejectOrderCommandHandler
	assignCourierHandler     commands.AssignCourierCommandHandler
	autoAssignHandler        commands.AutoAssignCouriersCommandHandler
	changeStatusHandler      commands.ChangeShipmentStatusCommandHandler
	registerIncidentHandler  commands.RegisterIncidentCommandHandler
	setCourierVehicleHandler commands.SetCourierVehicleCommandHandler

	// Query handlers
	quoteHandler          queries.QuoteShipmentQueryHandler
	getAllCouriersHandler queries.GetAllCouriersQueryHandler
	getUnassignedHandler  queries.GetUnassignedShipmentsQueryHandler
	getTrackingHandler    queries.GetShipmentTrackingQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	markOrderPaidHandler commands.MarkOrderPaidCommandHandler,
	approveOrderHandler commands.ApproveOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	assignCourierHandler commands.AssignCourierCommandHandler,
	autoAssignHandler commands.AutoAssignCouriersCommandHandler,
	changeStatusHandler commands.ChangeShipmentStatusCommandHandler,
	registerIncidentHandler commands.RegisterIncidentCommandHandler,
	setCourierVehicleHandler commands.SetCourierVehicleCommandHandler,
	quoteHandler queries.QuoteShipmentQueryHandler,
	getAllCouriersHandler queries.GetAllCouriersQueryHandler,
	getUnassignedHandler queries.GetUnassignedShipmentsQueryHandler,
	getTrackingHandler queries.GetShipmentTrackingQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		markOrderPaidHandler:     markOrderPaidHandler,
		approveOrderHandler:      approveOrderHandler,
		rejectOrderHandler:       rejectOrderHandler,
		assignCourierHandler:     assignCourierHandler,
		autoAssignHandler:        autoAssignHandler,
		changeStatusHandler:      changeStatusHandler,
		registerIncidentHandler:  registerIncidentHandler,
		setCourierVehicleHandler: setCourierVehicleHandler,
		quoteHandler:             quoteHandler,
		getAllCouriersHandler:    getAllCouriersHandler,
		getUnassignedHandler:     getUnassignedHandler,
		getTrackingHandler:       getTrackingHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/payment", s.MarkOrderPaid)
	api.POST("/orders/:id/approval", s.ApproveOrder)
	api.POST("/orders/:id/rejection", s.RejectOrder)

	api.POST("/quotes", s.QuoteShipment)

	api.GET("/couriers", s.GetCouriers)
	api.PUT("/couriers/:id/vehicle", s.SetCourierVehicle)

	api.GET("/shipments/unassigned", s.GetUnassignedShipments)
	api.GET("/shipments/:id/tracking", s.GetShipmentTracking)
	api.POST("/shipments/:id/assignment", s.AssignCourier)
	api.POST("/shipments/:id/status", s.ChangeShipmentStatus)
	api.POST("/shipments/:id/incidents", s.RegisterIncident)

	api.POST("/assignments/sweep", s.RunAssignmentSweep)
}

// CreateOrder handles POST /api/v1/orders - registers a new customer order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(request.UserID)
	if err != nil {
		return writeError(ctx, err)
	}
	origin, err := parseAddress(request.Origin)
	if err != nil {
		return writeError(ctx, err)
	}
	destination, err := parseAddress(request.Destination)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, userID, origin, destination, request.PayLater)
	if err != nil {
		return writeError(ctx, err)
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{OrderID: orderID.String()})
}

// MarkOrderPaid handles POST /api/v1/orders/:id/payment - records a payment.
func (s *Server) MarkOrderPaid(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request MarkOrderPaidRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewMarkOrderPaidCommand(orderID, request.PaymentID)
	if err != nil {
		return writeError(ctx, err)
	}

	if handleErr := s.markOrderPaidHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApproveOrder handles POST /api/v1/orders/:id/approval - promotes the order
// to a shipment with the given parcel profile and services.
func (s *Server) ApproveOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request ApproveOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	pack, err := parsePackage(request.Package)
	if err != nil {
		return writeError(ctx, err)
	}
	serviceTypes, err := parseServiceTypes(request.Services)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewApproveOrderCommand(orderID, pack, request.Priority, serviceTypes, request.PickupAt)
	if err != nil {
		return writeError(ctx, err)
	}

	if handleErr := s.approveOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectOrder handles POST /api/v1/orders/:id/rejection - cancels the order.
func (s *Server) RejectOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRejectOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if handleErr := s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// QuoteShipment handles POST /api/v1/quotes - prices a prospective shipment.
func (s *Server) QuoteShipment(ctx echo.Context) error {
	var request QuoteRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	origin, err := parseAddress(request.Origin)
	if err != nil {
		return writeError(ctx, err)
	}
	destination, err := parseAddress(request.Destination)
	if err != nil {
		return writeError(ctx, err)
	}
	pack, err := parsePackage(request.Package)
	if err != nil {
		return writeError(ctx, err)
	}
	serviceTypes, err := parseServiceTypes(request.Services)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewQuoteShipmentQuery(
		origin, destination, pack, request.Priority, serviceTypes, request.PickupAt)
	if err != nil {
		return writeError(ctx, err)
	}

	quote, err := s.quoteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := QuoteResponse{
		Costs: CostBreakdown{
			BaseCost:     quote.Costs.BaseCost,
			DistanceCost: quote.Costs.DistanceCost,
			WeightCost:   quote.Costs.WeightCost,
			VolumeCost:   quote.Costs.VolumeCost,
			ServicesCost: quote.Costs.ServicesCost,
			PriorityCost: quote.Costs.PriorityCost,
			TotalCost:    quote.Costs.TotalCost,
		},
		Services:           make([]QuoteService, 0, len(quote.Services)),
		DistanceKm:         quote.DistanceKm,
		EstimatedDelivery:  quote.EstimatedDelivery,
		RecommendedVehicle: quote.RecommendedVehicle.String(),
	}
	for _, service := range quote.Services {
		response.Services = append(response.Services, QuoteService{
			Type: service.Type().String(),
			Cost: service.Cost(),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCouriers handles GET /api/v1/couriers - retrieves all couriers.
func (s *Server) GetCouriers(ctx echo.Context) error {
	query := queries.NewGetAllCouriersQuery()

	couriers, err := s.getAllCouriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Courier, 0, len(couriers))
	for _, row := range couriers {
		response = append(response, Courier{
			ID:            row.ID.String(),
			Name:          row.Name,
			Coverage:      row.Coverage.String(),
			Availability:  row.Availability.String(),
			VehiclePlate:  row.VehiclePlate,
			AssignedCount: row.AssignedCount,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// SetCourierVehicle handles PUT /api/v1/couriers/:id/vehicle - binds a
// vehicle to a courier, or clears the binding when the plate is empty.
func (s *Server) SetCourierVehicle(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request SetCourierVehicleRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetCourierVehicleCommand(courierID, request.Plate)
	if err != nil {
		return writeError(ctx, err)
	}

	if handleErr := s.setCourierVehicleHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUnassignedShipments handles GET /api/v1/shipments/unassigned -
// retrieves the assignment backlog.
func (s *Server) GetUnassignedShipments(ctx echo.Context) error {
	query := queries.NewGetUnassignedShipmentsQuery()

	backlog, err := s.getUnassignedHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]UnassignedShipment, 0, len(backlog))
	for _, row := range backlog {
		response = append(response, UnassignedShipment{
			ID:              row.ID.String(),
			DestinationCity: row.DestinationCity,
			DestinationZone: row.DestinationZone.String(),
			Priority:        row.Priority,
			WeightKg:        row.WeightKg,
			TotalCost:       row.TotalCost,
			CreatedAt:       row.CreatedAt,
			EstimatedDate:   row.EstimatedDate,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShipmentTracking handles GET /api/v1/shipments/:id/tracking - retrieves
// the tracking view with the full status history.
func (s *Server) GetShipmentTracking(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetShipmentTrackingQuery(shipmentID)
	if err != nil {
		return writeError(ctx, err)
	}

	tracking, err := s.getTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, trackingFromResponse(tracking))
}

// AssignCourier handles POST /api/v1/shipments/:id/assignment - manually
// assigns the chosen courier to the shipment.
func (s *Server) AssignCourier(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request AssignCourierRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromString(request.CourierID)
	if err != nil {
		return writeError(ctx, err)
	}

	actor := headerAuthenticationContext{request: ctx.Request()}
	cmd, err := commands.NewAssignCourierCommand(shipmentID, courierID, actor.CurrentActorID())
	if err != nil {
		return writeError(ctx, err)
	}

	if handleErr := s.assignCourierHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeShipmentStatus handles POST /api/v1/shipments/:id/status - moves the
// shipment through its lifecycle.
func (s *Server) ChangeShipmentStatus(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request ChangeShipmentStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	newStatus, err := shipment.StatusFromString(request.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	actor := headerAuthenticationContext{request: ctx.Request()}
	cmd, err := commands.NewChangeShipmentStatusCommand(shipmentID, newStatus, request.Reason, actor.CurrentActorID())
	if err != nil {
		return writeError(ctx, err)
	}

	if handleErr := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RegisterIncident handles POST /api/v1/shipments/:id/incidents - records an
// exception against the shipment.
func (s *Server) RegisterIncident(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request RegisterIncidentRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	incidentType, err := shipment.IncidentTypeFromString(request.Type)
	if err != nil {
		return writeError(ctx, err)
	}

	actor := headerAuthenticationContext{request: ctx.Request()}
	cmd, err := commands.NewRegisterIncidentCommand(shipmentID, incidentType, request.Description, actor.CurrentActorID())
	if err != nil {
		return writeError(ctx, err)
	}

	if handleErr := s.registerIncidentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RunAssignmentSweep handles POST /api/v1/assignments/sweep - matches pending
// shipments with available couriers and reports how many were assigned.
func (s *Server) RunAssignmentSweep(ctx echo.Context) error {
	cmd, err := commands.NewAutoAssignCouriersCommand()
	if err != nil {
		return writeError(ctx, err)
	}

	assigned, err := s.autoAssignHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AutoAssignResponse{Assigned: assigned})
}

// badRequest writes a 400 error with the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps domain and application errors to HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrIllegalTransition),
		errors.Is(err, order.ErrShipmentAlreadyCreated),
		errors.Is(err, shipment.ErrIncidentAlreadyRegistered),
		errors.Is(err, courier.ErrCourierNotAvailable),
		errors.Is(err, courier.ErrCoverageMismatch),
		errors.Is(err, vehicle.ErrVehicleNotAvailable),
		errors.Is(err, services.ErrVehicleIncompatible):
		code = http.StatusConflict
	case errors.Is(err, services.ErrGeocodingUnavailable):
		code = http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
