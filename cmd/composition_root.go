package cmd

import (
	"log/slog"

	httpin "shipcore/internal/adapters/in/http"
	"shipcore/internal/adapters/out/geo"
	"shipcore/internal/adapters/out/notify"
	"shipcore/internal/adapters/out/postgres"
	"shipcore/internal/core/application/usecases/commands"
	"shipcore/internal/core/application/usecases/queries"
	"shipcore/internal/core/domain/services"
	"shipcore/internal/core/ports"
	"shipcore/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires the application together: domain services,
// persistence, notifications and the use case handlers built on top of them.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	pricing    *services.PricingEngine
	dispatcher services.ShipmentDispatcher
	selector   services.VehicleSelector
	notifier   ports.NotificationSink
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph from the configuration and the
// database connection.
func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	pricing, err := services.NewPricingEngine(services.DefaultTariff(), geo.NewHaversineCalculator())
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		pricing:    pricing,
		dispatcher: services.NewShipmentDispatcher(),
		selector:   services.NewVehicleSelector(),
		notifier:   notify.NewSlogSink(logger),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkOrderPaidCommandHandler() commands.MarkOrderPaidCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOrderPaidCommandHandler(f)
}

func (c *CompositionRoot) CreateApproveOrderCommandHandler() commands.ApproveOrderCommandHandler {
	var f commands.OrderShipmentUoWFactory = FuncOrderShipmentUoWFactory(func() commands.OrderShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveOrderCommandHandler(f, c.pricing, c.notifier)
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateAutoAssignCouriersCommandHandler() commands.AutoAssignCouriersCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAutoAssignCouriersCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateChangeShipmentStatusCommandHandler() commands.ChangeShipmentStatusCommandHandler {
	var f commands.FleetUoWFactory = FuncFleetUoWFactory(func() commands.FleetUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeShipmentStatusCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateRegisterIncidentCommandHandler() commands.RegisterIncidentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterIncidentCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateSetCourierVehicleCommandHandler() commands.SetCourierVehicleCommandHandler {
	var f commands.FleetUoWFactory = FuncFleetUoWFactory(func() commands.FleetUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetCourierVehicleCommandHandler(f, c.selector)
}

func (c *CompositionRoot) CreateQuoteShipmentQueryHandler() queries.QuoteShipmentQueryHandler {
	return queries.NewQuoteShipmentQueryHandler(c.pricing, c.selector)
}

func (c *CompositionRoot) CreateGetAllCouriersQueryHandler() queries.GetAllCouriersQueryHandler {
	return queries.NewGetAllCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnassignedShipmentsQueryHandler() queries.GetUnassignedShipmentsQueryHandler {
	return queries.NewGetUnassignedShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentTrackingQueryHandler() queries.GetShipmentTrackingQueryHandler {
	return queries.NewGetShipmentTrackingQueryHandler(c.gormDB)
}

// CreateHTTPServer builds the REST adapter with every handler wired in.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateMarkOrderPaidCommandHandler(),
		c.CreateApproveOrderCommandHandler(),
		c.CreateRejectOrderCommandHandler(),
		c.CreateAssignCourierCommandHandler(),
		c.CreateAutoAssignCouriersCommandHandler(),
		c.CreateChangeShipmentStatusCommandHandler(),
		c.CreateRegisterIncidentCommandHandler(),
		c.CreateSetCourierVehicleCommandHandler(),
		c.CreateQuoteShipmentQueryHandler(),
		c.CreateGetAllCouriersQueryHandler(),
		c.CreateGetUnassignedShipmentsQueryHandler(),
		c.CreateGetShipmentTrackingQueryHandler(),
	)
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateAutoAssignCouriersCommandHandler(), c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncOrderShipmentUoWFactory func() commands.OrderShipmentUoW

func (f FuncOrderShipmentUoWFactory) Create() commands.OrderShipmentUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncFleetUoWFactory func() commands.FleetUoW

func (f FuncFleetUoWFactory) Create() commands.FleetUoW {
	return f()
}
