package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	httpadapter "portops/internal/adapters/in/http"
	"portops/internal/adapters/out/postgres"
	"portops/internal/core/application/usecases/commands"
	"portops/internal/core/application/usecases/queries"
	"portops/internal/core/domain/services"
	"portops/internal/jobs"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	checker    services.CompatibilityChecker
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		checker:    services.NewCompatibilityChecker(),
	}
}

func (c *CompositionRoot) CreateCreateBookingCommandHandler() commands.CreateBookingCommandHandler {
	var f commands.BookingUoWFactory = FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateBookingCommandHandler(f, c.checker)
}

func (c *CompositionRoot) CreateUpdateBookingCommandHandler() commands.UpdateBookingCommandHandler {
	var f commands.BookingUoWFactory = FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateBookingCommandHandler(f, c.checker)
}

func (c *CompositionRoot) CreateDeleteBookingCommandHandler() commands.DeleteBookingCommandHandler {
	var f commands.BookingUoWFactory = FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteBookingCommandHandler(f)
}

func (c *CompositionRoot) CreateShipCommandHandler() commands.ShipCommandHandler {
	return commands.NewShipCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateDockCommandHandler() commands.DockCommandHandler {
	return commands.NewDockCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCargoTypeCommandHandler() commands.CargoTypeCommandHandler {
	return commands.NewCargoTypeCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCompanyCommandHandler() commands.CompanyCommandHandler {
	return commands.NewCompanyCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateGetBookingQueryHandler() queries.GetBookingQueryHandler {
	return queries.NewGetBookingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListBookingsQueryHandler() queries.ListBookingsQueryHandler {
	return queries.NewListBookingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCatalogQueryHandler() queries.CatalogQueryHandler {
	return queries.NewCatalogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateScheduleDigestQueryHandler() queries.ScheduleDigestQueryHandler {
	return queries.NewScheduleDigestQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every command and query handler into the inbound
// HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateBookingCommandHandler(),
		c.CreateUpdateBookingCommandHandler(),
		c.CreateDeleteBookingCommandHandler(),
		c.CreateShipCommandHandler(),
		c.CreateDockCommandHandler(),
		c.CreateCargoTypeCommandHandler(),
		c.CreateCompanyCommandHandler(),
		c.CreateGetBookingQueryHandler(),
		c.CreateListBookingsQueryHandler(),
		c.CreateCatalogQueryHandler(),
	)
}

// CreateJobManager wires the background digest job.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateScheduleDigestQueryHandler(), logger)
}

func (c *CompositionRoot) catalogUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
