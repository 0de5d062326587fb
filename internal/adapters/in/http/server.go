package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"portops/internal/core/application/usecases/commands"
	"portops/internal/core/application/usecases/queries"
	"portops/internal/core/domain/model/booking"
	"portops/internal/core/domain/model/cargo"
	"portops/internal/core/domain/model/company"
	"portops/internal/core/domain/model/dock"
	"portops/internal/core/domain/model/ship"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createBookingHandler commands.CreateBookingCommandHandler
	updateBookingHandler commands.UpdateBookingCommandHandler
	deleteBookingHandler commands.DeleteBookingCommandHandler
	shipHandler          commands.ShipCommandHandler
	dockHandler          commands.DockCommandHandler
	cargoTypeHandler     commands.CargoTypeCommandHandler
	companyHandler       commands.CompanyCommandHandler

	// Query handlers
	getBookingHandler   queries.GetBookingQueryHandler
	listBookingsHandler queries.ListBookingsQueryHandler
	catalogHandler      queries.CatalogQueryHandler
}

// NewServer creates the HTTP server with the required command and query
// handlers.
func NewServer(
	createBookingHandler commands.CreateBookingCommandHandler,
	updateBookingHandler commands.UpdateBookingCommandHandler,
	deleteBookingHandler commands.DeleteBookingCommandHandler,
	shipHandler commands.ShipCommandHandler,
	dockHandler commands.DockCommandHandler,
	cargoTypeHandler commands.CargoTypeCommandHandler,
	companyHandler commands.CompanyCommandHandler,
	getBookingHandler queries.GetBookingQueryHandler,
	listBookingsHandler queries.ListBookingsQueryHandler,
	catalogHandler queries.CatalogQueryHandler,
) *Server {
	return &Server{
		createBookingHandler: createBookingHandler,
		updateBookingHandler: updateBookingHandler,
		deleteBookingHandler: deleteBookingHandler,
		shipHandler:          shipHandler,
		dockHandler:          dockHandler,
		cargoTypeHandler:     cargoTypeHandler,
		companyHandler:       companyHandler,
		getBookingHandler:    getBookingHandler,
		listBookingsHandler:  listBookingsHandler,
		catalogHandler:       catalogHandler,
	}
}

// RegisterRoutes mounts all routes under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/booking/CreateBooking", s.CreateBooking)
	api.GET("/booking/GetBookings", s.GetBookings)
	api.GET("/booking/:id", s.GetBooking)
	api.PUT("/booking/UpdateBooking/:id", s.UpdateBooking)
	api.PATCH("/booking/UpdateBooking/:id", s.UpdateBooking)
	api.DELETE("/booking/DeleteBooking/:id", s.DeleteBooking)

	api.POST("/ship/CreateShip", s.CreateShip)
	api.GET("/ship/GetAllShips", s.GetAllShips)
	api.GET("/ship/:id", s.GetShip)
	api.PUT("/ship/UpdateShip/:id", s.UpdateShip)
	api.PATCH("/ship/UpdateShip/:id", s.UpdateShip)
	api.DELETE("/ship/DeleteShip/:id", s.DeleteShip)

	api.POST("/dock/CreateDock", s.CreateDock)
	api.GET("/dock/GetAllDocks", s.GetAllDocks)
	api.GET("/dock/:id", s.GetDock)
	api.PUT("/dock/UpdateLength/:id", s.UpdateDockLength)
	api.PATCH("/dock/UpdateLength/:id", s.UpdateDockLength)
	api.PUT("/dock/UpdateCargo/:id", s.UpdateDockCargo)
	api.PATCH("/dock/UpdateCargo/:id", s.UpdateDockCargo)
	api.DELETE("/dock/DeleteDock/:id", s.DeleteDock)

	api.POST("/cargo/CreateCargo", s.CreateCargoType)
	api.GET("/cargo/GetCargoTypes", s.GetCargoTypes)
	api.DELETE("/cargo/DeleteCargo/:id", s.DeleteCargoType)

	api.POST("/company/create_company", s.CreateCompany)
}

// CreateBooking handles POST /api/v1/booking/CreateBooking.
func (s *Server) CreateBooking(ctx echo.Context) error {
	var req CreateBookingRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return respondError(ctx, err)
	}

	start, err := parseTimestamp("booking_start", req.BookingStart)
	if err != nil {
		return respondError(ctx, err)
	}
	var end time.Time
	if req.BookingEnd != "" {
		if end, err = parseTimestamp("booking_end", req.BookingEnd); err != nil {
			return respondError(ctx, err)
		}
	}
	status, err := booking.StatusFromString(req.BookingStatus)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateBookingCommand(
		req.ShipID,
		req.DockID,
		start,
		end,
		time.Duration(req.BookingDuration)*time.Hour,
		status,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createBookingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return s.respondBooking(ctx, http.StatusCreated, created.ID())
}

// GetBooking handles GET /api/v1/booking/:id.
func (s *Server) GetBooking(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}
	return s.respondBooking(ctx, http.StatusOK, id)
}

// GetBookings handles GET /api/v1/booking/GetBookings with optional
// from_time, to_time, status, dock_id and ship_id query parameters.
func (s *Server) GetBookings(ctx echo.Context) error {
	var from, to *time.Time
	var status *booking.Status
	var dockID, shipID *int64

	if raw := ctx.QueryParam("from_time"); raw != "" {
		parsed, err := parseTimestamp("from_time", raw)
		if err != nil {
			return respondError(ctx, err)
		}
		from = &parsed
	}
	if raw := ctx.QueryParam("to_time"); raw != "" {
		parsed, err := parseTimestamp("to_time", raw)
		if err != nil {
			return respondError(ctx, err)
		}
		to = &parsed
	}
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := booking.StatusFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		status = &parsed
	}
	if raw := ctx.QueryParam("dock_id"); raw != "" {
		var id int64
		if err := echo.QueryParamsBinder(ctx).Int64("dock_id", &id).BindError(); err != nil {
			return badRequest(ctx, "dock_id must be an integer")
		}
		dockID = &id
	}
	if raw := ctx.QueryParam("ship_id"); raw != "" {
		var id int64
		if err := echo.QueryParamsBinder(ctx).Int64("ship_id", &id).BindError(); err != nil {
			return badRequest(ctx, "ship_id must be an integer")
		}
		shipID = &id
	}

	query, err := queries.NewListBookingsQuery(from, to, status, dockID, shipID)
	if err != nil {
		return respondError(ctx, err)
	}

	bookings, err := s.listBookingsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		response[i] = bookingResponseFromQuery(b)
	}
	return ctx.JSON(http.StatusOK, response)
}

// UpdateBooking handles PUT/PATCH /api/v1/booking/UpdateBooking/:id.
func (s *Server) UpdateBooking(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateBookingRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return respondError(ctx, err)
	}

	var start, end *time.Time
	if req.BookingStart != nil {
		parsed, err := parseTimestamp("booking_start", *req.BookingStart)
		if err != nil {
			return respondError(ctx, err)
		}
		start = &parsed
	}
	if req.BookingEnd != nil {
		parsed, err := parseTimestamp("booking_end", *req.BookingEnd)
		if err != nil {
			return respondError(ctx, err)
		}
		end = &parsed
	}
	var status *booking.Status
	if req.BookingStatus != nil {
		parsed, err := booking.StatusFromString(*req.BookingStatus)
		if err != nil {
			return respondError(ctx, err)
		}
		status = &parsed
	}

	cmd, err := commands.NewUpdateBookingCommand(id, start, end, status)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateBookingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return s.respondBooking(ctx, http.StatusOK, updated.ID())
}

// DeleteBooking handles DELETE /api/v1/booking/DeleteBooking/:id.
func (s *Server) DeleteBooking(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteBookingCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.deleteBookingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MessageResponse{Message: "booking deleted"})
}

// respondBooking reads a booking through the query side so write responses
// carry the same nested ship and dock summaries as reads.
func (s *Server) respondBooking(ctx echo.Context, code int, bookingID int64) error {
	query, err := queries.NewGetBookingQuery(bookingID)
	if err != nil {
		return respondError(ctx, err)
	}
	resp, err := s.getBookingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(code, bookingResponseFromQuery(resp))
}

// CreateShip handles POST /api/v1/ship/CreateShip.
func (s *Server) CreateShip(ctx echo.Context) error {
	var req CreateShipRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateShipCommand(
		req.ShipName, req.ShipLength, req.RegistrationCountry, req.CargoTypeID, req.CompanyID,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.shipHandler.HandleCreate(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, shipResponseFromDomain(created))
}

// GetShip handles GET /api/v1/ship/:id.
func (s *Server) GetShip(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetShipQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}
	resp, err := s.catalogHandler.HandleGetShip(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, shipResponseFromQuery(resp))
}

// GetAllShips handles GET /api/v1/ship/GetAllShips.
func (s *Server) GetAllShips(ctx echo.Context) error {
	ships, err := s.catalogHandler.HandleListShips(ctx.Request().Context(), queries.NewListShipsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ShipResponse, len(ships))
	for i, resp := range ships {
		response[i] = shipResponseFromQuery(resp)
	}
	return ctx.JSON(http.StatusOK, response)
}

// UpdateShip handles PUT/PATCH /api/v1/ship/UpdateShip/:id.
func (s *Server) UpdateShip(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateShipRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateShipCommand(id, req.RegistrationCountry, req.CargoTypeID, req.CompanyID)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.shipHandler.HandleUpdate(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipResponseFromDomain(updated))
}

// DeleteShip handles DELETE /api/v1/ship/DeleteShip/:id.
func (s *Server) DeleteShip(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteShipCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.shipHandler.HandleDelete(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MessageResponse{Message: "ship deleted"})
}

// CreateDock handles POST /api/v1/dock/CreateDock.
func (s *Server) CreateDock(ctx echo.Context) error {
	var req CreateDockRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateDockCommand(req.DockCode, req.DockLength, req.CargoTypes)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.dockHandler.HandleCreate(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, dockResponseFromDomain(created))
}

// GetDock handles GET /api/v1/dock/:id.
func (s *Server) GetDock(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetDockQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}
	resp, err := s.catalogHandler.HandleGetDock(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, dockResponseFromQuery(resp))
}

// GetAllDocks handles GET /api/v1/dock/GetAllDocks.
func (s *Server) GetAllDocks(ctx echo.Context) error {
	docks, err := s.catalogHandler.HandleListDocks(ctx.Request().Context(), queries.NewListDocksQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]DockResponse, len(docks))
	for i, resp := range docks {
		response[i] = dockResponseFromQuery(resp)
	}
	return ctx.JSON(http.StatusOK, response)
}

// UpdateDockLength handles PUT/PATCH /api/v1/dock/UpdateLength/:id.
func (s *Server) UpdateDockLength(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateDockLengthRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateDockLengthCommand(id, req.DockLength)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.dockHandler.HandleUpdateLength(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dockResponseFromDomain(updated))
}

// UpdateDockCargo handles PUT/PATCH /api/v1/dock/UpdateCargo/:id.
func (s *Server) UpdateDockCargo(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateDockCargoRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateDockCargoCommand(id, req.CargoTypes)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.dockHandler.HandleUpdateCargo(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dockResponseFromDomain(updated))
}

// DeleteDock handles DELETE /api/v1/dock/DeleteDock/:id.
func (s *Server) DeleteDock(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteDockCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.dockHandler.HandleDelete(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MessageResponse{Message: "dock deleted"})
}

// CreateCargoType handles POST /api/v1/cargo/CreateCargo.
func (s *Server) CreateCargoType(ctx echo.Context) error {
	var req CreateCargoTypeRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateCargoTypeCommand(req.CargoName)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.cargoTypeHandler.HandleCreate(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, cargoTypeResponseFromDomain(*created))
}

// GetCargoTypes handles GET /api/v1/cargo/GetCargoTypes.
func (s *Server) GetCargoTypes(ctx echo.Context) error {
	cargoTypes, err := s.catalogHandler.HandleListCargoTypes(
		ctx.Request().Context(), queries.NewListCargoTypesQuery(),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]CargoTypeResponse, len(cargoTypes))
	for i, resp := range cargoTypes {
		response[i] = CargoTypeResponse{ID: resp.ID, CargoName: resp.Name}
	}
	return ctx.JSON(http.StatusOK, response)
}

// DeleteCargoType handles DELETE /api/v1/cargo/DeleteCargo/:id.
func (s *Server) DeleteCargoType(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteCargoTypeCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.cargoTypeHandler.HandleDelete(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MessageResponse{Message: "cargo type deleted"})
}

// CreateCompany handles POST /api/v1/company/create_company.
func (s *Server) CreateCompany(ctx echo.Context) error {
	var req CreateCompanyRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateCompanyCommand(
		req.CompanyName, req.Country, req.Email, req.Phone, req.Address,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.companyHandler.HandleCreate(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, companyResponseFromDomain(created))
}

func shipResponseFromDomain(s *ship.Ship) ShipResponse {
	return ShipResponse{
		ID:                  s.ID(),
		ShipName:            s.Name(),
		ShipLength:          s.Length(),
		RegistrationCountry: s.RegistrationCountry(),
		CargoTypeID:         s.CargoType().ID(),
		CargoTypeName:       s.CargoType().Name(),
		CompanyID:           s.CompanyID(),
	}
}

func dockResponseFromDomain(d *dock.Dock) DockResponse {
	cargoTypes := make([]CargoTypeResponse, 0, len(d.CargoTypes()))
	for _, ct := range d.CargoTypes() {
		cargoTypes = append(cargoTypes, cargoTypeResponseFromDomain(ct))
	}
	return DockResponse{
		ID:         d.ID(),
		DockCode:   d.Code(),
		DockLength: d.Length(),
		CargoTypes: cargoTypes,
	}
}

func cargoTypeResponseFromDomain(ct cargo.CargoType) CargoTypeResponse {
	return CargoTypeResponse{ID: ct.ID(), CargoName: ct.Name()}
}

func companyResponseFromDomain(c *company.Company) CompanyResponse {
	return CompanyResponse{
		ID:          c.ID(),
		CompanyName: c.Name(),
		Country:     c.Country(),
		Email:       c.Email(),
		Phone:       c.Phone(),
		Address:     c.Address(),
	}
}
