package http

import (
	"net/http"
	"strconv"
	"time"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/vehicle"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the rental API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addVehicleHandler    commands.AddVehicleCommandHandler
	addCustomerHandler   commands.AddCustomerCommandHandler
	rentVehicleHandler   commands.RentVehicleCommandHandler
	returnVehicleHandler commands.ReturnVehicleCommandHandler

	// Query handlers
	findAvailableVehiclesHandler queries.FindAvailableVehiclesQueryHandler
	listVehiclesHandler          queries.ListVehiclesQueryHandler
	listCustomersHandler         queries.ListCustomersQueryHandler
	findCustomerByIDHandler      queries.FindCustomerByIDQueryHandler
	listRentalsHandler           queries.ListRentalsQueryHandler
	getRentalDetailsHandler      queries.GetRentalDetailsQueryHandler
	listOverdueRentalsHandler    queries.ListOverdueRentalsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addVehicleHandler commands.AddVehicleCommandHandler,
	addCustomerHandler commands.AddCustomerCommandHandler,
	rentVehicleHandler commands.RentVehicleCommandHandler,
	returnVehicleHandler commands.ReturnVehicleCommandHandler,
	findAvailableVehiclesHandler queries.FindAvailableVehiclesQueryHandler,
	listVehiclesHandler queries.ListVehiclesQueryHandler,
	listCustomersHandler queries.ListCustomersQueryHandler,
	findCustomerByIDHandler queries.FindCustomerByIDQueryHandler,
	listRentalsHandler queries.ListRentalsQueryHandler,
	getRentalDetailsHandler queries.GetRentalDetailsQueryHandler,
	listOverdueRentalsHandler queries.ListOverdueRentalsQueryHandler,
) *Server {
	return &Server{
		addVehicleHandler:            addVehicleHandler,
		addCustomerHandler:           addCustomerHandler,
		rentVehicleHandler:           rentVehicleHandler,
		returnVehicleHandler:         returnVehicleHandler,
		findAvailableVehiclesHandler: findAvailableVehiclesHandler,
		listVehiclesHandler:          listVehiclesHandler,
		listCustomersHandler:         listCustomersHandler,
		findCustomerByIDHandler:      findCustomerByIDHandler,
		listRentalsHandler:           listRentalsHandler,
		getRentalDetailsHandler:      getRentalDetailsHandler,
		listOverdueRentalsHandler:    listOverdueRentalsHandler,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/vehicles", s.CreateVehicle)
	api.GET("/vehicles", s.GetVehicles)
	api.GET("/vehicles/available", s.GetAvailableVehicles)

	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers", s.GetCustomers)
	api.GET("/customers/:id", s.GetCustomer)

	api.POST("/rentals", s.CreateRental)
	api.GET("/rentals", s.GetRentals)
	api.GET("/rentals/overdue", s.GetOverdueRentals)
	api.GET("/rentals/:id", s.GetRental)
	api.POST("/rentals/:id/return", s.ReturnRental)
}

// CreateVehicle handles POST /api/v1/vehicles - registers a new vehicle in the fleet.
func (s *Server) CreateVehicle(ctx echo.Context) error {
	var req AddVehicleRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, "Invalid vehicle data: "+err.Error())
	}

	vehicleType, err := vehicle.TypeFromString(req.Type)
	if err != nil {
		return badRequest(ctx, "Invalid vehicle data: "+err.Error())
	}

	cmd, err := commands.NewAddVehicleCommand(req.Make, req.Model, req.LicensePlate, req.DailyRate, vehicleType)
	if err != nil {
		return badRequest(ctx, "Invalid vehicle data: "+err.Error())
	}

	created, err := s.addVehicleHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return operationError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, vehicleDTOFromModel(created))
}

// GetVehicles handles GET /api/v1/vehicles - retrieves the whole fleet.
func (s *Server) GetVehicles(ctx echo.Context) error {
	query := queries.NewListVehiclesQuery()

	vehicles, err := s.listVehiclesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return operationError(ctx, err)
	}

	response := make([]VehicleDTO, len(vehicles))
	for i, v := range vehicles {
		response[i] = vehicleDTOFromResponse(v)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAvailableVehicles handles GET /api/v1/vehicles/available - retrieves vehicles open for rent.
func (s *Server) GetAvailableVehicles(ctx echo.Context) error {
	query := queries.NewFindAvailableVehiclesQuery()

	vehicles, err := s.findAvailableVehiclesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return operationError(ctx, err)
	}

	response := make([]VehicleDTO, len(vehicles))
	for i, v := range vehicles {
		response[i] = vehicleDTOFromResponse(v)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCustomer handles POST /api/v1/customers - registers a new customer.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var req AddCustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, "Invalid customer data: "+err.Error())
	}

	cmd, err := commands.NewAddCustomerCommand(req.FirstName, req.LastName, req.Email, req.Phone)
	if err != nil {
		return badRequest(ctx, "Invalid customer data: "+err.Error())
	}

	created, err := s.addCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return operationError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, customerDTOFromModel(created))
}

// GetCustomers handles GET /api/v1/customers - retrieves all registered customers.
func (s *Server) GetCustomers(ctx echo.Context) error {
	query := queries.NewListCustomersQuery()

	customers, err := s.listCustomersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return operationError(ctx, err)
	}

	response := make([]CustomerDTO, len(customers))
	for i, c := range customers {
		response[i] = customerDTOFromResponse(c)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCustomer handles GET /api/v1/customers/:id - retrieves one customer.
func (s *Server) GetCustomer(ctx echo.Context) error {
	customerID, err := parseIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid customer ID: "+ctx.Param("id"))
	}

	query, err := queries.NewFindCustomerByIDQuery(customerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer ID: "+err.Error())
	}

	found, err := s.findCustomerByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return operationError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, customerDTOFromResponse(found))
}

// CreateRental handles POST /api/v1/rentals - rents a vehicle to a customer.
func (s *Server) CreateRental(ctx echo.Context) error {
	var req RentVehicleRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, "Invalid rental data: "+err.Error())
	}

	cmd, err := buildRentVehicleCommand(req)
	if err != nil {
		return badRequest(ctx, "Invalid rental data: "+err.Error())
	}

	created, err := s.rentVehicleHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return operationError(ctx, err)
	}

	rentalAgreementsCreatedTotal.Inc()
	return ctx.JSON(http.StatusCreated, rentalDTOFromModel(created))
}

// GetRentals handles GET /api/v1/rentals - retrieves all rental agreements.
func (s *Server) GetRentals(ctx echo.Context) error {
	query := queries.NewListRentalsQuery()

	rentals, err := s.listRentalsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return operationError(ctx, err)
	}

	response := make([]RentalDTO, len(rentals))
	for i, r := range rentals {
		response[i] = rentalDTOFromResponse(r)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOverdueRentals handles GET /api/v1/rentals/overdue - retrieves rentals past their end date.
func (s *Server) GetOverdueRentals(ctx echo.Context) error {
	query, err := queries.NewListOverdueRentalsQuery(time.Now())
	if err != nil {
		return operationError(ctx, err)
	}

	rentals, err := s.listOverdueRentalsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return operationError(ctx, err)
	}

	response := make([]RentalDTO, len(rentals))
	for i, r := range rentals {
		response[i] = rentalDTOFromResponse(r)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRental handles GET /api/v1/rentals/:id - retrieves one rental agreement.
func (s *Server) GetRental(ctx echo.Context) error {
	rentalID, err := parseIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid rental ID: "+ctx.Param("id"))
	}

	query, err := queries.NewGetRentalDetailsQuery(rentalID)
	if err != nil {
		return badRequest(ctx, "Invalid rental ID: "+err.Error())
	}

	found, err := s.getRentalDetailsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return operationError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, rentalDTOFromResponse(found))
}

// ReturnRental handles POST /api/v1/rentals/:id/return - returns the rented vehicle.
func (s *Server) ReturnRental(ctx echo.Context) error {
	rentalID, err := parseIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid rental ID: "+ctx.Param("id"))
	}

	cmd, err := commands.NewReturnVehicleCommand(rentalID)
	if err != nil {
		return badRequest(ctx, "Invalid rental ID: "+err.Error())
	}

	returned, err := s.returnVehicleHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return operationError(ctx, err)
	}

	vehicleReturnsTotal.Inc()
	return ctx.JSON(http.StatusOK, rentalDTOFromModel(returned))
}

// parseIDParam reads the :id path parameter as a positive integer identifier.
func parseIDParam(ctx echo.Context) (kernel.ID, error) {
	raw, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return kernel.ID{}, err
	}
	return kernel.NewID(raw)
}

// buildRentVehicleCommand assembles the rental command from a validated request.
// The request's dates have already passed format validation, so parsing only
// fails on genuinely malformed input.
func buildRentVehicleCommand(req RentVehicleRequest) (commands.RentVehicleCommand, error) {
	vehicleID, err := kernel.NewID(req.VehicleID)
	if err != nil {
		return commands.RentVehicleCommand{}, err
	}

	customerID, err := kernel.NewID(req.CustomerID)
	if err != nil {
		return commands.RentVehicleCommand{}, err
	}

	start, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		return commands.RentVehicleCommand{}, err
	}

	end, err := time.Parse(time.DateOnly, req.EndDate)
	if err != nil {
		return commands.RentVehicleCommand{}, err
	}

	period, err := kernel.NewPeriod(start, end)
	if err != nil {
		return commands.RentVehicleCommand{}, err
	}

	return commands.NewRentVehicleCommand(vehicleID, customerID, period)
}
