package cmd

import (
	"rental/internal/adapters/out/inmem"
	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/application/usecases/queries"
)

type CompositionRoot struct {
	store      *inmem.Store
	uowFactory *inmem.StoreUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, store *inmem.Store) CompositionRoot {
	return CompositionRoot{
		store:      store,
		uowFactory: inmem.NewStoreUnitOfWorkFactory(store),
	}
}

func (c *CompositionRoot) CreateAddVehicleCommandHandler() commands.AddVehicleCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateAddCustomerCommandHandler() commands.AddCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateRentVehicleCommandHandler() commands.RentVehicleCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRentVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateReturnVehicleCommandHandler() commands.ReturnVehicleCommandHandler {
	var f commands.RentalUoWFactory = FuncRentalUoWFactory(func() commands.RentalUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReturnVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateFindAvailableVehiclesQueryHandler() queries.FindAvailableVehiclesQueryHandler {
	return queries.NewFindAvailableVehiclesQueryHandler(c.store)
}

func (c *CompositionRoot) CreateListVehiclesQueryHandler() queries.ListVehiclesQueryHandler {
	return queries.NewListVehiclesQueryHandler(c.store)
}

func (c *CompositionRoot) CreateListCustomersQueryHandler() queries.ListCustomersQueryHandler {
	return queries.NewListCustomersQueryHandler(c.store)
}

func (c *CompositionRoot) CreateFindCustomerByIDQueryHandler() queries.FindCustomerByIDQueryHandler {
	return queries.NewFindCustomerByIDQueryHandler(c.store)
}

func (c *CompositionRoot) CreateListRentalsQueryHandler() queries.ListRentalsQueryHandler {
	return queries.NewListRentalsQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetRentalDetailsQueryHandler() queries.GetRentalDetailsQueryHandler {
	return queries.NewGetRentalDetailsQueryHandler(c.store)
}

func (c *CompositionRoot) CreateListOverdueRentalsQueryHandler() queries.ListOverdueRentalsQueryHandler {
	return queries.NewListOverdueRentalsQueryHandler(c.store)
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncRentalUoWFactory func() commands.RentalUoW

func (f FuncRentalUoWFactory) Create() commands.RentalUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
