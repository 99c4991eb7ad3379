package main

import (
	"context"
	"fmt"
	"time"

	"rental/cmd"
	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/vehicle"
)

// seedSampleData populates the store with a small fleet, two customers and
// two open rentals. Everything goes through the real command handlers so
// identifiers and rental costs are computed the same way they are at runtime.
func seedSampleData(app *cmd.CompositionRoot) error {
	ctx := context.Background()

	addVehicle := app.CreateAddVehicleCommandHandler()
	vehicleSeeds := []struct {
		make, model, licensePlate string
		dailyRate                 float64
		vehicleType               vehicle.Type
	}{
		{"Toyota", "Camry", "ABC-123", 45.00, vehicle.Car},
		{"Ford", "Transit", "VAN-207", 75.00, vehicle.Van},
		{"Harley-Davidson", "Street 750", "MC-750", 55.00, vehicle.Motorcycle},
	}
	for _, seed := range vehicleSeeds {
		command, err := commands.NewAddVehicleCommand(seed.make, seed.model, seed.licensePlate, seed.dailyRate, seed.vehicleType)
		if err != nil {
			return err
		}
		if _, err := addVehicle.Handle(ctx, command); err != nil {
			return err
		}
	}

	addCustomer := app.CreateAddCustomerCommandHandler()
	customerSeeds := []struct {
		firstName, lastName, email, phone string
	}{
		{"Alice", "Johnson", "alice@example.com", "555-0101"},
		{"Bob", "Smith", "bob@example.com", "555-0102"},
	}
	for _, seed := range customerSeeds {
		command, err := commands.NewAddCustomerCommand(seed.firstName, seed.lastName, seed.email, seed.phone)
		if err != nil {
			return err
		}
		if _, err := addCustomer.Handle(ctx, command); err != nil {
			return err
		}
	}

	// The Camry is out with Alice until later this week. The Transit went
	// out to Bob ten days ago and should have been back two days ago, which
	// gives the overdue monitor something to report.
	rentVehicle := app.CreateRentVehicleCommandHandler()
	now := time.Now()
	rentalSeeds := []struct {
		vehicleID, customerID int64
		start, end            time.Time
	}{
		{1, 1, now.AddDate(0, 0, -3), now.AddDate(0, 0, 4)},
		{2, 2, now.AddDate(0, 0, -10), now.AddDate(0, 0, -2)},
	}
	for _, seed := range rentalSeeds {
		command, err := newRentVehicleCommand(seed.vehicleID, seed.customerID, seed.start, seed.end)
		if err != nil {
			return err
		}
		if _, err := rentVehicle.Handle(ctx, command); err != nil {
			return err
		}
	}

	return nil
}

// runDemo walks the rental workflow once against the seeded store and prints
// each step, including a rejected rent and a failed customer lookup.
func runDemo(app *cmd.CompositionRoot) error {
	ctx := context.Background()

	fmt.Println("--- Fleet ---")
	if err := printVehicles(ctx, app); err != nil {
		return err
	}

	fmt.Println("--- Customers ---")
	if err := printCustomers(ctx, app); err != nil {
		return err
	}

	fmt.Println("--- Open rentals ---")
	if err := printRentals(ctx, app); err != nil {
		return err
	}

	fmt.Println("--- Renting the motorcycle to Alice for three days ---")
	rentVehicle := app.CreateRentVehicleCommandHandler()
	now := time.Now()
	command, err := newRentVehicleCommand(3, 1, now, now.AddDate(0, 0, 3))
	if err != nil {
		return err
	}
	created, err := rentVehicle.Handle(ctx, command)
	if err != nil {
		return err
	}
	if err := printRentalDetails(ctx, app, created.ID()); err != nil {
		return err
	}

	fmt.Println("--- Available vehicles ---")
	if err := printAvailableVehicles(ctx, app); err != nil {
		return err
	}

	fmt.Println("--- Renting the Camry while it is out ---")
	conflict, err := newRentVehicleCommand(1, 2, now, now.AddDate(0, 0, 2))
	if err != nil {
		return err
	}
	if _, err := rentVehicle.Handle(ctx, conflict); err != nil {
		fmt.Printf("  rejected: %v\n", err)
	}

	fmt.Println("--- Returning the motorcycle ---")
	returnCommand, err := commands.NewReturnVehicleCommand(created.ID())
	if err != nil {
		return err
	}
	returnVehicle := app.CreateReturnVehicleCommandHandler()
	if _, err := returnVehicle.Handle(ctx, returnCommand); err != nil {
		return err
	}
	if err := printRentalDetails(ctx, app, created.ID()); err != nil {
		return err
	}

	fmt.Println("--- Looking up customer 999 ---")
	missingID, err := kernel.NewID(999)
	if err != nil {
		return err
	}
	lookup, err := queries.NewFindCustomerByIDQuery(missingID)
	if err != nil {
		return err
	}
	findCustomer := app.CreateFindCustomerByIDQueryHandler()
	if _, err := findCustomer.Handle(ctx, lookup); err != nil {
		fmt.Printf("  rejected: %v\n", err)
	}

	fmt.Println("--- Fleet after the walkthrough ---")
	if err := printVehicles(ctx, app); err != nil {
		return err
	}

	return printRentals(ctx, app)
}

func newRentVehicleCommand(vehicleID, customerID int64, start, end time.Time) (commands.RentVehicleCommand, error) {
	vID, err := kernel.NewID(vehicleID)
	if err != nil {
		return commands.RentVehicleCommand{}, err
	}
	cID, err := kernel.NewID(customerID)
	if err != nil {
		return commands.RentVehicleCommand{}, err
	}
	period, err := kernel.NewPeriod(start, end)
	if err != nil {
		return commands.RentVehicleCommand{}, err
	}

	return commands.NewRentVehicleCommand(vID, cID, period)
}

func printVehicles(ctx context.Context, app *cmd.CompositionRoot) error {
	handler := app.CreateListVehiclesQueryHandler()
	vehicles, err := handler.Handle(ctx, queries.NewListVehiclesQuery())
	if err != nil {
		return err
	}
	printVehicleRows(vehicles)

	return nil
}

func printAvailableVehicles(ctx context.Context, app *cmd.CompositionRoot) error {
	handler := app.CreateFindAvailableVehiclesQueryHandler()
	vehicles, err := handler.Handle(ctx, queries.NewFindAvailableVehiclesQuery())
	if err != nil {
		return err
	}
	printVehicleRows(vehicles)

	return nil
}

func printVehicleRows(vehicles []queries.VehicleResponse) {
	if len(vehicles) == 0 {
		fmt.Println("  (none)")

		return
	}
	for _, v := range vehicles {
		availability := "available"
		if !v.Available {
			availability = "rented out"
		}
		fmt.Printf("  Vehicle #%d: %s %s [%s] $%.2f/day, %s - %s\n",
			v.ID.Value(), v.Make, v.Model, v.LicensePlate, v.DailyRate, v.Type, availability)
	}
}

func printCustomers(ctx context.Context, app *cmd.CompositionRoot) error {
	handler := app.CreateListCustomersQueryHandler()
	customers, err := handler.Handle(ctx, queries.NewListCustomersQuery())
	if err != nil {
		return err
	}
	for _, c := range customers {
		fmt.Printf("  Customer #%d: %s %s <%s> %s\n", c.ID.Value(), c.FirstName, c.LastName, c.Email, c.Phone)
	}

	return nil
}

func printRentals(ctx context.Context, app *cmd.CompositionRoot) error {
	handler := app.CreateListRentalsQueryHandler()
	rentals, err := handler.Handle(ctx, queries.NewListRentalsQuery())
	if err != nil {
		return err
	}
	if len(rentals) == 0 {
		fmt.Println("  (none)")

		return nil
	}
	for _, r := range rentals {
		fmt.Println("  " + formatRental(r))
	}

	return nil
}

func printRentalDetails(ctx context.Context, app *cmd.CompositionRoot, rentalID kernel.ID) error {
	query, err := queries.NewGetRentalDetailsQuery(rentalID)
	if err != nil {
		return err
	}
	handler := app.CreateGetRentalDetailsQueryHandler()
	details, err := handler.Handle(ctx, query)
	if err != nil {
		return err
	}
	fmt.Println("  " + formatRental(details))

	return nil
}

func formatRental(r queries.RentalResponse) string {
	return fmt.Sprintf("Rental #%d: vehicle %s by customer %s, %s to %s (%d days), $%.2f, %s",
		r.ID.Value(), r.VehicleID, r.CustomerID,
		r.Period.Start().Format(time.DateOnly), r.Period.End().Format(time.DateOnly), r.Period.Days(),
		r.TotalCost, r.Status)
}
