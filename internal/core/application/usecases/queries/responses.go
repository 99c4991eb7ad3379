package queries

import (
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/rental"
	"rental/internal/core/domain/model/vehicle"
)

// VehicleResponse represents vehicle information in the read model.
// Contains essential fleet data for display and rental decisions.
//
// Example:
//
//	response := VehicleResponse{
//	    Make:         "Toyota",
//	    Model:        "Camry",
//	    LicensePlate: "ABC-123",
//	    DailyRate:    45.00,
//	    Available:    true,
//	}
type VehicleResponse struct {
	ID           kernel.ID
	Make         string
	Model        string
	LicensePlate string
	DailyRate    float64
	Type         vehicle.Type
	Available    bool
}

// CustomerResponse represents customer information in the read model.
// Contains identity and contact data for display.
type CustomerResponse struct {
	ID        kernel.ID
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// RentalResponse represents rental information in the read model.
// Contains the rental's linkage, period, cost, and lifecycle status.
type RentalResponse struct {
	ID         kernel.ID
	VehicleID  kernel.ID
	CustomerID kernel.ID
	Period     kernel.Period
	TotalCost  float64
	Status     rental.Status
}
