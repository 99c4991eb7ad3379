package http

import (
	"time"

	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/customer"
	"rental/internal/core/domain/model/rental"
	"rental/internal/core/domain/model/vehicle"
)

// AddVehicleRequest carries the payload for registering a new vehicle.
type AddVehicleRequest struct {
	Make         string  `json:"make" validate:"required"`
	Model        string  `json:"model" validate:"required"`
	LicensePlate string  `json:"licensePlate" validate:"required"`
	DailyRate    float64 `json:"dailyRate" validate:"gte=0"`
	Type         string  `json:"type" validate:"required"`
}

// AddCustomerRequest carries the payload for registering a new customer.
type AddCustomerRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
}

// RentVehicleRequest carries the payload for creating a rental agreement.
// Dates use the YYYY-MM-DD format.
type RentVehicleRequest struct {
	VehicleID  int64  `json:"vehicleId" validate:"required,gt=0"`
	CustomerID int64  `json:"customerId" validate:"required,gt=0"`
	StartDate  string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"endDate" validate:"required,datetime=2006-01-02"`
}

// VehicleDTO is the JSON representation of a vehicle.
type VehicleDTO struct {
	ID           int64   `json:"id"`
	Make         string  `json:"make"`
	Model        string  `json:"model"`
	LicensePlate string  `json:"licensePlate"`
	DailyRate    float64 `json:"dailyRate"`
	Type         string  `json:"type"`
	Available    bool    `json:"available"`
}

// CustomerDTO is the JSON representation of a customer.
type CustomerDTO struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// RentalDTO is the JSON representation of a rental agreement.
type RentalDTO struct {
	ID         int64   `json:"id"`
	VehicleID  int64   `json:"vehicleId"`
	CustomerID int64   `json:"customerId"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	Days       int     `json:"days"`
	TotalCost  float64 `json:"totalCost"`
	Status     string  `json:"status"`
}

func vehicleDTOFromModel(v *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:           v.ID().Value(),
		Make:         v.Make(),
		Model:        v.Model(),
		LicensePlate: v.LicensePlate(),
		DailyRate:    v.DailyRate(),
		Type:         v.Type().String(),
		Available:    v.IsAvailable(),
	}
}

func vehicleDTOFromResponse(r queries.VehicleResponse) VehicleDTO {
	return VehicleDTO{
		ID:           r.ID.Value(),
		Make:         r.Make,
		Model:        r.Model,
		LicensePlate: r.LicensePlate,
		DailyRate:    r.DailyRate,
		Type:         r.Type.String(),
		Available:    r.Available,
	}
}

func customerDTOFromModel(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:        c.ID().Value(),
		FirstName: c.FirstName(),
		LastName:  c.LastName(),
		Email:     c.Email(),
		Phone:     c.Phone(),
	}
}

func customerDTOFromResponse(r queries.CustomerResponse) CustomerDTO {
	return CustomerDTO{
		ID:        r.ID.Value(),
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
	}
}

func rentalDTOFromModel(r *rental.Rental) RentalDTO {
	return RentalDTO{
		ID:         r.ID().Value(),
		VehicleID:  r.VehicleID().Value(),
		CustomerID: r.CustomerID().Value(),
		StartDate:  r.Period().Start().Format(time.DateOnly),
		EndDate:    r.Period().End().Format(time.DateOnly),
		Days:       r.Period().Days(),
		TotalCost:  r.TotalCost(),
		Status:     r.Status().String(),
	}
}

func rentalDTOFromResponse(r queries.RentalResponse) RentalDTO {
	return RentalDTO{
		ID:         r.ID.Value(),
		VehicleID:  r.VehicleID.Value(),
		CustomerID: r.CustomerID.Value(),
		StartDate:  r.Period.Start().Format(time.DateOnly),
		EndDate:    r.Period.End().Format(time.DateOnly),
		Days:       r.Period.Days(),
		TotalCost:  r.TotalCost,
		Status:     r.Status.String(),
	}
}
