package dto

import (
	"time"

	"transportpro/internal/service"
)

type VehicleRequest struct {
	VehicleType      string   `json:"vehicle_type" validate:"required,oneof=cargo passenger"`
	Brand            string   `json:"brand" validate:"required"`
	Model            string   `json:"model" validate:"required"`
	Year             int      `json:"year" validate:"required"`
	CapacityTons     *float64 `json:"capacity_tons"`
	DimensionsLength *float64 `json:"dimensions_length"`
	DimensionsWidth  *float64 `json:"dimensions_width"`
	DimensionsHeight *float64 `json:"dimensions_height"`
	PassengerSeats   *int     `json:"passenger_seats"`
	Description      string   `json:"description"`
	PricePerKm       float64  `json:"price_per_km" validate:"required"`
	Available        bool     `json:"available"`
	Images           []string `json:"images"`
}

func (r VehicleRequest) Input() service.VehicleInput {
	return service.VehicleInput{
		VehicleType:      r.VehicleType,
		Brand:            r.Brand,
		Model:            r.Model,
		Year:             r.Year,
		CapacityTons:     r.CapacityTons,
		DimensionsLength: r.DimensionsLength,
		DimensionsWidth:  r.DimensionsWidth,
		DimensionsHeight: r.DimensionsHeight,
		PassengerSeats:   r.PassengerSeats,
		Description:      r.Description,
		PricePerKm:       r.PricePerKm,
		Available:        r.Available,
		Images:           r.Images,
	}
}

// VehicleResponse is a listing joined with the owner's contact profile.
// Driver fields are null when the owner record no longer exists.
type VehicleResponse struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	VehicleType      string    `json:"vehicle_type"`
	Brand            string    `json:"brand"`
	Model            string    `json:"model"`
	Year             int       `json:"year"`
	CapacityTons     *float64  `json:"capacity_tons"`
	DimensionsLength *float64  `json:"dimensions_length"`
	DimensionsWidth  *float64  `json:"dimensions_width"`
	DimensionsHeight *float64  `json:"dimensions_height"`
	PassengerSeats   *int      `json:"passenger_seats"`
	Description      string    `json:"description"`
	PricePerKm       float64   `json:"price_per_km"`
	Available        bool      `json:"available"`
	Images           []string  `json:"images"`
	CreatedAt        time.Time `json:"created_at"`
	DriverName       *string   `json:"driver_name"`
	DriverPhone      *string   `json:"driver_phone"`
	DriverCity       *string   `json:"driver_city"`
}

func NewVehicleResponse(v *service.VehicleWithDriver) VehicleResponse {
	return VehicleResponse{
		ID:               v.ID,
		UserID:           v.UserID,
		VehicleType:      v.VehicleType,
		Brand:            v.Brand,
		Model:            v.Model,
		Year:             v.Year,
		CapacityTons:     v.CapacityTons,
		DimensionsLength: v.DimensionsLength,
		DimensionsWidth:  v.DimensionsWidth,
		DimensionsHeight: v.DimensionsHeight,
		PassengerSeats:   v.PassengerSeats,
		Description:      v.Description,
		PricePerKm:       v.PricePerKm,
		Available:        v.Available,
		Images:           v.Images,
		CreatedAt:        v.CreatedAt,
		DriverName:       v.DriverName,
		DriverPhone:      v.DriverPhone,
		DriverCity:       v.DriverCity,
	}
}

func NewVehicleResponses(vehicles []service.VehicleWithDriver) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vehicles))
	for i := range vehicles {
		out = append(out, NewVehicleResponse(&vehicles[i]))
	}
	return out
}
