package model

import "time"

const (
	VehicleTypeCargo     = "cargo"
	VehicleTypePassenger = "passenger"
)

// Vehicle is a listing offered by a driver. Cargo vehicles carry capacity
// and dimensions; passenger vehicles carry a seat count. Ownership is the
// (ID, UserID) pair; there is no separate authorization layer.
type Vehicle struct {
	ID               string    `db:"id" json:"id"`
	UserID           string    `db:"user_id" json:"user_id"`
	VehicleType      string    `db:"vehicle_type" json:"vehicle_type"`
	Brand            string    `db:"brand" json:"brand"`
	Model            string    `db:"model" json:"model"`
	Year             int       `db:"year" json:"year"`
	CapacityTons     *float64  `db:"capacity_tons" json:"capacity_tons,omitempty"`
	DimensionsLength *float64  `db:"dimensions_length" json:"dimensions_length,omitempty"`
	DimensionsWidth  *float64  `db:"dimensions_width" json:"dimensions_width,omitempty"`
	DimensionsHeight *float64  `db:"dimensions_height" json:"dimensions_height,omitempty"`
	PassengerSeats   *int      `db:"passenger_seats" json:"passenger_seats,omitempty"`
	Description      string    `db:"description" json:"description"`
	PricePerKm       float64   `db:"price_per_km" json:"price_per_km"`
	Available        bool      `db:"available" json:"available"`
	Images           []string  `db:"images" json:"images"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}
