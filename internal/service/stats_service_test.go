package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"transportpro/internal/model"
)

func TestCollectStats(t *testing.T) {
	users := &fakeUserRepo{}
	vehicles := &fakeVehicleRepo{}
	svc := NewStatsService(users, vehicles, zerolog.Nop())

	addUser(users, "d1", "Kyiv", true)
	addUser(users, "d2", "Lviv", false)
	users.CreateUser(context.Background(), &model.User{
		ID:       "c1",
		Email:    "c1@example.com",
		UserType: model.UserTypeCustomer,
	})

	vehicles.Create(context.Background(), &model.Vehicle{ID: "v1", UserID: "d1", VehicleType: model.VehicleTypeCargo, Available: true, CreatedAt: time.Now()})
	vehicles.Create(context.Background(), &model.Vehicle{ID: "v2", UserID: "d1", VehicleType: model.VehicleTypeCargo, Available: false, CreatedAt: time.Now()})
	vehicles.Create(context.Background(), &model.Vehicle{ID: "v3", UserID: "d2", VehicleType: model.VehicleTypePassenger, Available: true, CreatedAt: time.Now()})

	stats, err := svc.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if stats.Drivers != 2 {
		t.Fatalf("drivers = %d, want 2", stats.Drivers)
	}
	// Availability does not affect the totals.
	if stats.Vehicles != 3 {
		t.Fatalf("vehicles = %d, want 3", stats.Vehicles)
	}
	if stats.CargoVehicles != 2 || stats.PassengerVehicles != 1 {
		t.Fatalf("cargo/passenger = %d/%d, want 2/1", stats.CargoVehicles, stats.PassengerVehicles)
	}
}
