package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"transportpro/internal/model"
)

func newVehicleFixture() (VehicleService, *fakeVehicleRepo, *fakeUserRepo) {
	vehicles := &fakeVehicleRepo{}
	users := &fakeUserRepo{}
	return NewVehicleService(vehicles, users, zerolog.Nop()), vehicles, users
}

func addUser(users *fakeUserRepo, id, city string, subscribed bool) *model.User {
	u := &model.User{
		ID:                 id,
		Email:              id + "@example.com",
		Name:               "Driver " + id,
		Phone:              "+380000000000",
		City:               city,
		UserType:           model.UserTypeDriver,
		CreatedAt:          time.Now().UTC(),
		SubscriptionActive: subscribed,
	}
	users.CreateUser(context.Background(), u)
	return u
}

func cargoInput(price, capacity float64) VehicleInput {
	c := capacity
	return VehicleInput{
		VehicleType:  model.VehicleTypeCargo,
		Brand:        "MAN",
		Model:        "TGX",
		Year:         2020,
		CapacityTons: &c,
		Description:  "Tent truck",
		PricePerKm:   price,
		Available:    true,
	}
}

func TestCreateRequiresSubscription(t *testing.T) {
	svc, _, users := newVehicleFixture()
	owner := addUser(users, "u1", "Kyiv", false)

	if _, err := svc.Create(context.Background(), owner, cargoInput(10, 5)); !errors.Is(err, ErrSubscriptionRequired) {
		t.Fatalf("expected ErrSubscriptionRequired, got %v", err)
	}
}

func TestCreateAndListOwnedBy(t *testing.T) {
	svc, _, users := newVehicleFixture()
	owner := addUser(users, "u1", "Kyiv", true)

	created, err := svc.Create(context.Background(), owner, cargoInput(10, 5))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.DriverName == nil || *created.DriverName != owner.Name {
		t.Fatal("created vehicle is not joined with owner profile")
	}

	mine, err := svc.ListOwnedBy(context.Background(), owner)
	if err != nil {
		t.Fatalf("ListOwnedBy returned error: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != created.ID {
		t.Fatalf("expected the created vehicle in ListOwnedBy, got %+v", mine)
	}
}

func TestListFilters(t *testing.T) {
	svc, _, users := newVehicleFixture()
	kyiv := addUser(users, "u1", "Kyiv", true)
	lviv := addUser(users, "u2", "Lviv", true)

	if _, err := svc.Create(context.Background(), kyiv, cargoInput(8, 10)); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := svc.Create(context.Background(), lviv, cargoInput(15, 2)); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	seats := 8
	if _, err := svc.Create(context.Background(), lviv, VehicleInput{
		VehicleType:    model.VehicleTypePassenger,
		Brand:          "Mercedes",
		Model:          "Sprinter",
		Year:           2019,
		PassengerSeats: &seats,
		PricePerKm:     12,
		Available:      true,
	}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	cargo, err := svc.List(context.Background(), ListParams{VehicleType: model.VehicleTypeCargo})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	for _, v := range cargo {
		if v.VehicleType != model.VehicleTypeCargo {
			t.Fatalf("vehicle_type filter leaked a %s vehicle", v.VehicleType)
		}
	}
	if len(cargo) != 2 {
		t.Fatalf("expected 2 cargo vehicles, got %d", len(cargo))
	}

	cheap, err := svc.List(context.Background(), ListParams{MaxPrice: 10})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	for _, v := range cheap {
		if v.PricePerKm > 10 {
			t.Fatalf("max_price filter leaked a vehicle priced %.2f", v.PricePerKm)
		}
	}

	heavy, err := svc.List(context.Background(), ListParams{MinCapacity: 5})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(heavy) != 1 || *heavy[0].CapacityTons != 10 {
		t.Fatalf("min_capacity filter returned %+v", heavy)
	}

	inKyiv, err := svc.List(context.Background(), ListParams{City: "kyi"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(inKyiv) != 1 || inKyiv[0].DriverCity == nil || *inKyiv[0].DriverCity != "Kyiv" {
		t.Fatalf("city substring filter returned %+v", inKyiv)
	}
}

func TestListExcludesUnavailable(t *testing.T) {
	svc, _, users := newVehicleFixture()
	owner := addUser(users, "u1", "Kyiv", true)

	in := cargoInput(10, 5)
	in.Available = false
	if _, err := svc.Create(context.Background(), owner, in); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	got, err := svc.List(context.Background(), ListParams{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("unavailable vehicle leaked into listing: %+v", got)
	}
}

// A listing whose owner record is gone stays visible with empty driver
// fields in the unfiltered listing, but owner-derived filters drop it.
func TestListOrphanedOwnerAsymmetry(t *testing.T) {
	svc, _, users := newVehicleFixture()
	owner := addUser(users, "u1", "Kyiv", true)
	if _, err := svc.Create(context.Background(), owner, cargoInput(10, 5)); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	users.remove(owner.ID)

	unfiltered, err := svc.List(context.Background(), ListParams{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(unfiltered) != 1 {
		t.Fatalf("expected orphaned vehicle in unfiltered list, got %d results", len(unfiltered))
	}
	if unfiltered[0].DriverName != nil || unfiltered[0].DriverCity != nil {
		t.Fatal("orphaned vehicle must have empty driver fields")
	}

	filtered, err := svc.List(context.Background(), ListParams{City: "Kyiv"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(filtered) != 0 {
		t.Fatal("orphaned vehicle must be dropped from city-filtered results")
	}

	priced, err := svc.List(context.Background(), ListParams{MaxPrice: 100})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(priced) != 0 {
		t.Fatal("orphaned vehicle must be dropped from price-filtered results")
	}
}

func TestListPagination(t *testing.T) {
	svc, _, users := newVehicleFixture()
	owner := addUser(users, "u1", "Kyiv", true)
	for i := 0; i < 5; i++ {
		if _, err := svc.Create(context.Background(), owner, cargoInput(float64(i+1), 5)); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	page, err := svc.List(context.Background(), ListParams{Limit: 2, Offset: 2})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("expected 2 results, got %d", len(page))
	}

	capped, err := svc.List(context.Background(), ListParams{Limit: 1000})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(capped) != 5 {
		t.Fatalf("expected all 5 results under the cap, got %d", len(capped))
	}
}

func TestUpdateAndDeleteOwnership(t *testing.T) {
	svc, _, users := newVehicleFixture()
	owner := addUser(users, "u1", "Kyiv", true)
	stranger := addUser(users, "u2", "Lviv", true)

	created, err := svc.Create(context.Background(), owner, cargoInput(10, 5))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := svc.Update(context.Background(), stranger, created.ID, cargoInput(99, 5)); !errors.Is(err, ErrVehicleNotFound) {
		t.Fatalf("update by non-owner: expected ErrVehicleNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), stranger.ID, created.ID); !errors.Is(err, ErrVehicleNotFound) {
		t.Fatalf("delete by non-owner: expected ErrVehicleNotFound, got %v", err)
	}

	updated, err := svc.Update(context.Background(), owner, created.ID, cargoInput(42, 5))
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.PricePerKm != 42 {
		t.Fatalf("update did not persist, price is %.2f", updated.PricePerKm)
	}

	if err := svc.Delete(context.Background(), owner.ID, created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	remaining, err := svc.List(context.Background(), ListParams{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatal("deleted vehicle still appears in listing")
	}
	mine, err := svc.ListOwnedBy(context.Background(), owner)
	if err != nil {
		t.Fatalf("ListOwnedBy returned error: %v", err)
	}
	if len(mine) != 0 {
		t.Fatal("deleted vehicle still appears in owner listing")
	}
}

func TestGetByIDMissingVehicle(t *testing.T) {
	svc, _, _ := newVehicleFixture()
	if _, err := svc.GetByID(context.Background(), "no-such-id"); !errors.Is(err, ErrVehicleNotFound) {
		t.Fatalf("expected ErrVehicleNotFound, got %v", err)
	}
}
