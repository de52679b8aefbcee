package service

import (
	"context"
	"time"

	"transportpro/internal/model"
	"transportpro/internal/repository"
)

// In-memory repository fakes. They mirror the behavior of the Postgres
// repositories: insertion order, store-level filters, compound ownership
// matches and nil results for missing rows.

type fakeUserRepo struct {
	users []*model.User
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, u *model.User) error {
	cp := *u
	r.users = append(r.users, &cp)
	return nil
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ActivateSubscription(ctx context.Context, userID, packageID string, expires time.Time) error {
	for _, u := range r.users {
		if u.ID == userID {
			u.SubscriptionActive = true
			exp := expires
			u.SubscriptionExpires = &exp
			pkg := packageID
			u.SubscriptionPackage = &pkg
		}
	}
	return nil
}

func (r *fakeUserRepo) CountByType(ctx context.Context, userType string) (int, error) {
	n := 0
	for _, u := range r.users {
		if u.UserType == userType {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) remove(id string) {
	kept := r.users[:0]
	for _, u := range r.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	r.users = kept
}

type fakeVehicleRepo struct {
	vehicles []model.Vehicle
}

func (r *fakeVehicleRepo) Create(ctx context.Context, v *model.Vehicle) error {
	r.vehicles = append(r.vehicles, *v)
	return nil
}

func (r *fakeVehicleRepo) GetByID(ctx context.Context, id string) (*model.Vehicle, error) {
	for i := range r.vehicles {
		if r.vehicles[i].ID == id {
			cp := r.vehicles[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeVehicleRepo) ListAvailable(ctx context.Context, f repository.VehicleFilter) ([]model.Vehicle, error) {
	var matched []model.Vehicle
	for _, v := range r.vehicles {
		if !v.Available {
			continue
		}
		if f.VehicleType != "" && v.VehicleType != f.VehicleType {
			continue
		}
		if f.MinCapacity > 0 && (v.CapacityTons == nil || *v.CapacityTons < f.MinCapacity) {
			continue
		}
		matched = append(matched, v)
	}
	if f.Offset >= len(matched) {
		return nil, nil
	}
	matched = matched[f.Offset:]
	if len(matched) > f.Limit {
		matched = matched[:f.Limit]
	}
	return matched, nil
}

func (r *fakeVehicleRepo) ListByOwner(ctx context.Context, userID string, limit int) ([]model.Vehicle, error) {
	var out []model.Vehicle
	for _, v := range r.vehicles {
		if v.UserID == userID && len(out) < limit {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeVehicleRepo) Update(ctx context.Context, v *model.Vehicle) (bool, error) {
	for i := range r.vehicles {
		if r.vehicles[i].ID == v.ID && r.vehicles[i].UserID == v.UserID {
			created := r.vehicles[i].CreatedAt
			r.vehicles[i] = *v
			r.vehicles[i].CreatedAt = created
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeVehicleRepo) Delete(ctx context.Context, id, userID string) (bool, error) {
	for i := range r.vehicles {
		if r.vehicles[i].ID == id && r.vehicles[i].UserID == userID {
			r.vehicles = append(r.vehicles[:i], r.vehicles[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeVehicleRepo) Count(ctx context.Context) (int, error) {
	return len(r.vehicles), nil
}

func (r *fakeVehicleRepo) CountByType(ctx context.Context, vehicleType string) (int, error) {
	n := 0
	for _, v := range r.vehicles {
		if v.VehicleType == vehicleType {
			n++
		}
	}
	return n, nil
}

type fakeOrderRepo struct {
	orders []*model.Order
}

func (r *fakeOrderRepo) Create(ctx context.Context, o *model.Order) error {
	cp := *o
	r.orders = append(r.orders, &cp)
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (*model.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) error {
	for _, o := range r.orders {
		if o.ID == id {
			o.Status = status
			ts := updatedAt
			o.UpdatedAt = &ts
		}
	}
	return nil
}
