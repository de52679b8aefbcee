package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"transportpro/internal/model"
)

// VehicleFilter holds the store-level listing filters. City and price
// filters are applied after the owner join, in the service layer.
type VehicleFilter struct {
	VehicleType string
	MinCapacity float64
	Limit       int
	Offset      int
}

type VehicleRepository interface {
	Create(ctx context.Context, v *model.Vehicle) error
	GetByID(ctx context.Context, id string) (*model.Vehicle, error)
	// ListAvailable returns available vehicles matching the store-level
	// filters, in insertion order.
	ListAvailable(ctx context.Context, f VehicleFilter) ([]model.Vehicle, error)
	ListByOwner(ctx context.Context, userID string, limit int) ([]model.Vehicle, error)
	// Update persists all mutable fields of a vehicle matched by the
	// (id, user_id) pair. Returns false if no such vehicle exists.
	Update(ctx context.Context, v *model.Vehicle) (bool, error)
	// Delete removes the vehicle matched by the (id, user_id) pair.
	// Returns false if no such vehicle exists.
	Delete(ctx context.Context, id, userID string) (bool, error)
	Count(ctx context.Context) (int, error)
	CountByType(ctx context.Context, vehicleType string) (int, error)
}

type vehicleRepo struct {
	pool *pgxpool.Pool
}

func NewVehicleRepo(pool *pgxpool.Pool) VehicleRepository {
	return &vehicleRepo{pool: pool}
}

const vehicleColumns = `id, user_id, vehicle_type, brand, model, year, capacity_tons,
       dimensions_length, dimensions_width, dimensions_height, passenger_seats,
       description, price_per_km, available, images, created_at`

func scanVehicle(row pgx.Row) (*model.Vehicle, error) {
	var v model.Vehicle
	err := row.Scan(
		&v.ID,
		&v.UserID,
		&v.VehicleType,
		&v.Brand,
		&v.Model,
		&v.Year,
		&v.CapacityTons,
		&v.DimensionsLength,
		&v.DimensionsWidth,
		&v.DimensionsHeight,
		&v.PassengerSeats,
		&v.Description,
		&v.PricePerKm,
		&v.Available,
		&v.Images,
		&v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *vehicleRepo) Create(ctx context.Context, v *model.Vehicle) error {
	const q = `
        INSERT INTO vehicles (id, user_id, vehicle_type, brand, model, year, capacity_tons,
                              dimensions_length, dimensions_width, dimensions_height,
                              passenger_seats, description, price_per_km, available, images, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
    `
	_, err := r.pool.Exec(ctx, q,
		v.ID, v.UserID, v.VehicleType, v.Brand, v.Model, v.Year, v.CapacityTons,
		v.DimensionsLength, v.DimensionsWidth, v.DimensionsHeight,
		v.PassengerSeats, v.Description, v.PricePerKm, v.Available, v.Images, v.CreatedAt)
	return err
}

func (r *vehicleRepo) GetByID(ctx context.Context, id string) (*model.Vehicle, error) {
	const q = `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	v, err := scanVehicle(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepo) ListAvailable(ctx context.Context, f VehicleFilter) ([]model.Vehicle, error) {
	q := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE available = TRUE`
	var args []interface{}
	if f.VehicleType != "" {
		args = append(args, f.VehicleType)
		q += fmt.Sprintf(" AND vehicle_type = $%d", len(args))
	}
	if f.MinCapacity > 0 {
		args = append(args, f.MinCapacity)
		q += fmt.Sprintf(" AND capacity_tons >= $%d", len(args))
	}
	args = append(args, f.Limit, f.Offset)
	q += fmt.Sprintf(" ORDER BY created_at LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectVehicles(rows)
}

func (r *vehicleRepo) ListByOwner(ctx context.Context, userID string, limit int) ([]model.Vehicle, error) {
	const q = `SELECT ` + vehicleColumns + ` FROM vehicles WHERE user_id = $1 ORDER BY created_at LIMIT $2`
	rows, err := r.pool.Query(ctx, q, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectVehicles(rows)
}

func collectVehicles(rows pgx.Rows) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, *v)
	}
	return vehicles, rows.Err()
}

func (r *vehicleRepo) Update(ctx context.Context, v *model.Vehicle) (bool, error) {
	const q = `
        UPDATE vehicles
        SET vehicle_type = $3, brand = $4, model = $5, year = $6, capacity_tons = $7,
            dimensions_length = $8, dimensions_width = $9, dimensions_height = $10,
            passenger_seats = $11, description = $12, price_per_km = $13,
            available = $14, images = $15
        WHERE id = $1 AND user_id = $2
    `
	tag, err := r.pool.Exec(ctx, q,
		v.ID, v.UserID, v.VehicleType, v.Brand, v.Model, v.Year, v.CapacityTons,
		v.DimensionsLength, v.DimensionsWidth, v.DimensionsHeight,
		v.PassengerSeats, v.Description, v.PricePerKm, v.Available, v.Images)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *vehicleRepo) Delete(ctx context.Context, id, userID string) (bool, error) {
	const q = `DELETE FROM vehicles WHERE id = $1 AND user_id = $2`
	tag, err := r.pool.Exec(ctx, q, id, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *vehicleRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM vehicles`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *vehicleRepo) CountByType(ctx context.Context, vehicleType string) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM vehicles WHERE vehicle_type = $1`, vehicleType).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
