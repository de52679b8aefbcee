package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"transportpro/internal/model"
)

type OrderRepository interface {
	Create(ctx context.Context, o *model.Order) error
	GetByID(ctx context.Context, id string) (*model.Order, error)
	// UpdateStatus overwrites the order status with whatever the gateway
	// reported. There is no state-machine guard: last write wins.
	UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) error
}

type orderRepo struct {
	pool *pgxpool.Pool
}

func NewOrderRepo(pool *pgxpool.Pool) OrderRepository {
	return &orderRepo{pool: pool}
}

func (r *orderRepo) Create(ctx context.Context, o *model.Order) error {
	const q = `
        INSERT INTO orders (id, user_id, package_id, amount, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.pool.Exec(ctx, q, o.ID, o.UserID, o.PackageID, o.Amount, o.Status, o.CreatedAt)
	return err
}

func (r *orderRepo) GetByID(ctx context.Context, id string) (*model.Order, error) {
	const q = `
        SELECT id, user_id, package_id, amount, status, created_at, updated_at
        FROM orders WHERE id = $1
    `
	var o model.Order
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&o.ID, &o.UserID, &o.PackageID, &o.Amount, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) error {
	const q = `UPDATE orders SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.pool.Exec(ctx, q, id, status, updatedAt)
	return err
}
