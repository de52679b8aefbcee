package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"transportpro/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, u *model.User) error
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	// ActivateSubscription unconditionally sets the subscription fields on a
	// user. A repeated call with a fresh expiry extends the subscription.
	ActivateSubscription(ctx context.Context, userID, packageID string, expires time.Time) error
	CountByType(ctx context.Context, userType string) (int, error)
}

type userRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) UserRepository {
	return &userRepo{pool: pool}
}

const userColumns = `id, email, password_hash, name, phone, city, user_type, created_at,
       subscription_active, subscription_expires, subscription_package`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&u.Phone,
		&u.City,
		&u.UserType,
		&u.CreatedAt,
		&u.SubscriptionActive,
		&u.SubscriptionExpires,
		&u.SubscriptionPackage,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) CreateUser(ctx context.Context, u *model.User) error {
	const q = `
        INSERT INTO users (id, email, password_hash, name, phone, city, user_type, created_at,
                           subscription_active, subscription_expires, subscription_package)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `
	_, err := r.pool.Exec(ctx, q,
		u.ID, u.Email, u.PasswordHash, u.Name, u.Phone, u.City, u.UserType, u.CreatedAt,
		u.SubscriptionActive, u.SubscriptionExpires, u.SubscriptionPackage)
	return err
}

func (r *userRepo) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.pool.QueryRow(ctx, q, id))
}

func (r *userRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.pool.QueryRow(ctx, q, email))
}

func (r *userRepo) ActivateSubscription(ctx context.Context, userID, packageID string, expires time.Time) error {
	const q = `
        UPDATE users
        SET subscription_active = TRUE,
            subscription_expires = $2,
            subscription_package = $3
        WHERE id = $1
    `
	_, err := r.pool.Exec(ctx, q, userID, expires, packageID)
	return err
}

func (r *userRepo) CountByType(ctx context.Context, userType string) (int, error) {
	const q = `SELECT COUNT(*) FROM users WHERE user_type = $1`
	var n int
	if err := r.pool.QueryRow(ctx, q, userType).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
