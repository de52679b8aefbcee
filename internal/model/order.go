package model

import "time"

// OrderStatusPending is the only status this system assigns itself; every
// other value is reported by the payment gateway and stored verbatim.
const (
	OrderStatusPending  = "pending"
	OrderStatusApproved = "approved"
)

// Order records a single subscription-purchase attempt. Status transitions
// are driven exclusively by gateway callbacks, last write wins.
type Order struct {
	ID        string     `db:"id" json:"id"`
	UserID    string     `db:"user_id" json:"user_id"`
	PackageID string     `db:"package_id" json:"package_id"`
	Amount    int        `db:"amount" json:"amount"`
	Status    string     `db:"status" json:"status"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
