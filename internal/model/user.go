package model

import "time"

// User represents a registered account. Drivers list vehicles; customers
// browse them. Subscription fields are mutated only by payment callbacks
// or the demo activation endpoint.
type User struct {
	ID                  string     `db:"id" json:"id"`
	Email               string     `db:"email" json:"email"`
	PasswordHash        string     `db:"password_hash" json:"-"`
	Name                string     `db:"name" json:"name"`
	Phone               string     `db:"phone" json:"phone"`
	City                string     `db:"city" json:"city"`
	UserType            string     `db:"user_type" json:"user_type"`
	CreatedAt           time.Time  `db:"created_at" json:"created_at"`
	SubscriptionActive  bool       `db:"subscription_active" json:"subscription_active"`
	SubscriptionExpires *time.Time `db:"subscription_expires" json:"subscription_expires,omitempty"`
	SubscriptionPackage *string    `db:"subscription_package" json:"subscription_package,omitempty"`
}

const (
	UserTypeDriver   = "driver"
	UserTypeCustomer = "customer"
)
