package dto

import (
	"time"

	"transportpro/internal/model"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	City     string `json:"city" validate:"required"`
	UserType string `json:"user_type" validate:"omitempty,oneof=driver customer"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public-safe projection of a user record. It never
// carries the password hash.
type UserResponse struct {
	ID                  string     `json:"id"`
	Email               string     `json:"email"`
	Name                string     `json:"name"`
	Phone               string     `json:"phone"`
	City                string     `json:"city"`
	UserType            string     `json:"user_type"`
	CreatedAt           time.Time  `json:"created_at"`
	SubscriptionActive  bool       `json:"subscription_active"`
	SubscriptionExpires *time.Time `json:"subscription_expires"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:                  u.ID,
		Email:               u.Email,
		Name:                u.Name,
		Phone:               u.Phone,
		City:                u.City,
		UserType:            u.UserType,
		CreatedAt:           u.CreatedAt,
		SubscriptionActive:  u.SubscriptionActive,
		SubscriptionExpires: u.SubscriptionExpires,
	}
}
