package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"transportpro/internal/model"
	"transportpro/internal/repository"
	"transportpro/internal/util"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUserNotFound           = errors.New("user not found")
)

// RegisterInput carries the profile fields collected at signup.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
	City     string
	UserType string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*model.User, error)
	// Login returns a session token and the matching user record.
	Login(ctx context.Context, email, password string) (string, *model.User, error)
	// GetByID re-fetches a user by id. Protected endpoints call this after
	// token verification so subscription state is always current.
	GetByID(ctx context.Context, id string) (*model.User, error)
}

type authService struct {
	userRepo  repository.UserRepository
	jwtSecret string
	logger    zerolog.Logger
}

func NewAuthService(userRepo repository.UserRepository, jwtSecret string, logger zerolog.Logger) AuthService {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		logger:    logger.With().Str("service", "AuthService").Logger(),
	}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	existing, err := s.userRepo.GetUserByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("check existing email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailAlreadyRegistered
	}

	u := &model.User{
		ID:                 uuid.New().String(),
		Email:              in.Email,
		PasswordHash:       util.HashPassword(in.Password),
		Name:               in.Name,
		Phone:              in.Phone,
		City:               in.City,
		UserType:           in.UserType,
		CreatedAt:          time.Now().UTC(),
		SubscriptionActive: false,
	}
	if err := s.userRepo.CreateUser(ctx, u); err != nil {
		s.logger.Error().Err(err).Str("email", in.Email).Msg("Failed to create user")
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	u, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", nil, fmt.Errorf("fetch user by email: %w", err)
	}
	if u == nil || u.PasswordHash != util.HashPassword(password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := util.GenerateToken(u.ID, u.Email, s.jwtSecret)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", u.ID).Msg("Failed to sign token")
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return token, u, nil
}

func (s *authService) GetByID(ctx context.Context, id string) (*model.User, error) {
	u, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch user %s: %w", id, err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
