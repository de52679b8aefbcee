package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"transportpro/internal/model"
	"transportpro/internal/repository"
)

var (
	ErrSubscriptionRequired = errors.New("active subscription required")
	ErrVehicleNotFound      = errors.New("vehicle not found")
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

// VehicleInput carries the mutable listing fields for create and update.
type VehicleInput struct {
	VehicleType      string
	Brand            string
	Model            string
	Year             int
	CapacityTons     *float64
	DimensionsLength *float64
	DimensionsWidth  *float64
	DimensionsHeight *float64
	PassengerSeats   *int
	Description      string
	PricePerKm       float64
	Available        bool
	Images           []string
}

// ListParams are the public search filters. VehicleType and MinCapacity are
// applied at the store; City and MaxPrice after the owner join.
type ListParams struct {
	VehicleType string
	City        string
	MinCapacity float64
	MaxPrice    float64
	Limit       int
	Offset      int
}

// VehicleWithDriver is a listing joined with its owner's contact profile at
// read time. Driver fields are nil when the owner record no longer exists.
type VehicleWithDriver struct {
	model.Vehicle
	DriverName  *string
	DriverPhone *string
	DriverCity  *string
}

type VehicleService interface {
	Create(ctx context.Context, owner *model.User, in VehicleInput) (*VehicleWithDriver, error)
	List(ctx context.Context, p ListParams) ([]VehicleWithDriver, error)
	ListOwnedBy(ctx context.Context, owner *model.User) ([]VehicleWithDriver, error)
	GetByID(ctx context.Context, id string) (*VehicleWithDriver, error)
	Update(ctx context.Context, owner *model.User, id string, in VehicleInput) (*VehicleWithDriver, error)
	Delete(ctx context.Context, ownerID, id string) error
}

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	userRepo    repository.UserRepository
	logger      zerolog.Logger
}

func NewVehicleService(vehicleRepo repository.VehicleRepository, userRepo repository.UserRepository, logger zerolog.Logger) VehicleService {
	return &vehicleService{
		vehicleRepo: vehicleRepo,
		userRepo:    userRepo,
		logger:      logger.With().Str("service", "VehicleService").Logger(),
	}
}

func joined(v model.Vehicle, owner *model.User) VehicleWithDriver {
	out := VehicleWithDriver{Vehicle: v}
	if owner != nil {
		out.DriverName = &owner.Name
		out.DriverPhone = &owner.Phone
		out.DriverCity = &owner.City
	}
	return out
}

func (s *vehicleService) Create(ctx context.Context, owner *model.User, in VehicleInput) (*VehicleWithDriver, error) {
	// Subscription is checked at creation time only; existing listings are
	// not revoked when it lapses.
	if !owner.SubscriptionActive {
		return nil, ErrSubscriptionRequired
	}

	v := &model.Vehicle{
		ID:               uuid.New().String(),
		UserID:           owner.ID,
		VehicleType:      in.VehicleType,
		Brand:            in.Brand,
		Model:            in.Model,
		Year:             in.Year,
		CapacityTons:     in.CapacityTons,
		DimensionsLength: in.DimensionsLength,
		DimensionsWidth:  in.DimensionsWidth,
		DimensionsHeight: in.DimensionsHeight,
		PassengerSeats:   in.PassengerSeats,
		Description:      in.Description,
		PricePerKm:       in.PricePerKm,
		Available:        in.Available,
		Images:           in.Images,
		CreatedAt:        time.Now().UTC(),
	}
	if v.Images == nil {
		v.Images = []string{}
	}
	if err := s.vehicleRepo.Create(ctx, v); err != nil {
		s.logger.Error().Err(err).Str("user_id", owner.ID).Msg("Failed to create vehicle")
		return nil, fmt.Errorf("create vehicle: %w", err)
	}
	out := joined(*v, owner)
	return &out, nil
}

func (s *vehicleService) List(ctx context.Context, p ListParams) ([]VehicleWithDriver, error) {
	if p.Limit <= 0 {
		p.Limit = defaultListLimit
	}
	if p.Limit > maxListLimit {
		p.Limit = maxListLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}

	vehicles, err := s.vehicleRepo.ListAvailable(ctx, repository.VehicleFilter{
		VehicleType: p.VehicleType,
		MinCapacity: p.MinCapacity,
		Limit:       p.Limit,
		Offset:      p.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}

	ownerFiltered := p.City != "" || p.MaxPrice > 0
	result := []VehicleWithDriver{}
	for _, v := range vehicles {
		owner, err := s.userRepo.GetUserByID(ctx, v.UserID)
		if err != nil {
			return nil, fmt.Errorf("fetch owner for vehicle %s: %w", v.ID, err)
		}
		if owner == nil {
			// A listing whose owner is gone cannot satisfy an owner-derived
			// filter, so it is dropped from filtered results but kept, with
			// empty driver fields, in unfiltered ones.
			if ownerFiltered {
				continue
			}
			result = append(result, joined(v, nil))
			continue
		}
		if p.City != "" && !strings.Contains(strings.ToLower(owner.City), strings.ToLower(p.City)) {
			continue
		}
		if p.MaxPrice > 0 && v.PricePerKm > p.MaxPrice {
			continue
		}
		result = append(result, joined(v, owner))
	}
	return result, nil
}

func (s *vehicleService) ListOwnedBy(ctx context.Context, owner *model.User) ([]VehicleWithDriver, error) {
	vehicles, err := s.vehicleRepo.ListByOwner(ctx, owner.ID, maxListLimit)
	if err != nil {
		return nil, fmt.Errorf("list vehicles for user %s: %w", owner.ID, err)
	}
	result := make([]VehicleWithDriver, 0, len(vehicles))
	for _, v := range vehicles {
		result = append(result, joined(v, owner))
	}
	return result, nil
}

func (s *vehicleService) GetByID(ctx context.Context, id string) (*VehicleWithDriver, error) {
	v, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch vehicle %s: %w", id, err)
	}
	if v == nil {
		return nil, ErrVehicleNotFound
	}
	owner, err := s.userRepo.GetUserByID(ctx, v.UserID)
	if err != nil {
		return nil, fmt.Errorf("fetch owner for vehicle %s: %w", id, err)
	}
	out := joined(*v, owner)
	return &out, nil
}

func (s *vehicleService) Update(ctx context.Context, owner *model.User, id string, in VehicleInput) (*VehicleWithDriver, error) {
	v := &model.Vehicle{
		ID:               id,
		UserID:           owner.ID,
		VehicleType:      in.VehicleType,
		Brand:            in.Brand,
		Model:            in.Model,
		Year:             in.Year,
		CapacityTons:     in.CapacityTons,
		DimensionsLength: in.DimensionsLength,
		DimensionsWidth:  in.DimensionsWidth,
		DimensionsHeight: in.DimensionsHeight,
		PassengerSeats:   in.PassengerSeats,
		Description:      in.Description,
		PricePerKm:       in.PricePerKm,
		Available:        in.Available,
		Images:           in.Images,
	}
	if v.Images == nil {
		v.Images = []string{}
	}
	updated, err := s.vehicleRepo.Update(ctx, v)
	if err != nil {
		return nil, fmt.Errorf("update vehicle %s: %w", id, err)
	}
	if !updated {
		return nil, ErrVehicleNotFound
	}

	stored, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch vehicle %s after update: %w", id, err)
	}
	if stored == nil {
		return nil, ErrVehicleNotFound
	}
	out := joined(*stored, owner)
	return &out, nil
}

func (s *vehicleService) Delete(ctx context.Context, ownerID, id string) error {
	deleted, err := s.vehicleRepo.Delete(ctx, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete vehicle %s: %w", id, err)
	}
	if !deleted {
		return ErrVehicleNotFound
	}
	return nil
}
