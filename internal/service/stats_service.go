package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"transportpro/internal/model"
	"transportpro/internal/repository"
)

// Stats are platform-wide counters, computed fresh on every call.
type Stats struct {
	Drivers           int `json:"drivers"`
	Vehicles          int `json:"vehicles"`
	CargoVehicles     int `json:"cargo_vehicles"`
	PassengerVehicles int `json:"passenger_vehicles"`
}

type StatsService interface {
	Collect(ctx context.Context) (*Stats, error)
}

type statsService struct {
	userRepo    repository.UserRepository
	vehicleRepo repository.VehicleRepository
	logger      zerolog.Logger
}

func NewStatsService(userRepo repository.UserRepository, vehicleRepo repository.VehicleRepository, logger zerolog.Logger) StatsService {
	return &statsService{
		userRepo:    userRepo,
		vehicleRepo: vehicleRepo,
		logger:      logger.With().Str("service", "StatsService").Logger(),
	}
}

func (s *statsService) Collect(ctx context.Context) (*Stats, error) {
	drivers, err := s.userRepo.CountByType(ctx, model.UserTypeDriver)
	if err != nil {
		return nil, fmt.Errorf("count drivers: %w", err)
	}
	vehicles, err := s.vehicleRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count vehicles: %w", err)
	}
	cargo, err := s.vehicleRepo.CountByType(ctx, model.VehicleTypeCargo)
	if err != nil {
		return nil, fmt.Errorf("count cargo vehicles: %w", err)
	}
	passenger, err := s.vehicleRepo.CountByType(ctx, model.VehicleTypePassenger)
	if err != nil {
		return nil, fmt.Errorf("count passenger vehicles: %w", err)
	}
	return &Stats{
		Drivers:           drivers,
		Vehicles:          vehicles,
		CargoVehicles:     cargo,
		PassengerVehicles: passenger,
	}, nil
}
