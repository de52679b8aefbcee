package router

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"transportpro/internal/api/v1/handler"
	"transportpro/internal/config"
	"transportpro/internal/middleware"
	"transportpro/internal/repository"
	"transportpro/internal/service"
)

// New wires repositories, services and handlers and returns the HTTP handler
// together with the DB pool so main can close it on shutdown.
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (http.Handler, *pgxpool.Pool, error) {
	pool, err := repository.NewPool(ctx, cfg.DBConnectionString, logger)
	if err != nil {
		return nil, nil, err
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	userRepo := repository.NewUserRepo(pool)
	vehicleRepo := repository.NewVehicleRepo(pool)
	orderRepo := repository.NewOrderRepo(pool)

	fondy := service.NewFondyClient(cfg.FondyAPIURL, cfg.FondyMerchantPassword, logger)

	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, logger)
	vehicleSvc := service.NewVehicleService(vehicleRepo, userRepo, logger)
	paymentSvc := service.NewPaymentService(orderRepo, userRepo, fondy, cfg.FondyMerchantID, cfg.FrontendURL, cfg.BackendURL, logger)
	statsSvc := service.NewStatsService(userRepo, vehicleRepo, logger)

	authHandler := handler.NewAuthHandler(authSvc, validate, logger)
	vehicleHandler := handler.NewVehicleHandler(vehicleSvc, authSvc, validate, logger)
	packageHandler := handler.NewPackageHandler()
	paymentHandler := handler.NewPaymentHandler(paymentSvc, authSvc, validate, logger)
	statsHandler := handler.NewStatsHandler(statsSvc, logger)

	authMiddleware := middleware.AuthMiddleware(cfg.JWTSecret)

	apiMux := http.NewServeMux()
	authHandler.RegisterRoutes(apiMux, authMiddleware)
	vehicleHandler.RegisterRoutes(apiMux, authMiddleware)
	packageHandler.RegisterRoutes(apiMux)
	paymentHandler.RegisterRoutes(apiMux, authMiddleware)
	statsHandler.RegisterRoutes(apiMux)

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", apiMux))

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return middleware.LoggerMiddleware(logger, c.Handler(mux)), pool, nil
}
