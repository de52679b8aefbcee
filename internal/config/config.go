package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENV" default:"development"`

	DBConnectionString string `envconfig:"DATABASE_URL" required:"true"`

	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	// Fondy payment gateway settings
	FondyMerchantID       int    `envconfig:"FONDY_MERCHANT_ID" required:"true"`
	FondyMerchantPassword string `envconfig:"FONDY_MERCHANT_PASSWORD" required:"true"`
	FondyAPIURL           string `envconfig:"FONDY_API_URL" default:"https://pay.fondy.eu/api"`

	// Base URLs used to build payment redirect and callback targets
	FrontendURL string `envconfig:"FRONTEND_URL" default:"http://localhost:3000"`
	BackendURL  string `envconfig:"BACKEND_URL" default:"http://localhost:8001"`

	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"*"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
