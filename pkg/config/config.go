package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "SHOPCORE"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App      AppConfig
	Checkout CheckoutConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env      string `envconfig:"SHOPCORE_APP_ENV" default:"dev"`
	Port     string `envconfig:"SHOPCORE_APP_PORT" default:"8080"`
	LogLevel string `envconfig:"SHOPCORE_LOG_LEVEL" default:"info"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type CheckoutConfig struct {
	// ProcessingDelay is the fixed pause simulating payment processing
	// before the order is committed. Zero disables it.
	ProcessingDelay time.Duration `envconfig:"SHOPCORE_CHECKOUT_PROCESSING_DELAY" default:"1500ms"`
}
