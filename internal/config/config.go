// Package config loads the btcwatch configuration from the environment.
//
// Variables are read with the BTCWATCH prefix, after an optional dotenv file
// has been loaded. Values already present in the environment take precedence
// over the dotenv file.
package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/gabapcia/btcwatch/internal/pkg/validator"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. BTCWATCH_API_TIMEOUT.
const Prefix = "BTCWATCH"

// DefaultDotenvFile is read by Load when no file is given.
const DefaultDotenvFile = ".env"

type (
	// Config is the full process configuration.
	Config struct {
		LogLevel  string    `split_words:"true" default:"info" validate:"oneof=debug info warn error"`
		API       API
		Redis     Redis
		Telemetry Telemetry
	}

	// API configures access to blockchain.info.
	API struct {
		BaseURL      string        `split_words:"true" default:"https://blockchain.info" validate:"required,url"`
		Timeout      time.Duration `default:"10s" validate:"gt=0"`
		RetryMax     int           `split_words:"true" default:"2" validate:"min=0"`
		RetryWaitMin time.Duration `split_words:"true" default:"1s" validate:"gt=0"`
		RetryWaitMax time.Duration `split_words:"true" default:"5s" validate:"gtefield=RetryWaitMin"`
	}

	// Redis configures the seen-transfer storage. An empty Addr keeps the
	// storage in memory.
	Redis struct {
		Addr     string `validate:"omitempty,hostname_port"`
		Username string
		Password string
		DB       int `default:"0" validate:"min=0"`
	}

	// Telemetry configures OpenTelemetry export.
	Telemetry struct {
		Enabled     bool   `default:"false"`
		ServiceName string `split_words:"true" default:"btcwatch" validate:"required"`
	}
)

// Load reads the dotenv files (DefaultDotenvFile when none is given), then the
// environment, and validates the result. Missing dotenv files are ignored.
//
// It returns an error wrapping validator.ErrValidation when a value is out of range.
func Load(dotenvFiles ...string) (Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{DefaultDotenvFile}
	}

	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
