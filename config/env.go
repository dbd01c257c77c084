package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "N225RISK"

// Env holds process settings read from N225RISK_* variables. Calculation
// constants are never taken from the environment.
type Env struct {
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	ConfigPath string `envconfig:"CONFIG"` // plan file used when --plan is not given
}

// LoadEnv reads an optional .env file, then the environment.
func LoadEnv(files ...string) (*Env, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var env Env
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	return &env, nil
}
