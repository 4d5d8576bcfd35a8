package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// EnvFileEnv names the variable holding the .env file path.
const EnvFileEnv = "FORESTADMIN_ENV_FILE"

// parseEnv overlays cfg with environment variables. A .env file, when
// present, is loaded first; variables already set in the process win.
func parseEnv(cfg *Config) error {
	path := os.Getenv(EnvFileEnv)
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: load %s: %w", path, err)
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: environment: %w", err)
	}
	return nil
}
