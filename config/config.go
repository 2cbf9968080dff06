// Package config loads the service configuration from the environment
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/celestiaorg/jobtracker/internal/constants"
	"github.com/celestiaorg/jobtracker/internal/db"
)

// DefaultPort is the default port for the API server
const DefaultPort = "8080"

// Config is the full runtime configuration of the API server
type Config struct {
	Port     string
	LogLevel string
	DB       db.Options
}

// GetEnv retrieves the value of an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Load reads the configuration from the process environment.
// Unset database values are left empty so db.New applies its own defaults.
func Load() (Config, error) {
	cfg := Config{
		Port:     GetEnv(constants.EnvServerPort, DefaultPort),
		LogLevel: GetEnv(constants.EnvLogLevel, "info"),
		DB: db.Options{
			Driver:   GetEnv(constants.EnvDBDriver, ""),
			Host:     GetEnv(constants.EnvDBHost, ""),
			User:     GetEnv(constants.EnvDBUser, ""),
			Password: GetEnv(constants.EnvDBPassword, ""),
			DBName:   GetEnv(constants.EnvDBName, ""),
		},
	}

	if port := GetEnv(constants.EnvDBPort, ""); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", constants.EnvDBPort, port, err)
		}
		cfg.DB.Port = p
	}

	if ssl := GetEnv(constants.EnvDBSSLEnabled, ""); ssl != "" {
		enabled, err := strconv.ParseBool(ssl)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", constants.EnvDBSSLEnabled, ssl, err)
		}
		cfg.DB.SSLEnabled = &enabled
	}

	autoMigrate, err := strconv.ParseBool(GetEnv(constants.EnvDBAutoMigrate, "true"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", constants.EnvDBAutoMigrate, err)
	}
	cfg.DB.SkipMigrate = !autoMigrate

	return cfg, nil
}
