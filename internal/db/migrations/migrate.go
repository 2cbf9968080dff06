// Package migrations runs the versioned SQL schema migrations shipped with the binary
package migrations

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"    // mysql:// URLs
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // postgres:// URLs
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/celestiaorg/jobtracker/internal/logger"
)

//go:embed sql
var migrationFiles embed.FS

// Config holds migration configuration
type Config struct {
	// Driver selects the SQL dialect directory, "postgres" or "mysql"
	Driver        string
	DatabaseURL   string
	RetryAttempts int
	RetryDelay    time.Duration
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Driver:        "postgres",
		RetryAttempts: 5,
		RetryDelay:    time.Second * 3,
	}
}

// MigrationService handles database migrations
type MigrationService struct {
	config  Config
	migrate *migrate.Migrate
}

// Source returns the embedded migration files for the given driver
func Source(driver string) (fs.FS, error) {
	switch driver {
	case "postgres", "mysql":
		return fs.Sub(migrationFiles, "sql/"+driver)
	default:
		return nil, fmt.Errorf("no migrations for driver %q", driver)
	}
}

// NewMigrationService creates a new migration service
func NewMigrationService(config Config) (*MigrationService, error) {
	files, err := Source(config.Driver)
	if err != nil {
		return nil, err
	}

	var m *migrate.Migrate
	// Retry connection a few times before giving up
	for i := 0; i < config.RetryAttempts; i++ {
		src, srcErr := iofs.New(files, ".")
		if srcErr != nil {
			return nil, fmt.Errorf("failed to read embedded migrations: %w", srcErr)
		}
		m, err = migrate.NewWithSourceInstance("iofs", src, config.DatabaseURL)
		if err == nil {
			break
		}
		logger.Warnf("Failed to connect to database, attempt %d/%d: %v", i+1, config.RetryAttempts, err)
		time.Sleep(config.RetryDelay)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance after %d attempts: %w", config.RetryAttempts, err)
	}

	return &MigrationService{
		config:  config,
		migrate: m,
	}, nil
}

// Up runs all pending migrations
func (s *MigrationService) Up() error {
	if err := s.migrate.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Info("Migrations completed successfully")
	return nil
}

// Down rolls back all migrations
func (s *MigrationService) Down() error {
	if err := s.migrate.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to rollback migrations: %w", err)
	}
	logger.Info("Rollback completed successfully")
	return nil
}

// Steps runs n migrations up or down
func (s *MigrationService) Steps(n int) error {
	if err := s.migrate.Steps(n); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run %d migrations: %w", n, err)
	}
	return nil
}

// Version returns the current migration version
func (s *MigrationService) Version() (uint, bool, error) {
	return s.migrate.Version()
}

// Force forces a specific version
func (s *MigrationService) Force(version int) error {
	return s.migrate.Force(version)
}

// Close releases the source and database handles
func (s *MigrationService) Close() error {
	srcErr, dbErr := s.migrate.Close()
	return errors.Join(srcErr, dbErr)
}
