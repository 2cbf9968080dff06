// Package db provides database connectivity and operations
package db

import (
	"fmt"
	"log"
	"net/url"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/celestiaorg/jobtracker/internal/db/models"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Database configuration constants
const (
	// DefaultDriver is the default database driver
	DefaultDriver = DriverPostgres
	// DefaultHost is the default database host
	DefaultHost = "localhost"
	// DefaultPostgresPort is the default port for postgres
	DefaultPostgresPort = 5432
	// DefaultMySQLPort is the default port for mysql
	DefaultMySQLPort = 3306
	// DefaultUser is the default database user
	DefaultUser = "postgres"
	// DefaultPassword is the default database password
	DefaultPassword = "postgres"
	// DefaultDBName is the default database name
	DefaultDBName     = "jobtracker"
	DefaultSSLEnabled = false
)

// Options represents database connection configuration options
type Options struct {
	Driver     string
	Host       string
	User       string
	Password   string
	DBName     string
	Port       int
	SSLEnabled *bool
	LogLevel   logger.LogLevel
	// SkipMigrate disables the automatic schema migration on startup
	SkipMigrate bool
}

// New creates a new database connection with the given options
func New(opts Options) (*gorm.DB, error) {
	opts = setDefaults(opts)

	dialector, err := Dialector(opts)
	if err != nil {
		return nil, err
	}

	// Configure custom logger to ignore record not found errors
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			LogLevel:                  opts.LogLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{Logger: newLogger})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", opts.Driver, err)
	}
	if opts.SkipMigrate {
		return db, nil
	}
	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

// Dialector returns the gorm dialector for the configured driver. No connection is made.
func Dialector(opts Options) (gorm.Dialector, error) {
	opts = setDefaults(opts)
	switch opts.Driver {
	case DriverPostgres:
		return postgres.Open(DSN(opts)), nil
	case DriverMySQL:
		return mysql.Open(DSN(opts)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", opts.Driver)
	}
}

// DSN builds the driver-specific connection string
func DSN(opts Options) string {
	opts = setDefaults(opts)
	ssl := opts.SSLEnabled != nil && *opts.SSLEnabled

	if opts.Driver == DriverMySQL {
		tls := "false"
		if ssl {
			tls = "true"
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC&tls=%s",
			opts.User, opts.Password, opts.Host, opts.Port, opts.DBName, tls)
	}

	sslMode := "disable"
	if ssl {
		sslMode = "require"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		opts.Host, opts.User, opts.Password, opts.DBName, opts.Port, sslMode)
}

// MigrationURL builds the URL golang-migrate expects for the configured driver
func MigrationURL(opts Options) string {
	opts = setDefaults(opts)
	ssl := opts.SSLEnabled != nil && *opts.SSLEnabled
	userInfo := url.UserPassword(opts.User, opts.Password).String()

	if opts.Driver == DriverMySQL {
		return fmt.Sprintf("mysql://%s@tcp(%s:%d)/%s?tls=%t&multiStatements=true",
			userInfo, opts.Host, opts.Port, opts.DBName, ssl)
	}

	sslMode := "disable"
	if ssl {
		sslMode = "require"
	}
	return fmt.Sprintf("postgres://%s@%s:%d/%s?sslmode=%s",
		userInfo, opts.Host, opts.Port, opts.DBName, sslMode)
}

// Migrate creates or updates the schema of every persisted model
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Job{},
	)
}

func setDefaults(opts Options) Options {
	if opts.Driver == "" {
		opts.Driver = DefaultDriver
	}
	if opts.Host == "" {
		opts.Host = DefaultHost
	}
	if opts.User == "" {
		opts.User = DefaultUser
	}
	if opts.Password == "" {
		opts.Password = DefaultPassword
	}
	if opts.DBName == "" {
		opts.DBName = DefaultDBName
	}
	if opts.Port == 0 {
		opts.Port = DefaultPostgresPort
		if opts.Driver == DriverMySQL {
			opts.Port = DefaultMySQLPort
		}
	}
	if opts.SSLEnabled == nil {
		sslMode := DefaultSSLEnabled
		opts.SSLEnabled = &sslMode
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Warn
	}
	return opts
}
