// Package constants provides centralized definitions of constants used throughout the application
package constants

// Environment variable names
const (
	// EnvServerPort is the port the API server listens on
	EnvServerPort = "PORT"
	// EnvLogLevel is the logrus level name (trace, debug, info, warn, error)
	EnvLogLevel = "LOG_LEVEL"

	// EnvDBDriver selects the database driver, "postgres" or "mysql"
	EnvDBDriver = "DB_DRIVER"
	// EnvDBHost is the database host
	EnvDBHost = "DB_HOST"
	// EnvDBPort is the database port
	EnvDBPort = "DB_PORT"
	// EnvDBUser is the database user
	EnvDBUser = "DB_USER"
	// EnvDBPassword is the database password
	EnvDBPassword = "DB_PASSWORD"
	// EnvDBName is the database name
	EnvDBName = "DB_NAME"
	// EnvDBSSLEnabled turns TLS on for the database connection
	EnvDBSSLEnabled = "DB_SSL_ENABLED"
	// EnvDBAutoMigrate controls gorm auto-migration on startup
	EnvDBAutoMigrate = "DB_AUTO_MIGRATE"

	// EnvServerAddress is the API address used by the CLI
	EnvServerAddress = "JOBTRACKER_SERVER_ADDRESS"
)

// UserIDHeader carries the authenticated user's ID, set by the upstream auth layer
const UserIDHeader = "X-User-ID"
