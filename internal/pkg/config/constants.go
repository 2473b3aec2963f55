package config

// Log level constants
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log type constants
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
	LogTypeBoth    = "both"
)

// Log rotation constants
const (
	LogRotationHourly = "hourly"
	LogRotationDaily  = "daily"
	LogRotationNever  = "never"
)

// Ban source constants
const (
	BanSourceFile     = "file"
	BanSourceDatabase = "database"
	BanSourceRedis    = "redis"
)

// Database type constants
const (
	SqliteDbType   = "sqlite"
	PostgresDbType = "postgres"
)
