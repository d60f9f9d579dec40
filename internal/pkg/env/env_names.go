package env

const (
	EnvHttpPort = "HTTP_PORT"

	EnvDatabaseHost     = "DB_HOST"
	EnvDatabasePort     = "DB_PORT"
	EnvDatabaseUser     = "DB_USER"
	EnvDatabasePassword = "DB_PASSWORD"
	EnvDatabaseName     = "DB_NAME"
	EnvDatabaseSSL      = "DB_SSL"
	EnvAutoMigrate      = "DB_AUTO_MIGRATE"

	EnvJwtSecret = "JWT_SECRET"

	EnvStorageDriver = "STORAGE_DRIVER"
	EnvSeedFile      = "SEED_FILE"
	EnvEnrollTimeout = "ENROLL_TIMEOUT"
	EnvStartBalance  = "START_BALANCE"

	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"
)
