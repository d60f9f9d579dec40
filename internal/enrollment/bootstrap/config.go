package bootstrap

import (
	"fmt"
	"time"

	"github.com/Lexv0lk/course-store/internal/enrollment/application"
	"github.com/Lexv0lk/course-store/internal/enrollment/domain"
	"github.com/Lexv0lk/course-store/internal/pkg/database"
	"github.com/Lexv0lk/course-store/internal/pkg/env"
	"github.com/Lexv0lk/course-store/internal/pkg/logging"
	"github.com/shopspring/decimal"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type EnrollmentConfig struct {
	DbSettings  database.PostgresSettings
	AutoMigrate bool

	HttpPort  string
	JwtSecret string

	StorageDriver string
	SeedFile      string

	EnrollTimeout time.Duration
	StartBalance  decimal.Decimal

	LogLevel  string
	LogFormat string
}

func DefaultEnrollmentConfig() EnrollmentConfig {
	return EnrollmentConfig{
		DbSettings: database.PostgresSettings{
			User:     "admin",
			Password: "password",
			Host:     "localhost",
			Port:     "5432",
			DBName:   "course_store_db",
		},
		HttpPort:      ":8080",
		StorageDriver: StorageDriverPostgres,
		EnrollTimeout: application.DefaultEnrollTimeout,
		StartBalance:  domain.StartBalance,
		LogLevel:      "info",
		LogFormat:     logging.FormatText,
	}
}

// LoadEnrollmentConfig applies the environment over the defaults.
func LoadEnrollmentConfig() (EnrollmentConfig, error) {
	cfg := DefaultEnrollmentConfig()

	dbSettings, err := loadDatabaseSettings(cfg.DbSettings)
	if err != nil {
		return EnrollmentConfig{}, err
	}
	cfg.DbSettings = dbSettings

	env.TrySetFromEnv(env.EnvHttpPort, &cfg.HttpPort)
	env.TrySetFromEnv(env.EnvJwtSecret, &cfg.JwtSecret)
	env.TrySetFromEnv(env.EnvStorageDriver, &cfg.StorageDriver)
	env.TrySetFromEnv(env.EnvSeedFile, &cfg.SeedFile)
	env.TrySetFromEnv(env.EnvLogLevel, &cfg.LogLevel)
	env.TrySetFromEnv(env.EnvLogFormat, &cfg.LogFormat)

	if err := env.TrySetBoolFromEnv(env.EnvAutoMigrate, &cfg.AutoMigrate); err != nil {
		return EnrollmentConfig{}, fmt.Errorf("invalid %s: %w", env.EnvAutoMigrate, err)
	}

	if err := env.TrySetDurationFromEnv(env.EnvEnrollTimeout, &cfg.EnrollTimeout); err != nil {
		return EnrollmentConfig{}, fmt.Errorf("invalid %s: %w", env.EnvEnrollTimeout, err)
	}

	startBalance := ""
	env.TrySetFromEnv(env.EnvStartBalance, &startBalance)
	if startBalance != "" {
		parsed, err := decimal.NewFromString(startBalance)
		if err != nil {
			return EnrollmentConfig{}, fmt.Errorf("invalid %s: %w", env.EnvStartBalance, err)
		}

		cfg.StartBalance = parsed
	}

	if err := cfg.Validate(); err != nil {
		return EnrollmentConfig{}, err
	}

	return cfg, nil
}

func (c EnrollmentConfig) Validate() error {
	if c.JwtSecret == "" {
		return fmt.Errorf("%s must be set", env.EnvJwtSecret)
	}

	if c.StorageDriver != StorageDriverPostgres && c.StorageDriver != StorageDriverMemory {
		return fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}

	if c.EnrollTimeout <= 0 {
		return fmt.Errorf("enroll timeout must be positive, got %s", c.EnrollTimeout)
	}

	if c.StartBalance.IsNegative() {
		return fmt.Errorf("start balance must not be negative, got %s", c.StartBalance)
	}

	return nil
}

// LoadDatabaseSettings applies the DB_* environment over the default settings.
func LoadDatabaseSettings() (database.PostgresSettings, error) {
	return loadDatabaseSettings(DefaultEnrollmentConfig().DbSettings)
}

func loadDatabaseSettings(settings database.PostgresSettings) (database.PostgresSettings, error) {
	env.TrySetFromEnv(env.EnvDatabaseHost, &settings.Host)
	env.TrySetFromEnv(env.EnvDatabasePort, &settings.Port)
	env.TrySetFromEnv(env.EnvDatabaseUser, &settings.User)
	env.TrySetFromEnv(env.EnvDatabasePassword, &settings.Password)
	env.TrySetFromEnv(env.EnvDatabaseName, &settings.DBName)

	if err := env.TrySetBoolFromEnv(env.EnvDatabaseSSL, &settings.SSlEnabled); err != nil {
		return database.PostgresSettings{}, fmt.Errorf("invalid %s: %w", env.EnvDatabaseSSL, err)
	}

	return settings, nil
}
