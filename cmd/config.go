package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort    string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSslMode   string
	LogLevel    string
	JWTSecret   string
	DigestCron  string
	MigrateOnUp bool
}

// LoadConfig reads envFile when it exists, then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	config := Config{
		HTTPPort:    envOr("HTTP_PORT", "8080"),
		DBHost:      envOr("DB_HOST", "localhost"),
		DBPort:      envOr("DB_PORT", "5432"),
		DBUser:      envOr("DB_USER", "okada"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      envOr("DB_NAME", "okada"),
		DBSslMode:   envOr("DB_SSLMODE", "disable"),
		LogLevel:    envOr("LOG_LEVEL", "info"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		DigestCron:  os.Getenv("DIGEST_CRON"),
		MigrateOnUp: envOr("DB_MIGRATE", "true") == "true",
	}

	if config.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET must be set")
	}
	return config, nil
}

// DSN is the PostgreSQL connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
