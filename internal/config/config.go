package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPAddr       = ":8080"
	defaultDatabaseDSN    = "data/registry.db"
	defaultDataDir        = "data"
	defaultJWTSecret      = "change-me-jwt-secret"
	defaultJWTTTL         = "24h"
	defaultAdminPassword  = "1234"
	defaultViewerPassword = "1234"
	defaultLogFile        = "logs/app.log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	DatabaseDSN string
	// DataDir is the attachment root; photos/ and pdfs/ live under it.
	DataDir        string
	JWTSecret      string
	JWTTTL         time.Duration
	AdminPassword  string
	ViewerPassword string
	LogFile        string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on env vars")
	}

	cfg := &Config{
		AppEnv:         strings.ToLower(strings.TrimSpace(getEnv("APP_ENV", "dev"))),
		HTTPAddr:       getEnv("HTTP_ADDR", defaultHTTPAddr),
		DatabaseDSN:    getEnv("DATABASE_URL", defaultDatabaseDSN),
		DataDir:        getEnv("DATA_DIR", defaultDataDir),
		JWTSecret:      strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret)),
		AdminPassword:  getEnv("ADMIN_PASSWORD", defaultAdminPassword),
		ViewerPassword: getEnv("VIEWER_PASSWORD", defaultViewerPassword),
		LogFile:        getEnv("LOG_FILE", defaultLogFile),
	}

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.DatabaseDSN == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if isProdLike(cfg.AppEnv) {
		if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if cfg.AdminPassword == defaultAdminPassword {
			return fmt.Errorf("in prod/release ADMIN_PASSWORD must not be default")
		}
	}
	return nil
}

func isProdLike(env string) bool {
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
