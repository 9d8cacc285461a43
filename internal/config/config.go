package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAddr                 = ":8080"
	defaultDatabaseURL          = "hotel.db"
	defaultJWTSecret            = "change-me-jwt-secret"
	defaultJWTTTL               = "24h"
	defaultCrossLocationFee     = "2500"
	defaultReferenceMaxAttempts = "5"
)

// Config is the runtime configuration for the API server, loaded from the
// environment. Fees are integer cents.
type Config struct {
	AppEnv               string
	Addr                 string
	DatabaseURL          string
	JWTSecret            string
	JWTTTL               time.Duration
	CrossLocationFee     int64
	ReferenceMaxAttempts int
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Addr = getEnv("ADDR", defaultAddr)
	cfg.DatabaseURL = getEnv("DATABASE_URL", defaultDatabaseURL)
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	cfg.CrossLocationFee, err = parseInt64Env("CROSS_LOCATION_FEE_CENTS", defaultCrossLocationFee)
	if err != nil {
		return nil, err
	}
	if cfg.CrossLocationFee < 0 {
		return nil, fmt.Errorf("CROSS_LOCATION_FEE_CENTS must be non-negative")
	}

	maxAttempts, err := parseInt64Env("BOOKING_REFERENCE_MAX_ATTEMPTS", defaultReferenceMaxAttempts)
	if err != nil {
		return nil, err
	}
	if maxAttempts < 1 {
		return nil, fmt.Errorf("BOOKING_REFERENCE_MAX_ATTEMPTS must be at least 1")
	}
	cfg.ReferenceMaxAttempts = int(maxAttempts)

	if cfg.AppEnv == "prod" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in prod")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func parseInt64Env(key, fallback string) (int64, error) {
	raw := strings.TrimSpace(getEnv(key, fallback))
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
