// Package config loads application configuration from the environment,
// with optional .env file support for local development.
package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// SMTP holds mail server connection settings.
type SMTP struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

// IsConfigured returns true if SMTP settings are present.
func (s SMTP) IsConfigured() bool {
	return s.Host != "" && s.From != ""
}

// Config holds all runtime configuration for the uninest server.
type Config struct {
	Port        int
	DBPath      string
	DevMode     bool
	BaseURL     string // API base, used in magic link emails
	FrontendURL string // SPA base, used in alert deep links and checkout redirects
	AdminEmail  string

	SMTP SMTP

	StripeSecretKey string
}

// Load reads configuration from environment variables.
// A .env file in the working directory is loaded first if present.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	return Config{
		Port:        getEnvAsInt("UNINEST_PORT", 8080),
		DBPath:      os.Getenv("UNINEST_DB"),
		DevMode:     getEnvAsBool("UNINEST_DEV_MODE", false),
		BaseURL:     getEnv("UNINEST_BASE_URL", "http://localhost:8080"),
		FrontendURL: getEnv("UNINEST_FRONTEND_URL", "http://localhost:5173"),
		AdminEmail:  os.Getenv("UNINEST_ADMIN_EMAIL"),
		SMTP: SMTP{
			Host: os.Getenv("UNINEST_SMTP_HOST"),
			Port: getEnv("UNINEST_SMTP_PORT", "587"),
			User: os.Getenv("UNINEST_SMTP_USER"),
			Pass: os.Getenv("UNINEST_SMTP_PASS"),
			From: os.Getenv("UNINEST_SMTP_FROM"),
		},
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", v)
		return fallback
	}
	return n
}

func getEnvAsBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid boolean in environment, using default", "key", key, "value", v)
		return fallback
	}
	return b
}
