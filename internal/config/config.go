package config

import (
	"os"
	"strconv"
	"time"
)

// UpstreamConfig holds settings for the outbound vehicle-data client.
// The upstream URL and header set are fixed in the upstream package and are not configurable.
type UpstreamConfig struct {
	// Timeout bounds a single outbound call. Zero keeps the http.Client default (no timeout).
	Timeout time.Duration
	// StrictPlates enables the plate allow-list and path escaping before substitution.
	StrictPlates bool
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables.
type AppConfig struct {
	Port            string
	DebugMode       bool
	ShutdownTimeout time.Duration
	Upstream        UpstreamConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Port:            getEnv("PORT", "8080"),
		DebugMode:       getEnvBool("DEBUG_MODE", false),
		ShutdownTimeout: time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SEC", 10)) * time.Second,
		Upstream: UpstreamConfig{
			Timeout:      time.Duration(getEnvInt("UPSTREAM_TIMEOUT_SEC", 0)) * time.Second,
			StrictPlates: getEnvBool("LOOKUP_STRICT_PLATES", false),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil && i >= 0 {
			return i
		}
	}
	return def
}
