// Package config loads server configuration from environment variables,
// following the teacher's getEnv-with-fallback pattern (cmd/main.go) and
// the original wedplan design's WEDPLAN_-prefixed settings
// (original_source/core/config.py), adapted to a plain Go struct rather
// than a pydantic-settings model.
package config

import (
	"os"
	"strconv"
)

const envPrefix = "WEDPLAN_"

// Config holds every environment-tunable setting the server reads at
// startup.
type Config struct {
	AppName    string
	AppVersion string
	Port       string
	Debug      bool
	LogLevel   string

	DefaultTimeLimitSeconds float64
	DefaultNumWorkers       int
}

// Load reads Config from the environment, falling back to the same
// defaults the original wedplan Settings class documented.
func Load() Config {
	return Config{
		AppName:    getEnv(envPrefix+"APP_NAME", "wedplan-go"),
		AppVersion: getEnv(envPrefix+"APP_VERSION", "0.1.0"),
		Port:       getEnv("PORT", "8080"),
		Debug:      getEnvBool(envPrefix+"DEBUG", false),
		LogLevel:   getEnv(envPrefix+"LOG_LEVEL", "info"),

		DefaultTimeLimitSeconds: getEnvFloat(envPrefix+"DEFAULT_TIME_LIMIT", 5.0),
		DefaultNumWorkers:       getEnvInt(envPrefix+"DEFAULT_NUM_WORKERS", 1),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
