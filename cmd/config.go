package cmd

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application settings.
type Config struct {
	HTTPPort             string
	OverdueCheckSchedule string
	DemoEnabled          bool
	LogLevel             string
}

// LoadConfig reads settings from a .env file when present, falling back to
// the process environment and built-in defaults. A missing .env file is not
// an error; every setting has a usable default.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		HTTPPort:             getEnv("HTTP_PORT", "8080"),
		OverdueCheckSchedule: getEnv("OVERDUE_CHECK_SCHEDULE", "0 * * * * *"),
		DemoEnabled:          getEnvAsBool("DEMO_ENABLED", true),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}
