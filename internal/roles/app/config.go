package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DefinitionsSource string // Definitions source: "file" or "sqlite" (default: file)
	DefinitionsFile   string // Path to the YAML role definitions file (default: ./roles.yaml)
	DatabaseFile      string // Path to the SQLite database file when source=sqlite (default: ./roles.db)
	WatchDefinitions  bool   // Reload the registry when the definitions file changes (file source only)

	AuthSecret string // Optional: HS256 secret guarding the read API; empty leaves it open

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		DefinitionsSource: getEnvOrDefault("ROLES_DEFINITIONS_SOURCE", "file"),
		DefinitionsFile:   getEnvOrDefault("ROLES_DEFINITIONS_FILE", "roles.yaml"),
		DatabaseFile:      getEnvOrDefault("ROLES_DATABASE_FILE", "roles.db"),
		WatchDefinitions:  getEnvBoolOrDefault("ROLES_WATCH_DEFINITIONS", false),

		AuthSecret: os.Getenv("ROLES_AUTH_SECRET"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	return defaultValue
}
