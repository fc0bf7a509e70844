package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port      string
	APIKey    string
	ModelName string
	DBPath    string

	// Engine tuning. Defaults match the documented behavior; override
	// via environment only when experimenting.
	OrdinalThreshold   float64
	SchemaStrict       bool
	RequireChartSchema bool
	EnabledOperations  []string

	SessionTTL     time.Duration
	MaxUploadBytes int64

	SQLServer SQLServerConfig
}

type SQLServerConfig struct {
	Server   string
	Port     string
	Database string
	UserID   string
	Password string
	Encrypt  bool
}

func GetConfig() Config {
	return Config{
		Port:      getEnv("PORT", "9090"),
		APIKey:    getEnv("DASHSCOPE_API_KEY", ""),
		ModelName: getEnv("DASHSCOPE_MODEL", "qwen-plus"),
		DBPath:    getEnv("DB_PATH", "./data/badger"),

		OrdinalThreshold:   getEnvFloat("ORDINAL_THRESHOLD", 0.3),
		SchemaStrict:       getEnvBool("SCHEMA_STRICT", true),
		RequireChartSchema: getEnvBool("CHART_REQUIRE_SCHEMA", true),
		EnabledOperations:  getEnvList("ENABLED_OPERATIONS"),

		SessionTTL:     time.Duration(getEnvInt("SESSION_TTL_MINUTES", 60)) * time.Minute,
		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_MB", 20)) << 20,

		SQLServer: SQLServerConfig{
			Server:   getEnv("SQL_SERVER", ""),
			Port:     getEnv("SQL_PORT", "1433"),
			Database: getEnv("SQL_DATABASE", ""),
			UserID:   getEnv("SQL_USER", ""),
			Password: getEnv("SQL_PASSWORD", ""),
			Encrypt:  getEnv("SQL_ENCRYPT", "true") == "true",
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvList splits a comma separated variable, dropping empties. An
// unset variable returns nil, which callers treat as "everything".
func getEnvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
