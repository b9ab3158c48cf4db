package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the runtime settings for the dashboard API. Every field can be
// overridden through environment variables; secrets additionally support the
// *_FILE convention for Docker secrets.
type Config struct {
	ListenAddr string

	JWTSecret  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	DatasetProducts  int
	DatasetCustomers int
	DatasetOrders    int
	DatasetSeed      int64
	RefreshLatency   time.Duration

	AdminEmail    string
	AdminName     string
	AdminPassword string
}

// Load reads the configuration from the environment, falling back to
// development defaults. JWT_SECRET has no default; main rejects an empty one.
func Load() *Config {
	return &Config{
		ListenAddr: getEnv("LISTEN_ADDR", ":8080"),

		JWTSecret:  getEnvFromFile("JWT_SECRET_FILE", "JWT_SECRET", ""),
		AccessTTL:  getEnvDuration("ACCESS_TOKEN_TTL", 15*time.Minute),
		RefreshTTL: getEnvDuration("REFRESH_TOKEN_TTL", 7*24*time.Hour),

		DatasetProducts:  getEnvInt("DATASET_PRODUCTS", 100),
		DatasetCustomers: getEnvInt("DATASET_CUSTOMERS", 200),
		DatasetOrders:    getEnvInt("DATASET_ORDERS", 500),
		DatasetSeed:      getEnvInt64("DATASET_SEED", 0),
		RefreshLatency:   getEnvDuration("REFRESH_LATENCY", 800*time.Millisecond),

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminName:     getEnv("ADMIN_NAME", "Dashboard Admin"),
		AdminPassword: getEnvFromFile("ADMIN_PASSWORD_FILE", "ADMIN_PASSWORD", "admin123!"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFromFile(fileKey, envKey, defaultValue string) string {
	if filePath := os.Getenv(fileKey); filePath != "" {
		if content, err := os.ReadFile(filePath); err == nil {
			return strings.TrimSpace(string(content))
		}
	}
	return getEnv(envKey, defaultValue)
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
