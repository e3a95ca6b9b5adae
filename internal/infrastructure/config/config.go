// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Server
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	AllowedOrigins []string

	// MongoDB
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string

	// PostgreSQL audit trail; empty DSN disables auditing
	PostgresDSN string

	// Scheduling
	ManagerPassword  string
	RolloverTimezone string
	SettingsDebounce time.Duration

	// Weather
	WeatherEndpoint  string
	WeatherLatitude  string
	WeatherLongitude string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion:     getEnv("APP_VERSION", "1.0.0"),
		Port:           getEnv("PORT", "8080"),
		ReadTimeout:    time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout:   time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:5173"), ","),

		MongoURI:      getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "shavtzak"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),

		PostgresDSN: getEnv("POSTGRES_DSN", ""),

		ManagerPassword:  getEnv("MANAGER_PASSWORD", ""),
		RolloverTimezone: getEnv("ROLLOVER_TZ", "Asia/Jerusalem"),
		SettingsDebounce: time.Duration(getEnvAsInt("SETTINGS_DEBOUNCE_MS", 500)) * time.Millisecond,

		WeatherEndpoint:  getEnv("WEATHER_ENDPOINT", ""),
		WeatherLatitude:  getEnv("WEATHER_LAT", "32.08"),
		WeatherLongitude: getEnv("WEATHER_LON", "34.78"),
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
