package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config stores the application configuration.
// Catalog credentials are always injected from the environment; they must
// never be compiled into the binary.
type Config struct {
	ServerAddr string

	// Catalog read endpoint (remote, read-only).
	CatalogAPIURL     string
	CatalogAPIKey     string
	CatalogTimeoutSec int

	// Number of releases revealed per catalog page.
	CatalogPageSize int

	// Default playback volume in [0,1].
	PlayerDefaultVolume float64

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	LogLevel  string
	LogOutput string // path of the rotated log file, empty = stdout only
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt gets an environment variable as int or returns a default value.
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvFloat gets an environment variable as float64 or returns a default value.
func getEnvFloat(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return fallback
}

// Load loads configuration from environment variables (via .env file) or defaults.
func Load() *Config {
	// godotenv.Load() will not override variables already set in the environment.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env, relying on existing environment variables and defaults.")
	}

	return &Config{
		ServerAddr: getEnv("SERVER_ADDR", ":8080"),

		CatalogAPIURL:     getEnv("CATALOG_API_URL", ""),
		CatalogAPIKey:     os.Getenv("CATALOG_API_KEY"), // secret, no default
		CatalogTimeoutSec: getEnvInt("CATALOG_TIMEOUT_SEC", 10),
		CatalogPageSize:   getEnvInt("CATALOG_PAGE_SIZE", 12),

		PlayerDefaultVolume: getEnvFloat("PLAYER_DEFAULT_VOLUME", 0.7),

		DBHost:     getEnv("DB_HOST", "127.0.0.1"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "root"),
		DBPassword: os.Getenv("DB_PASSWORD"), // no hardcoded default for passwords
		DBName:     getEnv("DB_NAME", "distrohub"),

		RedisHost:     getEnv("REDIS_HOST", "127.0.0.1"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogOutput: getEnv("LOG_OUTPUT", ""),
	}
}
