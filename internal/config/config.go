package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

type Config struct {
	Port               string
	PostgresURL        string
	RedisAddr          string
	StoreBackend       string
	AIProvider         string
	GeminiAPIKey       string
	GeminiModel        string
	OpenAIAPIKey       string
	OpenAIModel        string
	GCPProject         string
	PlacesAPIKey       string
	JWTSecret          string
	AdminPasswordHash  string
	GenerateRatePerMin int
	ParseCacheSize     int
}

// Load reads .env when present and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		zap.L().Debug("no .env file loaded", zap.Error(err))
	}

	return &Config{
		Port:               getEnvWithDefault("PORT", "8080"),
		PostgresURL:        os.Getenv("POSTGRES_URL"),
		RedisAddr:          getEnvWithDefault("REDIS_ADDR", "localhost:6379"),
		StoreBackend:       strings.ToLower(getEnvWithDefault("STORE_BACKEND", BackendMemory)),
		AIProvider:         strings.ToLower(getEnvWithDefault("AI_PROVIDER", "gemini")),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiModel:        getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:        getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini"),
		GCPProject:         os.Getenv("GCP_PROJECT"),
		PlacesAPIKey:       os.Getenv("PLACES_API_KEY"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		AdminPasswordHash:  os.Getenv("ADMIN_PASSWORD_HASH"),
		GenerateRatePerMin: getIntEnvWithDefault("GENERATE_RATE_PER_MIN", 5),
		ParseCacheSize:     getIntEnvWithDefault("PARSE_CACHE_SIZE", 512),
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnvWithDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		zap.L().Warn("ignoring invalid integer env", zap.String("key", key), zap.String("value", value))
		return defaultValue
	}
	return n
}
