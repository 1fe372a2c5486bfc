package config

import (
	"os"
	"strings"
	"time"
)

const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

type Settings struct {
	Port            string
	StoreDriver     string
	SQLitePath      string
	DatabaseDSN     string
	RedisURL        string
	GeminiAPIKey    string
	GeminiModel     string
	GenerateURL     string
	GenerateTimeout time.Duration
}

// Load reads settings from the environment. Call Init first so a .env file
// is already applied.
func Load() Settings {
	return Settings{
		Port:            getEnv("PORT", "8080"),
		StoreDriver:     strings.ToLower(getEnv("STORE_DRIVER", StoreSQLite)),
		SQLitePath:      getEnv("SQLITE_PATH", "quizmaster.db"),
		DatabaseDSN:     os.Getenv("DATABASE_DSN"),
		RedisURL:        getEnv("REDIS_URL", "redis://localhost:6379/0"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		GenerateURL:     getEnv("GENERATE_URL", "http://localhost:8080/ai-quiz"),
		GenerateTimeout: getDuration("GENERATE_TIMEOUT", 60*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		Logger.WithError(err).Warnf("Invalid %s=%q, using %s", key, raw, fallback)
		return fallback
	}
	return d
}
