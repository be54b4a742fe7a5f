package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	APIBaseURL        string
	APITimeoutSeconds int

	DatabaseURL   string
	DBMaxConns    int
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	// PrefsBackend selects where session and language flags persist:
	// memory, postgres or redis.
	PrefsBackend string

	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int

	AdminEmail        string
	AdminPasswordHash string

	DefaultLanguage      string
	AggregateConcurrency int
	LogLevel             string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:                 getEnv("PORT", "8080"),
		APIBaseURL:           getEnv("API_BASE_URL", "https://api.nusacorp.com"),
		APITimeoutSeconds:    getEnvInt("API_TIMEOUT_SECONDS", 30),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		DBMaxConns:           getEnvInt("DB_MAX_CONNS", 4),
		RedisAddr:            os.Getenv("REDIS_ADDR"),
		RedisPassword:        os.Getenv("REDIS_PASSWORD"),
		RedisDB:              getEnvInt("REDIS_DB", 0),
		PrefsBackend:         strings.ToLower(getEnv("PREFS_BACKEND", "memory")),
		JWTSecret:            getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:            getEnv("JWT_ISSUER", "hr-backoffice"),
		JWTTTLMinutes:        getEnvInt("JWT_TTL_MINUTES", 720),
		AdminEmail:           strings.ToLower(getEnv("ADMIN_EMAIL", "admin@example.com")),
		AdminPasswordHash:    os.Getenv("ADMIN_PASSWORD_HASH"),
		DefaultLanguage:      getEnv("DEFAULT_LANGUAGE", "ru"),
		AggregateConcurrency: getEnvInt("AGGREGATE_CONCURRENCY", 8),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
