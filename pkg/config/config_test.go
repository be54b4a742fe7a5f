package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "API_BASE_URL", "PREFS_BACKEND", "JWT_TTL_MINUTES", "DB_MAX_CONNS", "DEFAULT_LANGUAGE", "AGGREGATE_CONCURRENCY"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://api.nusacorp.com", cfg.APIBaseURL)
	assert.Equal(t, "memory", cfg.PrefsBackend)
	assert.Equal(t, 720, cfg.JWTTTLMinutes)
	assert.Equal(t, 4, cfg.DBMaxConns)
	assert.Equal(t, "ru", cfg.DefaultLanguage)
	assert.Equal(t, 8, cfg.AggregateConcurrency)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PREFS_BACKEND", "Redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("AGGREGATE_CONCURRENCY", "not-a-number")
	t.Setenv("ADMIN_EMAIL", "HR@Example.com")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "redis", cfg.PrefsBackend)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 8, cfg.AggregateConcurrency)
	assert.Equal(t, "hr@example.com", cfg.AdminEmail)
}
