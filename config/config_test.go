package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "vivahsetu", cfg.AppName)
	assert.Equal(t, DriverSQLite, cfg.StoreDriver)
	assert.Equal(t, "vivahsetu.db", cfg.SQLitePath)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "db/migrations", cfg.MigrationsDir)
	assert.False(t, cfg.RateLimitEnabled)
	assert.Equal(t, time.Hour, cfg.DBMaxConnLife)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", DriverRedis)
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("DB_MAX_CONNS", "25")

	cfg := Load()
	assert.Equal(t, DriverRedis, cfg.StoreDriver)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.True(t, cfg.RateLimitEnabled)
	assert.Equal(t, int32(25), cfg.DBMaxConns)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "not-a-bool")
	t.Setenv("DB_MAX_CONNS", "not-an-int")
	t.Setenv("DB_MAX_CONN_LIFETIME", "not-a-duration")

	cfg := Load()
	assert.False(t, cfg.RateLimitEnabled)
	assert.Equal(t, int32(10), cfg.DBMaxConns)
	assert.Equal(t, time.Hour, cfg.DBMaxConnLife)
}

func TestPostgresDSN(t *testing.T) {
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "matrimony")

	cfg := Load()
	assert.Equal(t, "postgres://app:secret@db:5432/matrimony?sslmode=disable", cfg.PostgresDSN())
}

func TestCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://app.example.com ,")

	cfg := Load()
	assert.Equal(t, []string{"http://localhost:3000", "https://app.example.com"}, cfg.CORSOrigins())
}
