package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "ADDR", "LOG_LEVEL", "STORE_BACKEND", "SQLITE_DSN", "DEMO_TOKEN", "CORS_ALLOW_ORIGIN", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "memory", cfg.StoreBackend)
	assert.Equal(t, ":memory:", cfg.SQLiteDSN)
	assert.Equal(t, "demo-token", cfg.DemoToken)
	assert.Equal(t, "*", cfg.CORSAllowOrigin)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_PortAndOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("ADDR", "")
	t.Setenv("LOG_LEVEL", " DEBUG ")
	t.Setenv("SHUTDOWN_TIMEOUT", "nonsense")
	cfg := Load()
	assert.Equal(t, ":8081", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)

	t.Setenv("ADDR", "127.0.0.1:9000")
	assert.Equal(t, "127.0.0.1:9000", Load().Addr)
}
