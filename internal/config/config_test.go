package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "", cfg.JWTSecret)
	assert.Equal(t, 15*time.Minute, cfg.AccessTTL)
	assert.Equal(t, 100, cfg.DatasetProducts)
	assert.Equal(t, 200, cfg.DatasetCustomers)
	assert.Equal(t, 500, cfg.DatasetOrders)
	assert.Equal(t, 800*time.Millisecond, cfg.RefreshLatency)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("DATASET_ORDERS", "50")
	t.Setenv("REFRESH_LATENCY", "100ms")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, 50, cfg.DatasetOrders)
	assert.Equal(t, 100*time.Millisecond, cfg.RefreshLatency)
	assert.Equal(t, "env-secret", cfg.JWTSecret)
}

func TestLoad_SecretFileWins(t *testing.T) {
	secretPath := filepath.Join(t.TempDir(), "jwt_secret")
	require.NoError(t, os.WriteFile(secretPath, []byte("file-secret\n"), 0o600))

	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("JWT_SECRET_FILE", secretPath)

	cfg := Load()
	assert.Equal(t, "file-secret", cfg.JWTSecret)
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("DATASET_PRODUCTS", "not-a-number")
	t.Setenv("REFRESH_LATENCY", "soon")

	cfg := Load()
	assert.Equal(t, 100, cfg.DatasetProducts)
	assert.Equal(t, 800*time.Millisecond, cfg.RefreshLatency)
}
