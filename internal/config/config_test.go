package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/bencana-dashboard/internal/domain"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/Data_2023.xlsx", cfg.Data2023Path)
	assert.Equal(t, "data/Data_2024.xlsx", cfg.Data2024Path)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, domain.PolicyClamp, cfg.Policy())
	assert.Equal(t, 10, cfg.DefaultTopN)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("DATA_2023_PATH", "/srv/recap/2023.xlsx")
	t.Setenv("DATA_2024_PATH", "/srv/recap/2024.xlsx")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("COERCION_POLICY", "reject")
	t.Setenv("DEFAULT_TOP_N", "15")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/recap/2023.xlsx", cfg.Data2023Path)
	assert.Equal(t, "/srv/recap/2024.xlsx", cfg.Data2024Path)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, domain.PolicyReject, cfg.Policy())
	assert.Equal(t, 15, cfg.DefaultTopN)
}

func TestLoad_InvalidPolicy(t *testing.T) {
	t.Setenv("COERCION_POLICY", "ignore")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "COERCION_POLICY")
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "-1s")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_InvalidTopN(t *testing.T) {
	t.Setenv("DEFAULT_TOP_N", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEFAULT_TOP_N")
}
