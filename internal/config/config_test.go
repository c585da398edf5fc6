package config

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_PortNumerico(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, ":9090", fmt.Sprintf(":%d", cfg.Port))
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "8000")
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 5, cfg.WorkerPoolSize)
	assert.Equal(t, 8, cfg.JWTExpirationHours)
	assert.Equal(t, 60, cfg.AlertaTickMinutos)
}
