package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_PoolSizingDefaults(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int32(25), cfg.Database.MaxConns)
	assert.Equal(t, int32(5), cfg.Database.MinConns)
}

func TestLoad_PoolSizingFromEnv(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_MAX_CONNS", "50")
	t.Setenv("DB_MIN_CONNS", "10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int32(50), cfg.Database.MaxConns)
	assert.Equal(t, int32(10), cfg.Database.MinConns)
}

func TestLoad_RejectsBadPoolSize(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_MAX_CONNS", "lots")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RequiresPassword(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")

	_, err := Load()
	assert.Error(t, err)
}
