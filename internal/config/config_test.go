package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "stategate.yaml", cfg.Definitions)
	assert.True(t, cfg.Metrics)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STATEGATE_ADDR", ":9090")
	t.Setenv("STATEGATE_LOG_LEVEL", "debug")
	t.Setenv("STATEGATE_DEFINITIONS", "gates.yaml")
	t.Setenv("STATEGATE_METRICS", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{Addr: ":9090", LogLevel: "debug", Definitions: "gates.yaml", Metrics: false}, cfg)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("STATEGATE_METRICS", "maybe")
	_, err := Load()
	assert.ErrorIs(t, err, ErrParsingConfig)

	t.Setenv("STATEGATE_METRICS", "true")
	t.Setenv("STATEGATE_LOG_LEVEL", "loud")
	_, err = Load()
	assert.ErrorIs(t, err, ErrParsingConfig)
}
