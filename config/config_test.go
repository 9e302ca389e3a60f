package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathreplay/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, 500*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, 20.0, cfg.HitRadius)
	assert.True(t, cfg.Directed)
	assert.Equal(t, "heap", cfg.Strategy)
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
	assert.NoError(t, cfg.Validate())
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(`
tick_interval: 250ms
directed: false
strategy: linear
log_level: debug
`))
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.TickInterval)
	assert.False(t, cfg.Directed)
	assert.Equal(t, "linear", cfg.Strategy)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
	assert.Equal(t, 20.0, cfg.HitRadius, "unset keys keep defaults")
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"tick too fast": "tick_interval: 1ms",
		"tick too slow": "tick_interval: 1m",
		"radius":        "hit_radius: 0",
		"strategy":      "strategy: astar",
		"log level":     "log_level: loud",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := config.Parse([]byte("tick_interval: [1, 2]"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalid)
}

func TestParse_ErrorNamesYAMLKey(t *testing.T) {
	_, err := config.Parse([]byte("hit_radius: -3"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hit_radius")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pathreplay.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hit_radius: 12.5\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12.5, cfg.HitRadius)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
