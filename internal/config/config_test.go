package config_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/peanoprove/internal/config"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "peanoprove.db", cfg.Database.Path)
	assert.Equal(t, 20, cfg.Search.MaxRounds)
	assert.True(t, cfg.Search.EnableForward)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "peanoprove.yaml")

	cfg := config.Default()
	cfg.Search.MaxRounds = 42
	cfg.Search.EnableForward = false
	cfg.Logging.Verbose = true
	require.NoError(t, cfg.Save(path))

	reloaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 42, reloaded.Search.MaxRounds)
	assert.False(t, reloaded.Search.EnableForward)
	assert.True(t, reloaded.Logging.Verbose)
}

func TestSearchTimeoutFallsBackOnBadValue(t *testing.T) {
	cfg := config.Default()
	cfg.Search.Timeout = "not-a-duration"
	assert.Equal(t, 10*time.Second, cfg.SearchTimeout())
}

func TestSearchTimeoutParsesValidValue(t *testing.T) {
	cfg := config.Default()
	cfg.Search.Timeout = "5s"
	assert.Equal(t, 5*time.Second, cfg.SearchTimeout())
}
