package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Width)
	assert.Equal(t, 16, cfg.Height)
	assert.Equal(t, 32, cfg.MineCount)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, "sweeper.log", cfg.LogFile)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SWEEPER_WIDTH", "9")
	t.Setenv("SWEEPER_HEIGHT", "9")
	t.Setenv("SWEEPER_MINE_COUNT", "10")
	t.Setenv("SWEEPER_SEED", "42")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Width)
	assert.Equal(t, 9, cfg.Height)
	assert.Equal(t, 10, cfg.MineCount)
	assert.Equal(t, uint64(42), cfg.Seed)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweeper.yaml")
	data := "width: 30\nheight: 16\nmine_count: 99\nlog_file: /tmp/sweeper.log\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Width)
	assert.Equal(t, 16, cfg.Height)
	assert.Equal(t, 99, cfg.MineCount)
	assert.Equal(t, "/tmp/sweeper.log", cfg.LogFile)
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("SWEEPER_WIDTH", "0")
	_, err := Load("")
	assert.Error(t, err)
}
