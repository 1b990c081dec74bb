package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.NotEmpty(t, cfg.DBPath)
	assert.Equal(t, 30, cfg.ActivityWindowDays)
	assert.Equal(t, 90, cfg.CachePruneDays)
	assert.False(t, cfg.NoColor)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: /tmp/test.db\nactivity_window_days: 14\n"), 0600))

	cfg := DefaultConfig()
	require.NoError(t, loadFromFile(cfg, path))

	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, 14, cfg.ActivityWindowDays)
}

func TestLoadFromFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0600))

	cfg := DefaultConfig()
	assert.Error(t, loadFromFile(cfg, path))
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("RECAP_DB", "/tmp/env.db")
	t.Setenv("RECAP_NO_COLOR", "true")
	t.Setenv("RECAP_ACTIVITY_WINDOW_DAYS", "7")

	cfg := DefaultConfig()
	applyEnv(cfg)

	assert.Equal(t, "/tmp/env.db", cfg.DBPath)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, 7, cfg.ActivityWindowDays)
}

func TestApplyEnv_InvalidIgnored(t *testing.T) {
	t.Setenv("RECAP_ACTIVITY_WINDOW_DAYS", "-3")

	cfg := DefaultConfig()
	applyEnv(cfg)

	assert.Equal(t, 30, cfg.ActivityWindowDays)
}
