package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trailmate.ini")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
[location]
update_interval = 2s
min_distance = 25

[map]
lat_delta = 0.05
lng_delta = 0.02

[logging]
file = /tmp/trailmate.log
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.UpdateInterval)
	assert.Equal(t, 25.0, cfg.MinDistance)
	assert.Equal(t, 0.05, cfg.LatDelta)
	assert.Equal(t, 0.02, cfg.LngDelta)
	assert.Equal(t, "/tmp/trailmate.log", cfg.LogFile)
}

func TestLoadPartialOverrideKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[location]
min_distance = 5
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5.0, cfg.MinDistance)
	assert.Equal(t, DefaultUpdateInterval, cfg.UpdateInterval)
	assert.Equal(t, DefaultLatDelta, cfg.LatDelta)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.ini"))
	assert.Error(t, err)
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := writeConfig(t, `
[map]
lat_delta = -1
`)

	_, err := Load(path)
	assert.Error(t, err)
}
