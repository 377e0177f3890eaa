package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
window:
  title: custom title
game:
  sight_range: 6
  seed: 42
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "custom title", cfg.Window.Title)
	assert.Equal(t, 6, cfg.Game.SightRange)
	assert.Equal(t, int64(42), cfg.Game.Seed)
	// Unset fields fall back to defaults.
	assert.Equal(t, Default().Window.Width, cfg.Window.Width)
	assert.Equal(t, Default().Game.MapWidth, cfg.Game.MapWidth)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [not: a: mapping"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
