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
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 4, cfg.Puzzles.Crucible.UltraMin)
	assert.Equal(t, 10, cfg.Puzzles.Crucible.UltraMax)
	assert.Equal(t, 71, cfg.Puzzles.Bytes.Size)
	assert.Equal(t, 1024, cfg.Puzzles.Bytes.Fallen)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("ASTAR_WORKERS", "")
	t.Setenv("ASTAR_LOG_LEVEL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("ASTAR_WORKERS", "")
	t.Setenv("ASTAR_LOG_LEVEL", "")

	path := filepath.Join(t.TempDir(), "nested", "astar.yaml")
	cfg := DefaultConfig()
	cfg.Workers = 3
	cfg.Puzzles.Bytes.Size = 7
	cfg.Puzzles.Bytes.Fallen = 12
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Setenv("ASTAR_WORKERS", "")
	t.Setenv("ASTAR_LOG_LEVEL", "")

	path := filepath.Join(t.TempDir(), "astar.yaml")
	require.NoError(t, os.WriteFile(path, []byte("puzzles:\n  crucible:\n    ultra_max: 12\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Puzzles.Crucible.UltraMin)
	assert.Equal(t, 12, cfg.Puzzles.Crucible.UltraMax)
	assert.Equal(t, 71, cfg.Puzzles.Bytes.Size)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ASTAR_WORKERS", "2")
	t.Setenv("ASTAR_LOG_LEVEL", "DEBUG")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		env  string
	}{
		{name: "negative workers", yaml: "workers: -1\n"},
		{name: "bad level", yaml: "logging:\n  level: loud\n"},
		{name: "crucible bounds", yaml: "puzzles:\n  crucible:\n    ultra_min: 5\n    ultra_max: 2\n"},
		{name: "bytes size", yaml: "puzzles:\n  bytes:\n    size: 0\n"},
		{name: "not yaml", yaml: "workers: [\n"},
		{name: "bad env", yaml: "", env: "many"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ASTAR_WORKERS", tt.env)
			t.Setenv("ASTAR_LOG_LEVEL", "")

			path := filepath.Join(t.TempDir(), "astar.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}
