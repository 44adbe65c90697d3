package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/satoshimirror/satoshimirror/internal/config"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := config.Defaults()

	require.Equal(t, "agents_ledger.json", cfg.Ledger.File)
	require.Equal(t, "mirror_chain.jsonl", cfg.Mining.File)
	require.Equal(t, 4, cfg.Mining.Difficulty)
	require.Equal(t, 50.0, cfg.Mining.Reward)
	require.Equal(t, 3, cfg.Mining.SynthesisBlocks)
	require.Equal(t, 5*time.Second, cfg.Sensor.Interval.Duration)
}

func TestLoadTOMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mirror.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
data_dir = "/var/lib/mirror"

[mining]
difficulty = 2
reward = 12.5
pause = "250ms"

[sensor]
interval = "2s"
`), 0644))
	t.Setenv("MIRROR_CONFIG", path)

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "/var/lib/mirror", cfg.DataDir)
	require.Equal(t, 2, cfg.Mining.Difficulty)
	require.Equal(t, 12.5, cfg.Mining.Reward)
	require.Equal(t, 250*time.Millisecond, cfg.Mining.Pause.Duration)
	require.Equal(t, 2*time.Second, cfg.Sensor.Interval.Duration)
	// Untouched sections keep their defaults.
	require.Equal(t, "agents_ideas.jsonl", cfg.Cycle.IdeasFile)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mirror.toml")
	require.NoError(t, os.WriteFile(path, []byte("[mining]\ndifficulty = 2\n"), 0644))
	t.Setenv("MIRROR_CONFIG", path)
	t.Setenv("MIRROR_DIFFICULTY", "3")
	t.Setenv("MIRROR_DATA_DIR", dir)

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Mining.Difficulty)
	require.Equal(t, dir, cfg.DataDir)
}

func TestLoadRejectsNegativeDifficulty(t *testing.T) {
	t.Setenv("MIRROR_DIFFICULTY", "-1")

	_, err := config.Load()
	require.Error(t, err)
}

func TestPathResolution(t *testing.T) {
	cfg := config.Defaults()
	cfg.DataDir = "/data"

	require.Equal(t, "/data/mirror_chain.jsonl", cfg.Path("mirror_chain.jsonl"))
	require.Equal(t, "/abs/chain.jsonl", cfg.Path("/abs/chain.jsonl"))
}
