// Package config holds all configuration for the mirror engine.
//
// Values resolve in three layers: built-in defaults, then an optional
// TOML file (MIRROR_CONFIG, or ./mirror.toml when present), then
// environment variables. Environment wins so a single run can be
// redirected without editing the file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// Duration wraps time.Duration so TOML can decode "1s"-style strings.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Config holds every tunable of the engine.
type Config struct {
	// DataDir is prepended to every relative artifact path.
	DataDir string `toml:"data_dir"`

	Ledger LedgerConfig `toml:"ledger"`
	Mining MiningConfig `toml:"mining"`
	Cycle  CycleConfig  `toml:"cycle"`
	Sensor SensorConfig `toml:"sensor"`
}

type LedgerConfig struct {
	// File is the agent ledger document, rewritten in full on mutation.
	File string `toml:"file"`
}

type MiningConfig struct {
	// File is the append-only mirror chain (JSON Lines).
	File string `toml:"file"`
	// Difficulty is the required leading-zero count. Untrusted input:
	// large values make the proof-of-work search block for a very long
	// time.
	Difficulty int `toml:"difficulty"`
	// Reward is the fixed payout recorded on every block.
	Reward float64 `toml:"reward"`
	// Pause is the rest between blocks in a multi-block run.
	Pause Duration `toml:"pause"`
	// SynthesisBlocks is the sequential block budget of synthesis mode.
	SynthesisBlocks int `toml:"synthesis_blocks"`
}

type CycleConfig struct {
	// IdeasFile is the input log; OutputsFile receives one analysis
	// line per idea line.
	IdeasFile   string `toml:"ideas_file"`
	OutputsFile string `toml:"outputs_file"`
}

type SensorConfig struct {
	// Interval between readings for the standalone energy command.
	Interval Duration `toml:"interval"`
	// SynthesisInterval and SynthesisReadings bound the sensor leg of
	// synthesis mode so the joined run can complete.
	SynthesisInterval Duration `toml:"synthesis_interval"`
	SynthesisReadings int      `toml:"synthesis_readings"`
}

// Defaults returns the built-in configuration, matching the artifact
// names the export collaborators expect.
func Defaults() *Config {
	return &Config{
		DataDir: ".",
		Ledger: LedgerConfig{
			File: "agents_ledger.json",
		},
		Mining: MiningConfig{
			File:            "mirror_chain.jsonl",
			Difficulty:      4,
			Reward:          50.0,
			Pause:           Duration{time.Second},
			SynthesisBlocks: 3,
		},
		Cycle: CycleConfig{
			IdeasFile:   "agents_ideas.jsonl",
			OutputsFile: "agents_outputs.jsonl",
		},
		Sensor: SensorConfig{
			Interval:          Duration{5 * time.Second},
			SynthesisInterval: Duration{3 * time.Second},
			SynthesisReadings: 3,
		},
	}
}

// Load builds the effective configuration: defaults, TOML file, env.
func Load() (*Config, error) {
	cfg := Defaults()

	path := os.Getenv("MIRROR_CONFIG")
	if path == "" {
		if _, err := os.Stat("mirror.toml"); err == nil {
			path = "mirror.toml"
		}
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.DataDir = envStr("MIRROR_DATA_DIR", cfg.DataDir)
	cfg.Ledger.File = envStr("MIRROR_LEDGER_FILE", cfg.Ledger.File)
	cfg.Mining.File = envStr("MIRROR_CHAIN_FILE", cfg.Mining.File)
	cfg.Mining.Difficulty = envInt("MIRROR_DIFFICULTY", cfg.Mining.Difficulty)
	cfg.Mining.Reward = envFloat("MIRROR_BLOCK_REWARD", cfg.Mining.Reward)
	cfg.Mining.Pause.Duration = envDuration("MIRROR_MINING_PAUSE", cfg.Mining.Pause.Duration)
	cfg.Cycle.IdeasFile = envStr("MIRROR_IDEAS_FILE", cfg.Cycle.IdeasFile)
	cfg.Cycle.OutputsFile = envStr("MIRROR_OUTPUTS_FILE", cfg.Cycle.OutputsFile)
	cfg.Sensor.Interval.Duration = envDuration("MIRROR_SENSOR_INTERVAL", cfg.Sensor.Interval.Duration)

	if cfg.Mining.Difficulty < 0 {
		return nil, fmt.Errorf("difficulty must be >= 0, got %d", cfg.Mining.Difficulty)
	}
	return cfg, nil
}

// Path resolves an artifact path against DataDir. Absolute paths pass
// through unchanged.
func (c *Config) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
