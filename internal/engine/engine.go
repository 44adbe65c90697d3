// Package engine wires the subsystems together and implements the
// operations behind each CLI command. The engine owns all state; the
// subsystems it drives are otherwise independent and write to disjoint
// artifacts, so synthesis mode can run them concurrently without
// coordinating their outputs.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/satoshimirror/satoshimirror/internal/analysis"
	"github.com/satoshimirror/satoshimirror/internal/chain"
	"github.com/satoshimirror/satoshimirror/internal/config"
	"github.com/satoshimirror/satoshimirror/internal/ledger"
	"github.com/satoshimirror/satoshimirror/internal/sensor"
	"golang.org/x/sync/errgroup"
)

// DefaultExpertise is assigned when add_agent supplies no expertise.
const DefaultExpertise = "generalista cuántico"

// Engine owns the ledger, miner, analyzer, and sensor.
type Engine struct {
	cfg       *config.Config
	ledger    *ledger.Ledger
	chain     *chain.Store
	miner     *chain.Miner
	processor *analysis.Processor
	sensor    *sensor.Sensor
}

// New builds an engine from the effective configuration.
func New(cfg *config.Config) *Engine {
	chainStore := chain.NewStore(cfg.Path(cfg.Mining.File))
	return &Engine{
		cfg:       cfg,
		ledger:    ledger.New(ledger.NewFileStore(cfg.Path(cfg.Ledger.File))),
		chain:     chainStore,
		miner:     chain.NewMiner(chainStore, cfg.Mining.Difficulty, cfg.Mining.Reward, cfg.Mining.Pause.Duration),
		processor: analysis.NewProcessor(cfg.Path(cfg.Cycle.IdeasFile), cfg.Path(cfg.Cycle.OutputsFile)),
		sensor:    sensor.New(),
	}
}

// Ledger exposes the agent ledger for commands that mutate it directly.
func (e *Engine) Ledger() *ledger.Ledger {
	return e.ledger
}

// Chain exposes the chain store for read-only reporting commands.
func (e *Engine) Chain() *chain.Store {
	return e.chain
}

// AddAgent upserts an agent with the dispatcher's default metadata.
func (e *Engine) AddAgent(id, name, description string) error {
	meta := map[string]any{"quantum_origin": true}
	_, err := e.ledger.UpsertAgent(id, name, description, DefaultExpertise, nil, 1, nil, meta)
	if err != nil {
		return fmt.Errorf("add agent %s: %w", id, err)
	}
	return nil
}

// Mine mines count blocks: a single direct block for count 1, a paced
// continuous run otherwise.
func (e *Engine) Mine(ctx context.Context, count int) error {
	if count < 1 {
		return fmt.Errorf("block count must be >= 1, got %d", count)
	}
	if count == 1 {
		_, err := e.miner.MineOne(ctx)
		return err
	}
	return e.miner.MineMany(ctx, count)
}

// AICycle runs one batch analysis pass and returns the processed count.
func (e *Engine) AICycle() (int, error) {
	return e.processor.ProcessAll()
}

// Energy runs the sensor until ctx is canceled.
func (e *Engine) Energy(ctx context.Context, interval time.Duration) error {
	return e.sensor.Monitor(ctx, interval)
}

// Synthesis runs the miner, the analyzer, and the sensor concurrently
// and waits for all three. The sensor leg is bounded by the configured
// reading budget so the join actually completes; the three legs write
// to disjoint artifacts and need no synchronization between them.
func (e *Engine) Synthesis(ctx context.Context) error {
	log.Info().
		Int("blocks", e.cfg.Mining.SynthesisBlocks).
		Int("sensor_readings", e.cfg.Sensor.SynthesisReadings).
		Msg("🌀 Starting full quantum synthesis")

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return e.miner.MineMany(ctx, e.cfg.Mining.SynthesisBlocks)
	})
	g.Go(func() error {
		_, err := e.processor.ProcessAll()
		return err
	})
	g.Go(func() error {
		return e.sensor.MonitorN(ctx, e.cfg.Sensor.SynthesisInterval.Duration, e.cfg.Sensor.SynthesisReadings)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("quantum synthesis: %w", err)
	}
	log.Info().Msg("✅ Quantum synthesis completed")
	return nil
}
