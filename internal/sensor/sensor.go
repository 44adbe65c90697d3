// Package sensor simulates the quantum energy sensor: a ticker loop
// that samples synthetic vacuum-fluctuation readings and reports them.
// Readings are display-only and never persisted.
package sensor

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/satoshimirror/satoshimirror/pkg/models"
)

// measuringState labels every reading.
const measuringState = "|measuring⟩"

// Sensor produces synthetic energy measurements.
type Sensor struct {
	rng *rand.Rand
}

// New creates a sensor with its own random source.
func New() *Sensor {
	return &Sensor{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Sample produces one measurement. Energy is |N(1.0, 0.5)| so it stays
// non-negative; entanglement is uniform in [0,1).
func (s *Sensor) Sample() models.Measurement {
	energy := math.Abs(s.rng.NormFloat64()*0.5 + 1.0)
	return models.Measurement{
		ID:             uuid.NewString(),
		Timestamp:      time.Now(),
		Energy:         energy,
		Entanglement:   s.rng.Float64(),
		ZeroPointFluc:  energy * 0.5,
		QuantumState:   measuringState,
		ObserverEffect: float64(s.rng.Intn(20)) / 100.0,
	}
}

// Monitor samples immediately and then on every interval, forever. The
// loop has no termination condition of its own: it runs until ctx is
// canceled and then returns ctx.Err().
func (s *Sensor) Monitor(ctx context.Context, interval time.Duration) error {
	return s.run(ctx, interval, 0)
}

// MonitorN is the bounded variant used by synthesis mode: it returns
// nil after max readings so a joined run can complete.
func (s *Sensor) MonitorN(ctx context.Context, interval time.Duration, max int) error {
	return s.run(ctx, interval, max)
}

func (s *Sensor) run(ctx context.Context, interval time.Duration, max int) error {
	log.Info().Dur("interval", interval).Msg("🔋 Energy sensor started (vacuum fluctuation mode)")

	for taken := 0; ; {
		s.report(s.Sample())
		taken++
		if max > 0 && taken >= max {
			log.Info().Int("readings", taken).Msg("Energy sensor budget reached")
			return nil
		}

		select {
		case <-ctx.Done():
			log.Info().Int("readings", taken).Msg("Energy sensor stopped")
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}

func (s *Sensor) report(m models.Measurement) {
	log.Info().
		Float64("quantum_energy", m.Energy).
		Float64("entanglement_pct", m.Entanglement*100).
		Float64("zero_point_fluctuation", m.ZeroPointFluc).
		Float64("observer_effect", m.ObserverEffect).
		Msg("⏰ Energy reading")
}
