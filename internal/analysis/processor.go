// Package analysis runs the batch idea-analysis pass: every line of the
// idea log becomes exactly one line of the output log, enriched with a
// synthesized analysis and simulated quality scores.
//
// The pass is deliberately not idempotent. The input log is never
// consumed or truncated, and there is no processed-offset bookkeeping,
// so rerunning it appends a fresh duplicate analysis per idea. The
// export collaborators depend on that append-only behavior.
package analysis

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/satoshimirror/satoshimirror/pkg/models"
)

// analyzedState labels every produced record.
const analyzedState = "|analyzed⟩"

// Processor transforms the idea log into the analysis log.
type Processor struct {
	ideasPath   string
	outputsPath string
	rng         *rand.Rand
}

// NewProcessor creates a processor reading ideasPath and appending to
// outputsPath.
func NewProcessor(ideasPath, outputsPath string) *Processor {
	return &Processor{
		ideasPath:   ideasPath,
		outputsPath: outputsPath,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ProcessAll reads the whole idea log and appends one analysis record
// per idea line, skipping blanks. Returns the number processed. A
// malformed line aborts the pass; records already appended stay in the
// output log (no rollback, no resume point).
func (p *Processor) ProcessAll() (int, error) {
	in, err := os.Open(p.ideasPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Info().Str("file", p.ideasPath).Msg("No idea log, nothing to analyze")
			return 0, nil
		}
		return 0, fmt.Errorf("open idea log: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(p.outputsPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return 0, fmt.Errorf("open output log: %w", err)
	}
	defer out.Close()

	processed := 0
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var idea models.IdeaRecord
		if err := json.Unmarshal([]byte(line), &idea); err != nil {
			return processed, fmt.Errorf("parse idea line %d: %w", processed+1, err)
		}

		record := p.analyze(&idea)
		data, err := json.Marshal(record)
		if err != nil {
			return processed, fmt.Errorf("marshal analysis for %s: %w", idea.AgentID, err)
		}
		if _, err := out.Write(append(data, '\n')); err != nil {
			return processed, fmt.Errorf("append analysis: %w", err)
		}
		processed++
	}
	if err := scanner.Err(); err != nil {
		return processed, fmt.Errorf("read idea log: %w", err)
	}

	log.Info().Int("processed", processed).Str("outputs", p.outputsPath).Msg("✅ AI cycle completed")
	return processed, nil
}

// analyze derives one analysis record from an idea. Viability lands in
// [0,1), coherence in [50,100), decoherence in [0,0.3).
func (p *Processor) analyze(idea *models.IdeaRecord) *models.AnalysisRecord {
	viability := float64(p.rng.Intn(100)) / 100.0
	coherence := float64(p.rng.Intn(50) + 50)
	decoherence := float64(p.rng.Intn(30)) / 100.0

	var b strings.Builder
	fmt.Fprintf(&b, "🧠 QUANTUM-AI ANALYSIS (State: |analyzing⟩)\n")
	fmt.Fprintf(&b, "=============================================\n")
	fmt.Fprintf(&b, "Agent: %s\n", idea.AgentName)
	fmt.Fprintf(&b, "Quantum grant: %g QBTC\n\n", idea.GrantBTC)
	fmt.Fprintf(&b, "Original idea in superposition:\n")
	fmt.Fprintf(&b, "|idea⟩ = α|implementable⟩ + β|abstract⟩\n\n")
	fmt.Fprintf(&b, "Quantum viability measurement:\n")
	fmt.Fprintf(&b, "⟨viabilidad|idea⟩ = %.2f\n\n", viability)
	fmt.Fprintf(&b, "Entanglement with mirror blockchain: ✓\n")
	fmt.Fprintf(&b, "Quantum coherence maintained: %.0f%%", coherence)

	return &models.AnalysisRecord{
		ID:           uuid.NewString(),
		Timestamp:    time.Now().Unix(),
		AgentID:      idea.AgentID,
		AgentName:    idea.AgentName,
		OriginalIdea: idea.Idea,
		Analysis:     b.String(),
		QuantumState: analyzedState,
		Viability:    viability,
		Coherence:    coherence,
		Decoherence:  decoherence,
	}
}
