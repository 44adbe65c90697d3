package ledger

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/satoshimirror/satoshimirror/pkg/models"
)

// Ledger exposes the agent operations over a DocumentStore.
type Ledger struct {
	store DocumentStore
}

// New creates a ledger over store.
func New(store DocumentStore) *Ledger {
	return &Ledger{store: store}
}

// Load returns the current document. When the backing file is absent or
// empty the seeded document is built and persisted first; an existing
// non-empty file is returned verbatim and never mutated by a load.
func (l *Ledger) Load() (*models.LedgerDocument, error) {
	doc, found, err := l.store.Load()
	if err != nil {
		return nil, err
	}
	if found {
		return doc, nil
	}

	doc = seedDocument()
	if err := l.store.Write(doc); err != nil {
		return nil, fmt.Errorf("seed ledger: %w", err)
	}
	log.Info().Int("agents", len(doc.Agents)).Msg("Seeded fresh agent ledger")
	return doc, nil
}

// UpsertAgent creates or updates the agent with the given id.
//
// An existing agent has every descriptive field replaced; id, balance,
// and ai_unlocked are left alone (balance only moves through Grant). A
// new agent starts with balance 0 and ai_unlocked true. The document is
// persisted before returning.
func (l *Ledger) UpsertAgent(id, name, description, expertise string, networks []string, level int, domains []string, meta map[string]any) (bool, error) {
	doc, err := l.Load()
	if err != nil {
		return false, err
	}

	if agent := doc.FindAgent(id); agent != nil {
		log.Info().Str("agent", id).Msg("Agent already exists, updating")
		agent.Name = name
		agent.Description = description
		agent.Expertise = expertise
		agent.NeuralNetworks = networks
		agent.DomainLevel = level
		agent.Domains = domains
		agent.Meta = meta
	} else {
		doc.Agents = append(doc.Agents, models.Agent{
			ID:             id,
			Name:           name,
			Balance:        0.0,
			AIUnlocked:     true,
			Description:    description,
			Expertise:      expertise,
			NeuralNetworks: networks,
			DomainLevel:    level,
			Domains:        domains,
			Meta:           meta,
		})
		log.Info().Str("agent", id).Msg("➕ Agent created in the ledger")
	}

	if err := l.store.Write(doc); err != nil {
		return false, err
	}
	return true, nil
}

// Grant adds amount to the agent's balance and unlocks it. Negative
// amounts are not rejected; callers own that discipline. Returns false
// without writing when the id is unknown.
func (l *Ledger) Grant(id string, amount float64) (bool, error) {
	doc, err := l.Load()
	if err != nil {
		return false, err
	}

	agent := doc.FindAgent(id)
	if agent == nil {
		return false, nil
	}

	agent.Balance += amount
	agent.AIUnlocked = true
	if err := l.store.Write(doc); err != nil {
		return false, err
	}

	log.Info().Str("agent", id).Float64("amount", amount).Float64("balance", agent.Balance).Msg("Grant applied")
	return true, nil
}
