// Package models defines the record shapes the mirror engine writes to disk.
//
// Three artifact families exist:
//   - the mirror chain (append-only JSON Lines of Block)
//   - the agent ledger (one LedgerDocument rewritten wholesale on mutation)
//   - the idea/analysis logs (append-only JSON Lines of IdeaRecord / AnalysisRecord)
//
// Field names and JSON tags match the artifacts the export and frontend
// collaborators already consume; changing a tag here is a breaking change
// for them.
package models

import "time"

// ── Block ────────────────────────────────────────────────────

// Block is one mined entry of the mirror chain.
//
// PreviousHash is a cosmetic sentinel, not a hash of the actual prior
// block: chain linkage is decorative in this simulation.
type Block struct {
	Height       int64   `json:"height"`
	Hash         string  `json:"hash"`
	PreviousHash string  `json:"previous_hash"`
	Timestamp    int64   `json:"timestamp"`
	Nonce        int64   `json:"nonce"`
	Difficulty   int     `json:"difficulty"`
	MiningTime   float64 `json:"mining_time"`
	Reward       float64 `json:"reward"`
	MinerAddress string  `json:"miner_address"`
	QuantumState string  `json:"quantum_state"`
}

// GenesisPreviousHash marks the first block of a fresh height sequence.
const GenesisPreviousHash = "0"

// SentinelPreviousHash is the placeholder linkage for every later block.
const SentinelPreviousHash = "0000..."

// ── Agent ────────────────────────────────────────────────────

// Agent is one entry of the ledger's agent list. ID is the unique key;
// every other field is replaced wholesale on upsert. Balance and
// AIUnlocked are only touched by grants (and by the upsert defaults for
// a brand-new agent).
type Agent struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Balance        float64        `json:"balance_btc_mirror"`
	AIUnlocked     bool           `json:"ai_unlocked"`
	Description    string         `json:"description"`
	Expertise      string         `json:"expertise"`
	NeuralNetworks []string       `json:"neural_networks"`
	DomainLevel    int            `json:"domain_level"`
	Domains        []string       `json:"domains"`
	Meta           map[string]any `json:"meta"`
}

// AgentGenerator describes the batch-generation target without ever
// materializing the full agent count at runtime.
type AgentGenerator struct {
	TargetCount   int     `json:"target_count"`
	SampleAgents  []Agent `json:"sample_agents"`
	GeneratorNote string  `json:"generator_note"`
}

// LedgerDocument is the whole agent ledger. It is read on startup and
// rewritten in full on every mutation; there is no incremental patching.
type LedgerDocument struct {
	DomainCatalog  []string       `json:"domain_catalog"`
	AgentGenerator AgentGenerator `json:"agent_generator"`
	Agents         []Agent        `json:"agents"`
}

// FindAgent returns a pointer into the document's agent list, or nil.
func (d *LedgerDocument) FindAgent(id string) *Agent {
	for i := range d.Agents {
		if d.Agents[i].ID == id {
			return &d.Agents[i]
		}
	}
	return nil
}

// ── Idea / Analysis ──────────────────────────────────────────

// IdeaRecord is one line of the idea log, authored by an agent (or by
// the external collaborators that feed the log).
type IdeaRecord struct {
	AgentID   string  `json:"agent_id"`
	AgentName string  `json:"agent_name"`
	Idea      string  `json:"idea"`
	GrantBTC  float64 `json:"grant_btc_mirror"`
}

// AnalysisRecord is the derived output for exactly one IdeaRecord.
type AnalysisRecord struct {
	ID           string  `json:"id"`
	Timestamp    int64   `json:"timestamp"`
	AgentID      string  `json:"agent_id"`
	AgentName    string  `json:"agent_name"`
	OriginalIdea string  `json:"original_idea"`
	Analysis     string  `json:"quantum_analysis"`
	QuantumState string  `json:"quantum_state"`
	Viability    float64 `json:"viability"`
	Coherence    float64 `json:"coherence"`
	Decoherence  float64 `json:"decoherence_factor"`
}

// ── Sensor ───────────────────────────────────────────────────

// Measurement is one synthetic energy reading. Measurements are
// displayed, never persisted.
type Measurement struct {
	ID             string    `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	Energy         float64   `json:"quantum_energy"`
	Entanglement   float64   `json:"entanglement_score"`
	ZeroPointFluc  float64   `json:"zero_point_fluctuation"`
	QuantumState   string    `json:"quantum_state"`
	ObserverEffect float64   `json:"observer_effect"`
}
