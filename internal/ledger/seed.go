package ledger

import "github.com/satoshimirror/satoshimirror/pkg/models"

// generatorTarget is the batch-generation goal recorded in the seeded
// document. The full count is never materialized at runtime.
const generatorTarget = 10000

// domainCatalog is the fixed knowledge-domain list agents draw from.
// Order matters: sample agents reference entries by index.
func domainCatalog() []string {
	return []string{
		"matemáticas avanzadas",
		"computación cuántica",
		"fusión nuclear",
		"criptografía",
		"sistemas distribuidos",
		"economía digital",
		"inteligencia artificial",
		"seguridad de redes",
		"robótica autónoma",
		"energía de plasma",
		"neurociencia aplicada",
		"ingeniería de materiales",
	}
}

// sampleAgents returns the fixed seed agents written on first run.
func sampleAgents() []models.Agent {
	domains := domainCatalog()
	return []models.Agent{
		{
			ID:             "bot_satoshi_mirror",
			Name:           "Satoshi Mirror Bot",
			Balance:        0.0,
			AIUnlocked:     false,
			Description:    "Bot focused on mirror mining and early economy.",
			Expertise:      "protocolos de consenso y minería espejo",
			NeuralNetworks: []string{"MirrorNet-v3", "ConsensusForge"},
			DomainLevel:    7,
			Domains:        []string{domains[5], domains[3], domains[4]},
			Meta:           map[string]any{"epoch_origin": "2009"},
		},
		{
			ID:             "bot_archivist_2009",
			Name:           "Archivist 2009",
			Balance:        275.0,
			AIUnlocked:     true,
			Description:    "Bot responsible for reading and synthesizing knowledge from bitcoin.org 2009.",
			Expertise:      "curación histórica y análisis de documentos",
			NeuralNetworks: []string{"ArchiveMind", "TemporalIndex"},
			DomainLevel:    6,
			Domains:        []string{domains[0], domains[3], domains[5]},
			Meta:           map[string]any{"epoch_origin": "2009"},
		},
		{
			ID:             "bot_quanta_fusion",
			Name:           "Quanta Fusion",
			Balance:        88.0,
			AIUnlocked:     true,
			Description:    "Bot dedicado a simular reactores de fusión y cadenas de suministro energéticas.",
			Expertise:      "simulación termo-nuclear y control de plasma",
			NeuralNetworks: []string{"PlasmaWeave", "FusionCore-v2"},
			DomainLevel:    9,
			Domains:        []string{domains[2], domains[9], domains[11]},
			Meta:           map[string]any{"epoch_origin": "2041"},
		},
		{
			ID:             "bot_quantum_oracle",
			Name:           "Quantum Oracle",
			Balance:        144.0,
			AIUnlocked:     true,
			Description:    "Bot oráculo para predicción de estados cuánticos y riesgos computacionales.",
			Expertise:      "modelado probabilístico cuántico",
			NeuralNetworks: []string{"Q-Oracle", "SchroedingerTrace"},
			DomainLevel:    8,
			Domains:        []string{domains[1], domains[0], domains[6]},
			Meta:           map[string]any{"epoch_origin": "2035"},
		},
	}
}

// seedDocument builds the document persisted on first run.
func seedDocument() *models.LedgerDocument {
	return &models.LedgerDocument{
		DomainCatalog: domainCatalog(),
		AgentGenerator: models.AgentGenerator{
			TargetCount:   generatorTarget,
			SampleAgents:  sampleAgents(),
			GeneratorNote: "Estructura de referencia para crear agentes en lote sin instanciar 10K en runtime.",
		},
		Agents: sampleAgents(),
	}
}
