package ledger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/satoshimirror/satoshimirror/internal/ledger"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T) (*ledger.Ledger, *ledger.FileStore) {
	t.Helper()
	store := ledger.NewFileStore(filepath.Join(t.TempDir(), "agents_ledger.json"))
	return ledger.New(store), store
}

func TestLoadSeedsFreshFile(t *testing.T) {
	l, store := newTestLedger(t)

	doc, err := l.Load()
	require.NoError(t, err)

	require.Len(t, doc.DomainCatalog, 12)
	require.Len(t, doc.Agents, 4)
	require.Equal(t, 10000, doc.AgentGenerator.TargetCount)
	require.Len(t, doc.AgentGenerator.SampleAgents, 4)
	require.NotNil(t, doc.FindAgent("bot_satoshi_mirror"))

	// Seeding persisted the document.
	_, err = os.Stat(store.Path())
	require.NoError(t, err)
}

func TestLoadIdempotent(t *testing.T) {
	l, store := newTestLedger(t)

	_, err := l.Load()
	require.NoError(t, err)
	first, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	again, err := l.Load()
	require.NoError(t, err)
	second, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	require.Equal(t, first, second, "repeat loads must not rewrite the file")
	require.Len(t, again.Agents, 4)
}

func TestLoadTreatsEmptyFileAsAbsent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "agents_ledger.json")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	l := ledger.New(ledger.NewFileStore(path))
	doc, err := l.Load()
	require.NoError(t, err)
	require.Len(t, doc.Agents, 4)
}

func TestUpsertCreatesAgent(t *testing.T) {
	l, _ := newTestLedger(t)

	ok, err := l.UpsertAgent("bot_x", "Bot X", "test bot", "generalista cuántico",
		[]string{"TestNet"}, 1, nil, map[string]any{"quantum_origin": true})
	require.NoError(t, err)
	require.True(t, ok)

	doc, err := l.Load()
	require.NoError(t, err)
	agent := doc.FindAgent("bot_x")
	require.NotNil(t, agent)
	require.Equal(t, "Bot X", agent.Name)
	require.Zero(t, agent.Balance)
	require.True(t, agent.AIUnlocked)
}

func TestUpsertIdempotent(t *testing.T) {
	l, _ := newTestLedger(t)

	upsert := func() {
		ok, err := l.UpsertAgent("bot_x", "Bot X", "desc", "exp", []string{"Net-1"}, 3,
			[]string{"criptografía"}, map[string]any{"quantum_origin": true})
		require.NoError(t, err)
		require.True(t, ok)
	}

	upsert()
	doc, err := l.Load()
	require.NoError(t, err)
	sizeAfterFirst := len(doc.Agents)
	firstAgent := *doc.FindAgent("bot_x")

	upsert()
	doc, err = l.Load()
	require.NoError(t, err)
	require.Len(t, doc.Agents, sizeAfterFirst)
	require.Equal(t, firstAgent.Name, doc.FindAgent("bot_x").Name)
	require.Equal(t, firstAgent.Description, doc.FindAgent("bot_x").Description)
	require.Equal(t, firstAgent.Balance, doc.FindAgent("bot_x").Balance)
}

func TestUpsertUpdatePreservesBalance(t *testing.T) {
	l, _ := newTestLedger(t)

	_, err := l.UpsertAgent("bot_x", "Bot X", "", "exp", nil, 1, nil, nil)
	require.NoError(t, err)
	ok, err := l.Grant("bot_x", 42.5)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = l.UpsertAgent("bot_x", "Bot X v2", "updated", "exp2", nil, 2, nil, nil)
	require.NoError(t, err)

	doc, err := l.Load()
	require.NoError(t, err)
	agent := doc.FindAgent("bot_x")
	require.Equal(t, "Bot X v2", agent.Name)
	require.InDelta(t, 42.5, agent.Balance, 1e-9)
}

func TestGrantAddsBalanceAndUnlocks(t *testing.T) {
	l, _ := newTestLedger(t)

	// bot_satoshi_mirror seeds with balance 0 and ai_unlocked false.
	ok, err := l.Grant("bot_satoshi_mirror", 25.0)
	require.NoError(t, err)
	require.True(t, ok)

	doc, err := l.Load()
	require.NoError(t, err)
	agent := doc.FindAgent("bot_satoshi_mirror")
	require.InDelta(t, 25.0, agent.Balance, 1e-9)
	require.True(t, agent.AIUnlocked)
}

func TestGrantUnknownAgentLeavesFileUntouched(t *testing.T) {
	l, store := newTestLedger(t)

	_, err := l.Load()
	require.NoError(t, err)
	before, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	ok, err := l.Grant("bot_nobody", 10.0)
	require.NoError(t, err)
	require.False(t, ok)

	after, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	require.Equal(t, before, after, "failed grant must not write")
}

func TestFileStoreRejectsMalformedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agents_ledger.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0644))

	_, _, err := ledger.NewFileStore(path).Load()
	require.Error(t, err)
}
