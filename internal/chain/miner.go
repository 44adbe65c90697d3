package chain

import (
	"context"
	"fmt"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/satoshimirror/satoshimirror/internal/pow"
	"github.com/satoshimirror/satoshimirror/pkg/models"
)

// minedState is the decorative state label stamped on every block.
const minedState = "superposition|mined⟩"

// Miner produces blocks and appends them to a Store.
//
// Height lives in memory and starts at zero on every process start; it
// is not recovered from the chain file, so each run begins a fresh local
// height sequence. Within one run height increases by exactly 1 per
// successfully mined block.
type Miner struct {
	store      *Store
	difficulty int
	reward     float64
	pause      time.Duration

	height int64
}

// NewMiner creates a miner appending to store.
func NewMiner(store *Store, difficulty int, reward float64, pause time.Duration) *Miner {
	return &Miner{
		store:      store,
		difficulty: difficulty,
		reward:     reward,
		pause:      pause,
	}
}

// Height returns the number of blocks mined by this process so far.
func (m *Miner) Height() int64 {
	return m.height
}

// MineOne solves one puzzle and appends the resulting block. The height
// counter is only advanced once the block is durably appended, so a
// failed append does not burn a height.
func (m *Miner) MineOne(ctx context.Context) (*models.Block, error) {
	height := m.height + 1
	now := time.Now().Unix()
	seed := strconv.FormatInt(height, 10) + strconv.FormatInt(now, 10)

	sol, err := pow.Solve(ctx, seed, m.difficulty)
	if err != nil {
		return nil, fmt.Errorf("mine block %d: %w", height, err)
	}

	prev := models.SentinelPreviousHash
	if height == 1 {
		prev = models.GenesisPreviousHash
	}

	block := &models.Block{
		Height:       height,
		Hash:         sol.Hash,
		PreviousHash: prev,
		Timestamp:    now,
		Nonce:        sol.Nonce,
		Difficulty:   m.difficulty,
		MiningTime:   sol.Elapsed.Seconds(),
		Reward:       m.reward,
		MinerAddress: minerAddress(sol.Hash),
		QuantumState: minedState,
	}

	if err := m.store.Append(block); err != nil {
		return nil, err
	}
	m.height = height

	log.Info().
		Int64("height", block.Height).
		Str("hash", block.Hash[:16]+"...").
		Int64("nonce", block.Nonce).
		Float64("seconds", block.MiningTime).
		Float64("reward", block.Reward).
		Msg("⛏️  Mirror block mined")

	return block, nil
}

// MineMany mines count blocks sequentially, resting between blocks. The
// pause is rate limiting, not correctness: cancellation during the rest
// stops the run early.
func (m *Miner) MineMany(ctx context.Context, count int) error {
	log.Info().Int("blocks", count).Msg("🚀 Starting continuous mining")

	for i := 0; i < count; i++ {
		if _, err := m.MineOne(ctx); err != nil {
			return err
		}
		if i == count-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(m.pause):
		}
	}
	return nil
}

// minerAddress derives the cosmetic payout address from a block hash.
func minerAddress(hash string) string {
	h := fnv.New64a()
	h.Write([]byte(hash[:16]))
	return "quantum_miner_" + strconv.FormatUint(h.Sum64(), 10)
}
