package pow_test

import (
	"context"
	"strings"
	"testing"

	"github.com/satoshimirror/satoshimirror/internal/pow"
	"github.com/stretchr/testify/require"
)

func TestSolveSatisfiesPrefix(t *testing.T) {
	ctx := context.Background()

	for _, difficulty := range []int{0, 1, 2} {
		sol, err := pow.Solve(ctx, "seed-alpha", difficulty)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(sol.Hash, strings.Repeat("0", difficulty)),
			"difficulty %d: hash %s", difficulty, sol.Hash)
		require.Equal(t, pow.Digest("seed-alpha", sol.Nonce), sol.Hash)
		require.GreaterOrEqual(t, sol.Nonce, int64(0))
	}
}

func TestSolveReturnsSmallestNonce(t *testing.T) {
	sol, err := pow.Solve(context.Background(), "seed-beta", 2)
	require.NoError(t, err)

	for nonce := int64(0); nonce < sol.Nonce; nonce++ {
		require.False(t, strings.HasPrefix(pow.Digest("seed-beta", nonce), "00"),
			"nonce %d beats the reported winner %d", nonce, sol.Nonce)
	}
}

func TestSolveDeterministic(t *testing.T) {
	a, err := pow.Solve(context.Background(), "seed-gamma", 2)
	require.NoError(t, err)
	b, err := pow.Solve(context.Background(), "seed-gamma", 2)
	require.NoError(t, err)

	require.Equal(t, a.Hash, b.Hash)
	require.Equal(t, a.Nonce, b.Nonce)
}

func TestSolveZeroDifficultyWinsImmediately(t *testing.T) {
	sol, err := pow.Solve(context.Background(), "anything", 0)
	require.NoError(t, err)
	require.Equal(t, int64(0), sol.Nonce)
	require.Len(t, sol.Hash, 64)
}

func TestSolveCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Difficulty high enough that the search cannot win before the
	// first cancellation check.
	_, err := pow.Solve(ctx, "seed-delta", 16)
	require.ErrorIs(t, err, context.Canceled)
}
