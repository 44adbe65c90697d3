// Package pow implements the hash-puzzle behind mirror mining: find the
// smallest nonce whose SHA-256 digest, appended to a seed, starts with a
// required run of zero characters.
package pow

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

// ctxCheckEvery is how many nonces are tried between cancellation checks.
const ctxCheckEvery = 4096

// Solution is a winning nonce with its digest and the time spent.
type Solution struct {
	Hash    string
	Nonce   int64
	Elapsed time.Duration
}

// Solve tries nonce 0, 1, 2, … until hex(sha256(seed+nonce)) starts with
// difficulty zero characters, and returns the first hit.
//
// Difficulty is untrusted input: each extra unit multiplies the expected
// search by 16, so large values block for a very long time. The only way
// out of a long search is canceling ctx, which returns ctx.Err().
func Solve(ctx context.Context, seed string, difficulty int) (Solution, error) {
	target := strings.Repeat("0", difficulty)
	start := time.Now()

	for nonce := int64(0); ; nonce++ {
		if nonce%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Solution{}, err
			}
		}

		digest := Digest(seed, nonce)
		if strings.HasPrefix(digest, target) {
			return Solution{
				Hash:    digest,
				Nonce:   nonce,
				Elapsed: time.Since(start),
			}, nil
		}
	}
}

// Digest is the raw puzzle function: hex(sha256(seed + nonce)).
func Digest(seed string, nonce int64) string {
	sum := sha256.Sum256([]byte(seed + strconv.FormatInt(nonce, 10)))
	return hex.EncodeToString(sum[:])
}
