// Package generator defines the types shared by the vanity search engine.
// The search backend (CPU worker pool) and the keypair source are kept
// behind interfaces so either side can be swapped or stubbed.
package generator

import (
	"context"
	"errors"
	"math"
)

// ErrExhaustedSearch is returned when every worker of an episode stopped
// without handing off a match.
var ErrExhaustedSearch = errors.New("all workers finished without finding a matching address")

// Keypair is a raw 64-byte ed25519 keypair (seed || public key), the layout
// Solana wallets import and export.
type Keypair []byte

// KeypairSource produces fresh random keypairs and derives their public
// address. Implementations must be safe for concurrent use.
type KeypairSource interface {
	// Generate returns a new random keypair.
	Generate() (Keypair, error)

	// Address derives the textual public address of a keypair.
	Address(Keypair) string
}

// Outcome is the single result of one search episode.
type Outcome struct {
	Keypair Keypair // Winning keypair, owned by the caller
	Address string  // Public address that satisfied the target
	Match   Match   // Which alternatives of the target matched

	WorkerID      int    // Worker that won the handoff
	LocalAttempts uint64 // Attempts made by the winning worker in this episode
}

// Stats holds real-time performance statistics.
type Stats struct {
	Attempts    uint64  // Total number of keypairs generated since batch start
	HashRate    float64 // Keypairs per second since batch start
	ElapsedSecs float64 // Time elapsed since batch start
}

// Searcher defines the contract for search backends.
type Searcher interface {
	// Reset zeroes the attempt counter and marks the start of a batch.
	Reset()

	// FindMatch runs one episode and blocks until exactly one keypair
	// satisfying target has been found, or every worker has stopped.
	FindMatch(ctx context.Context, target Target) (Outcome, error)

	// Stats returns the current performance statistics.
	// This method is safe to call concurrently from any goroutine.
	Stats() Stats

	// Workers returns the number of parallel workers per episode.
	Workers() int

	// Name returns the implementation name.
	Name() string
}

// EstimateDifficulty returns the expected number of attempts needed to hit
// a base58 suffix of the given length. It is a float64 because 58^11
// already exceeds uint64.
func EstimateDifficulty(suffixLen int) float64 {
	return math.Pow(58, float64(suffixLen))
}
