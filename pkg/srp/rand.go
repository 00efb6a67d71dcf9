package srp

//go:generate go tool mockgen -destination=mock_entropysource_test.go -package=srp github.com/srp6a/srp6a/pkg/srp EntropySource

import (
	"crypto/rand"
	"io"
	"math/big"
	"sync"
)

// EntropySource is the DRBG's upstream feed. An io.Reader so tests can
// substitute a mock entropy source without touching the OS RNG (see
// randsource_test.go).
type EntropySource = io.Reader

// drbg is the process-wide random-bit generator every session draws
// ephemeral scalars from. Access is serialised by mu so concurrent
// sessions never interleave reads from the underlying source.
type drbg struct {
	mu     sync.Mutex
	source EntropySource
}

var globalDRBG = &drbg{source: rand.Reader}

// Seed replaces the DRBG's entropy source. Intended for tests; production
// callers normally rely on the crypto/rand default seeded at package
// load. Safe to call concurrently with session construction.
func Seed(source io.Reader) {
	globalDRBG.mu.Lock()
	defer globalDRBG.mu.Unlock()
	globalDRBG.source = source
}

// Reseed restores the DRBG to the operating system's entropy source.
// Idempotent: calling it when already seeded from crypto/rand has no
// observable effect beyond re-acquiring the lock.
func Reseed() {
	Seed(rand.Reader)
}

// randomScalar draws n uniformly-distributed random bytes from the DRBG
// and interprets them as a non-negative big-endian integer. The spec
// calls for 256-byte (2048-bit) ephemeral scalars regardless of group
// size; see scalarWidth.
func randomScalar(n int) (*big.Int, error) {
	buf := make([]byte, n)

	globalDRBG.mu.Lock()
	_, err := io.ReadFull(globalDRBG.source, buf)
	globalDRBG.mu.Unlock()

	if err != nil {
		return nil, newInvalidConfig("failed to read from entropy source: " + err.Error())
	}
	return bytesToBigInt(buf), nil
}

// scalarWidth is the byte width ephemeral private scalars (a, b) are
// drawn at: 256 bytes (2048 bits), regardless of the selected group, per
// spec — "this matches the source."
const scalarWidth = 256
