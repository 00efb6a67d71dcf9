package srp

import "math/big"

// Config binds a HashKind and a Group into an immutable prototype that
// client and server sessions are constructed from. The multiplier k is
// derived once here and never recomputed, so a Config must be treated as
// read-only once NewConfig returns it.
type Config struct {
	hash  HashKind
	group *Group
	k     *big.Int

	// StrictPadding selects RFC 5054 §2.6 left-padding of every integer
	// hashed into the transcript to byte_len(N). The default, false,
	// matches the unpadded convention spec.md takes as baseline.
	StrictPadding bool
}

// NewConfig builds a Config from a hash kind and group. k = H(N, g) is
// computed immediately; an unsupported hash kind is rejected here so no
// session can later construct from a half-valid Config.
func NewConfig(hash HashKind, group *Group, strictPadding bool) (*Config, error) {
	if !hash.valid() {
		return nil, newInvalidConfig("unsupported hash kind")
	}
	if group == nil {
		return nil, newInvalidConfig("group must not be nil")
	}

	width := group.ByteLen()
	nBytes := bigIntToBytes(group.N(), width, strictPadding)
	gBytes := bigIntToBytes(group.Generator(), width, strictPadding)

	k := bytesToBigInt(hash.hashAll(nBytes, gBytes))

	return &Config{
		hash:          hash,
		group:         group,
		k:             k,
		StrictPadding: strictPadding,
	}, nil
}

// Hash returns the Config's hash kind.
func (c *Config) Hash() HashKind { return c.hash }

// Group returns the Config's group.
func (c *Config) Group() *Group { return c.group }

// Multiplier returns k = H(N, g), computed once at construction.
func (c *Config) Multiplier() *big.Int { return new(big.Int).Set(c.k) }

// encode is the Config-scoped shorthand for bigIntToBytes using this
// Config's group width and padding mode.
func (c *Config) encode(n *big.Int) []byte {
	return bigIntToBytes(n, c.group.ByteLen(), c.StrictPadding)
}
