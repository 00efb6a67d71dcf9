package srp

import "math/big"

// transcriptHasher computes every hash composition SRP-6a mixes into the
// protocol transcript: k, u, x, the verifier exponent, K, M1, and M2. All
// integer encoding goes through Config.encode so padded and unpadded modes
// share one code path.
type transcriptHasher struct {
	cfg *Config
}

func newTranscriptHasher(cfg *Config) *transcriptHasher {
	return &transcriptHasher{cfg: cfg}
}

// hNN computes H(to_bytes(n1) || to_bytes(n2)), interpreted as an integer.
func (t *transcriptHasher) hNN(n1, n2 *big.Int) *big.Int {
	digest := t.cfg.hash.hashAll(t.cfg.encode(n1), t.cfg.encode(n2))
	return bytesToBigInt(digest)
}

// hNS computes H(to_bytes(n) || b), interpreted as an integer.
func (t *transcriptHasher) hNS(n *big.Int, b []byte) *big.Int {
	digest := t.cfg.hash.hashAll(t.cfg.encode(n), b)
	return bytesToBigInt(digest)
}

// hNum computes H(to_bytes(n)) as raw digest bytes, not reinterpreted.
func (t *transcriptHasher) hNum(n *big.Int) []byte {
	return t.cfg.hash.hashAll(t.cfg.encode(n))
}

// multiplier returns k = H_nn(N, g). Equal to Config.Multiplier, recomputed
// here only to keep transcriptHasher self-contained for tests; production
// code paths use the cached Config.k.
func (t *transcriptHasher) multiplier() *big.Int {
	return t.hNN(t.cfg.group.N(), t.cfg.group.Generator())
}

// scramblingParam computes u = H_nn(A, B).
func (t *transcriptHasher) scramblingParam(pubA, pubB *big.Int) *big.Int {
	return t.hNN(pubA, pubB)
}

// privateKey computes x = H_ns(s, H(I ":" P)).
func (t *transcriptHasher) privateKey(salt []byte, identity, password string) *big.Int {
	inner := t.cfg.hash.hashAll([]byte(identity + ":" + password))
	saltInt := bytesToBigInt(salt)
	return t.hNS(saltInt, inner)
}

// sessionKey computes K = H_num(S).
func (t *transcriptHasher) sessionKey(shared *big.Int) []byte {
	return t.hNum(shared)
}

// clientProof computes
// M1 = H( (H_num(N) XOR H_num(g)) || H(I) || to_bytes(s) || to_bytes(A) || to_bytes(B) || K ).
func (t *transcriptHasher) clientProof(identity string, salt []byte, pubA, pubB *big.Int, sessionKey []byte) []byte {
	hN := t.hNum(t.cfg.group.N())
	hG := t.hNum(t.cfg.group.Generator())

	xorred := make([]byte, len(hN))
	for i := range hN {
		xorred[i] = hN[i] ^ hG[i]
	}

	hIdentity := t.cfg.hash.hashAll([]byte(identity))
	saltInt := bytesToBigInt(salt)

	return t.cfg.hash.hashAll(
		xorred,
		hIdentity,
		t.cfg.encode(saltInt),
		t.cfg.encode(pubA),
		t.cfg.encode(pubB),
		sessionKey,
	)
}

// serverProof computes M2 = H( to_bytes(A) || M1 || K ).
func (t *transcriptHasher) serverProof(pubA *big.Int, m1, sessionKey []byte) []byte {
	return t.cfg.hash.hashAll(t.cfg.encode(pubA), m1, sessionKey)
}
