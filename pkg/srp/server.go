package srp

import (
	"crypto/subtle"
	"math/big"
)

// ServerState is the ServerSession lifecycle state.
type ServerState int

const (
	ServerNew ServerState = iota
	ServerChallengeIssued
	ServerAuthenticated
	ServerFailed
)

// KeyPair is the server's ephemeral (B, b) pair. It may be generated
// fresh per authentication or precomputed from a verifier and reused
// across sequential attempts for the same user (spec §4.5, §8 scenario
// S5). KeyPair carries no internal locking: reuse across concurrently
// running ServerSessions is not supported, only sequential reuse.
type KeyPair struct {
	b *big.Int
	B *big.Int
}

// NewKeyPair draws a fresh ephemeral server scalar b and computes
// B = (k*v + g^b) mod N for the given verifier under cfg.
func NewKeyPair(cfg *Config, verifier *big.Int) (*KeyPair, error) {
	if cfg == nil {
		return nil, newInvalidConfig("config must not be nil")
	}

	b, err := randomScalar(scalarWidth)
	if err != nil {
		return nil, err
	}

	kv := new(big.Int).Mul(cfg.Multiplier(), verifier)
	gb := expModN(cfg.group.Generator(), b, cfg.group)
	B := new(big.Int).Add(kv, gb)
	B.Mod(B, cfg.group.n)

	return &KeyPair{b: b, B: B}, nil
}

// Public returns B, the value transmitted to the client.
func (kp *KeyPair) Public() *big.Int { return new(big.Int).Set(kp.B) }

// ServerSession is the verifier-role side of an SRP-6a authentication.
// Construct one with NewServerSession (or NewServerSessionWithKeyPair to
// reuse a precomputed KeyPair), then call VerifyClientProof with the
// client's M1.
type ServerSession struct {
	cfg   *Config
	th    *transcriptHasher
	state ServerState

	identity string
	salt     []byte
	verifier *big.Int
	A        *big.Int
	keyPair  *KeyPair

	shared     *big.Int
	sessionKey []byte
	m1         []byte
	m2         []byte
}

// NewServerSession constructs a ServerSession, generating a fresh KeyPair.
// Returns the session and B for transmission to the client. Fails fast
// with ProtocolViolation if A mod N == 0 — no partially-valid session is
// ever returned (see the Partial-init-on-failure note in DESIGN.md).
func NewServerSession(cfg *Config, identity string, salt []byte, verifier, pubA *big.Int) (*ServerSession, *big.Int, error) {
	keyPair, err := NewKeyPair(cfg, verifier)
	if err != nil {
		return nil, nil, err
	}
	return NewServerSessionWithKeyPair(cfg, identity, salt, verifier, pubA, keyPair)
}

// NewServerSessionWithKeyPair constructs a ServerSession from an
// externally supplied KeyPair, letting the caller precompute and reuse
// (B, b) across sequential authentications of the same user.
func NewServerSessionWithKeyPair(cfg *Config, identity string, salt []byte, verifier, pubA *big.Int, keyPair *KeyPair) (*ServerSession, *big.Int, error) {
	if cfg == nil {
		return nil, nil, newInvalidConfig("config must not be nil")
	}
	if keyPair == nil {
		return nil, nil, newInvalidConfig("keyPair must not be nil")
	}

	s := &ServerSession{
		cfg:      cfg,
		th:       newTranscriptHasher(cfg),
		state:    ServerNew,
		identity: identity,
		salt:     salt,
		verifier: verifier,
		keyPair:  keyPair,
	}

	if isZeroModN(pubA, cfg.group) {
		s.state = ServerFailed
		return nil, nil, newProtocolViolation("A mod N == 0")
	}
	s.A = pubA

	u := s.th.scramblingParam(s.A, keyPair.B)

	// S = (A * v^u)^b mod N
	vu := expModN(verifier, u, cfg.group)
	base := new(big.Int).Mul(s.A, vu)
	base.Mod(base, cfg.group.n)

	s.shared = expModN(base, keyPair.b, cfg.group)
	s.sessionKey = s.th.sessionKey(s.shared)
	s.m1 = s.th.clientProof(identity, salt, s.A, keyPair.B, s.sessionKey)
	s.m2 = s.th.serverProof(s.A, s.m1, s.sessionKey)

	s.state = ServerChallengeIssued
	return s, keyPair.Public(), nil
}

// VerifyClientProof checks clientM1 against the internally computed M1
// using a constant-time comparison. On match, sets the session
// authenticated and returns M2 for transmission; on mismatch, returns
// (false, nil) and the session moves to FAILED — terminal, no further
// verification is permitted.
func (s *ServerSession) VerifyClientProof(clientM1 []byte) (ok bool, serverM2 []byte) {
	if s.state != ServerChallengeIssued {
		return false, nil
	}

	if subtle.ConstantTimeCompare(clientM1, s.m1) != 1 {
		s.state = ServerFailed
		return false, nil
	}

	s.state = ServerAuthenticated
	return true, append([]byte(nil), s.m2...)
}

// IsAuthenticated reports whether VerifyClientProof has succeeded.
func (s *ServerSession) IsAuthenticated() bool { return s.state == ServerAuthenticated }

// SessionKey returns K once the challenge has been computed, else nil.
func (s *ServerSession) SessionKey() []byte {
	if s.state < ServerChallengeIssued {
		return nil
	}
	return append([]byte(nil), s.sessionKey...)
}

// Username returns the session's identity.
func (s *ServerSession) Username() string { return s.identity }

// Destroy zeroises the session's secret scalars and session key. The
// session must not be used afterward.
func (s *ServerSession) Destroy() {
	if s.keyPair != nil && s.keyPair.b != nil {
		s.keyPair.b.SetInt64(0)
	}
	if s.shared != nil {
		s.shared.SetInt64(0)
	}
	zeroBytes(s.sessionKey)
	s.state = ServerFailed
}
