package srp

import (
	"crypto/subtle"
	"math/big"
)

// ClientState is the ClientSession lifecycle state.
type ClientState int

const (
	ClientNew ClientState = iota
	ClientStarted
	ClientChallengeProcessed
	ClientAuthenticated
	ClientFailed
)

// ClientSession is the user-role side of an SRP-6a authentication. Create
// one with NewClientSession, drive it through Start, ProcessChallenge,
// and VerifySession in order; a session is single-owner and must not be
// shared across goroutines.
type ClientSession struct {
	cfg   *Config
	th    *transcriptHasher
	state ClientState

	identity string
	password string

	a *big.Int
	A *big.Int
	B *big.Int

	shared     *big.Int
	sessionKey []byte
	m1         []byte
	m2         []byte
}

// NewClientSession constructs a ClientSession for identity/password under
// cfg. The password is copied into the session and zeroised by Destroy.
func NewClientSession(cfg *Config, identity, password string) (*ClientSession, error) {
	if cfg == nil {
		return nil, newInvalidConfig("config must not be nil")
	}
	return &ClientSession{
		cfg:      cfg,
		th:       newTranscriptHasher(cfg),
		state:    ClientNew,
		identity: identity,
		password: password,
	}, nil
}

// Start draws the ephemeral private scalar a, computes A = g^a mod N, and
// returns (I, A) for transmission to the server. Repeats the draw if it
// lands on a mod N == 0 or A == 0, per spec §4.6.
func (c *ClientSession) Start() (identity string, pubA *big.Int, err error) {
	if c.state != ClientNew {
		return "", nil, newInvalidConfig("client session already started")
	}

	for {
		a, err := randomScalar(scalarWidth)
		if err != nil {
			c.state = ClientFailed
			return "", nil, err
		}
		if isZeroModN(a, c.cfg.group) {
			continue
		}
		A := expModN(c.cfg.group.Generator(), a, c.cfg.group)
		if A.Sign() == 0 {
			continue
		}
		c.a, c.A = a, A
		break
	}

	c.state = ClientStarted
	return c.identity, c.A, nil
}

// ProcessChallenge consumes the server's (salt, B) and returns M1 for
// transmission. Fails with ProtocolViolation if B mod N == 0 or the
// derived u == 0, exposing no proof in either case.
func (c *ClientSession) ProcessChallenge(salt []byte, pubB *big.Int) ([]byte, error) {
	if c.state != ClientStarted {
		return nil, newInvalidConfig("client session not in started state")
	}

	if isZeroModN(pubB, c.cfg.group) {
		c.state = ClientFailed
		return nil, newProtocolViolation("B mod N == 0")
	}

	u := c.th.scramblingParam(c.A, pubB)
	if u.Sign() == 0 {
		c.state = ClientFailed
		return nil, newProtocolViolation("u == 0")
	}

	x := c.th.privateKey(salt, c.identity, c.password)

	// S = (B - k*g^x)^(a + u*x) mod N
	gx := expModN(c.cfg.group.Generator(), x, c.cfg.group)
	kgx := new(big.Int).Mul(c.cfg.Multiplier(), gx)
	kgx.Mod(kgx, c.cfg.group.n)

	base := new(big.Int).Sub(pubB, kgx)
	base.Mod(base, c.cfg.group.n)

	ux := new(big.Int).Mul(u, x)
	exponent := new(big.Int).Add(c.a, ux)

	c.B = pubB
	c.shared = expModN(base, exponent, c.cfg.group)
	c.sessionKey = c.th.sessionKey(c.shared)
	c.m1 = c.th.clientProof(c.identity, salt, c.A, c.B, c.sessionKey)
	c.m2 = c.th.serverProof(c.A, c.m1, c.sessionKey)

	c.state = ClientChallengeProcessed
	return c.m1, nil
}

// VerifySession checks the server's M2 against the value computed during
// ProcessChallenge, using a constant-time comparison. On match, sets the
// session authenticated.
func (c *ClientSession) VerifySession(serverM2 []byte) (bool, error) {
	if c.state != ClientChallengeProcessed {
		return false, newInvalidConfig("client session has no challenge processed")
	}

	if subtle.ConstantTimeCompare(serverM2, c.m2) != 1 {
		c.state = ClientFailed
		return false, newAuthFailed("M2 mismatch")
	}

	c.state = ClientAuthenticated
	return true, nil
}

// IsAuthenticated reports whether VerifySession has succeeded.
func (c *ClientSession) IsAuthenticated() bool { return c.state == ClientAuthenticated }

// SessionKey returns K once the challenge has been processed, else nil.
func (c *ClientSession) SessionKey() []byte {
	if c.state < ClientChallengeProcessed {
		return nil
	}
	return append([]byte(nil), c.sessionKey...)
}

// Username returns the session's identity.
func (c *ClientSession) Username() string { return c.identity }

// Destroy zeroises the session's secret scalars, shared secret, session
// key, and password copy. The session must not be used afterward.
func (c *ClientSession) Destroy() {
	if c.a != nil {
		c.a.SetInt64(0)
	}
	if c.shared != nil {
		c.shared.SetInt64(0)
	}
	zeroBytes(c.sessionKey)
	c.password = ""
	c.state = ClientFailed
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
