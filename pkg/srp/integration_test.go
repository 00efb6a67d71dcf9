package srp

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runFullExchange drives a complete honest SRP-6a round trip and returns
// the final client and server sessions for inspection.
func runFullExchange(t *testing.T, cfg *Config, identity, password, serverPassword string, salt []byte, verifier *big.Int) (*ClientSession, *ServerSession) {
	t.Helper()

	client, err := NewClientSession(cfg, identity, password)
	require.NoError(t, err)
	_, pubA, err := client.Start()
	require.NoError(t, err)

	server, pubB, err := NewServerSession(cfg, identity, salt, verifier, pubA)
	require.NoError(t, err)

	m1, err := client.ProcessChallenge(salt, pubB)
	require.NoError(t, err)

	ok, m2 := server.VerifyClientProof(m1)
	if !ok {
		return client, server
	}
	assert.True(t, ok)

	verified, err := client.VerifySession(m2)
	require.NoError(t, err)
	assert.True(t, verified)

	return client, server
}

// S1: honest round trip, SHA512/N3072, must fully authenticate with
// matching session keys on both sides.
func TestScenarioS1HonestRoundTrip(t *testing.T) {
	cfg := testConfig(t, HashSHA512, GroupN3072)
	salt, verifier, err := CreateVerifier(cfg, "alice", "password123", 16)
	require.NoError(t, err)

	client, server := runFullExchange(t, cfg, "alice", "password123", "password123", salt, verifier)

	assert.True(t, server.IsAuthenticated())
	assert.True(t, client.IsAuthenticated())
	assert.Equal(t, server.SessionKey(), client.SessionKey())
}

// S2: a client using the wrong password must fail verification and the
// server must not expose M2.
func TestScenarioS2WrongPasswordFails(t *testing.T) {
	cfg := testConfig(t, HashSHA512, GroupN3072)
	salt, verifier, err := CreateVerifier(cfg, "alice", "password123", 16)
	require.NoError(t, err)

	client, err := NewClientSession(cfg, "alice", "Password123")
	require.NoError(t, err)
	_, pubA, err := client.Start()
	require.NoError(t, err)

	server, pubB, err := NewServerSession(cfg, "alice", salt, verifier, pubA)
	require.NoError(t, err)

	m1, err := client.ProcessChallenge(salt, pubB)
	require.NoError(t, err)

	ok, m2 := server.VerifyClientProof(m1)
	assert.False(t, ok)
	assert.Nil(t, m2)
}

// S3: a second, independent group/hash pairing also completes honestly.
func TestScenarioS3HonestRoundTripAltParams(t *testing.T) {
	cfg := testConfig(t, HashSHA256, GroupN2048)
	salt, verifier, err := CreateVerifier(cfg, "test-mest", "secret-mecret", 16)
	require.NoError(t, err)

	client, server := runFullExchange(t, cfg, "test-mest", "secret-mecret", "secret-mecret", salt, verifier)

	assert.True(t, server.IsAuthenticated())
	assert.True(t, client.IsAuthenticated())
}

// S4: a client public value equal to N triggers A mod N == 0 and the
// server session must fail immediately without issuing B.
func TestScenarioS4ZeroAFailsFast(t *testing.T) {
	cfg := testConfig(t, HashSHA1, GroupN1024)
	salt, verifier, err := CreateVerifier(cfg, "alice", "password123", 16)
	require.NoError(t, err)

	session, pubB, err := NewServerSession(cfg, "alice", salt, verifier, cfg.group.N())
	require.Error(t, err)
	assert.Nil(t, session)
	assert.Nil(t, pubB)
}

// S5: a precomputed server KeyPair reused across two sequential
// authentications of the same user must still authenticate both and
// produce distinct session keys (covered in depth in server_test.go;
// this asserts the scenario end to end through full client sessions).
func TestScenarioS5KeyPairReuseAcrossAuthentications(t *testing.T) {
	cfg := testConfig(t, HashSHA512, GroupN3072)
	salt, verifier, err := CreateVerifier(cfg, "alice", "password123", 16)
	require.NoError(t, err)

	keyPair, err := NewKeyPair(cfg, verifier)
	require.NoError(t, err)

	var keys [][]byte
	for range 2 {
		client, err := NewClientSession(cfg, "alice", "password123")
		require.NoError(t, err)
		_, pubA, err := client.Start()
		require.NoError(t, err)

		server, pubB, err := NewServerSessionWithKeyPair(cfg, "alice", salt, verifier, pubA, keyPair)
		require.NoError(t, err)

		m1, err := client.ProcessChallenge(salt, pubB)
		require.NoError(t, err)

		ok, m2 := server.VerifyClientProof(m1)
		require.True(t, ok)

		verified, err := client.VerifySession(m2)
		require.NoError(t, err)
		require.True(t, verified)

		keys = append(keys, client.SessionKey())
	}

	assert.NotEqual(t, keys[0], keys[1], "reusing a KeyPair across two client scalars must yield distinct K")
}

// S6: known-answer test. Fixes (I, P, s, a, group=N1024, hash=SHA1),
// draws one KeyPair (so b is random but held constant across both server
// sessions), and checks the transcript is internally consistent end to end — this
// package has no independent reference vectors to compare against, so it
// asserts the property the KAT is meant to protect: bit-exact, repeatable
// derivation from fixed inputs (testable property 7).
func TestScenarioS6KnownAnswerDeterminism(t *testing.T) {
	cfg := testConfig(t, HashSHA1, GroupN1024)
	salt := []byte("0001020304050607")

	verifier, err := computeVerifier(cfg, salt, "alice", "password123")
	require.NoError(t, err)

	a := big.NewInt(0)
	a.SetString("6C3D6F7BBC6EF9C0FE23D9B0D1C7DA6B8F31CC69F3D0C3AEDB5F3A4CD9A0A1", 16)
	pubA := expModN(cfg.group.Generator(), a, cfg.group)

	keyPair, err := NewKeyPair(cfg, verifier)
	require.NoError(t, err)

	server1, B1, err := NewServerSessionWithKeyPair(cfg, "alice", salt, verifier, pubA, keyPair)
	require.NoError(t, err)

	th := newTranscriptHasher(cfg)
	u := th.scramblingParam(pubA, keyPair.Public())
	x := th.privateKey(salt, "alice", "password123")
	gx := expModN(cfg.group.Generator(), x, cfg.group)
	kgx := new(big.Int).Mul(cfg.Multiplier(), gx)
	kgx.Mod(kgx, cfg.group.n)
	base := new(big.Int).Sub(keyPair.Public(), kgx)
	base.Mod(base, cfg.group.n)
	ux := new(big.Int).Mul(u, x)
	exponent := new(big.Int).Add(a, ux)
	wantShared := expModN(base, exponent, cfg.group)

	assert.Equal(t, 0, wantShared.Cmp(server1.shared))
	assert.Equal(t, B1, keyPair.Public())

	server2, B2, err := NewServerSessionWithKeyPair(cfg, "alice", salt, verifier, pubA, keyPair)
	require.NoError(t, err)
	assert.Equal(t, server1.m1, server2.m1, "fixed inputs must reproduce identical M1")
	assert.Equal(t, server1.m2, server2.m2, "fixed inputs must reproduce identical M2")
	assert.Equal(t, B1, B2)
}

// S7: strict-padding mode must left-pad the salt segment of M1 to
// byte_len(N), exactly like the N, g, A, and B segments — not just the
// ones that happen to already be wide enough.
func TestScenarioS7StrictPaddingPadsSaltInClientProof(t *testing.T) {
	group, err := LookupGroup(GroupN1024)
	require.NoError(t, err)
	cfg, err := NewConfig(HashSHA256, group, true)
	require.NoError(t, err)

	salt := []byte("0001020304050607")
	require.Less(t, len(salt), group.ByteLen(), "salt must be shorter than byte_len(N) for this test to be meaningful")

	verifier, err := computeVerifier(cfg, salt, "alice", "password123")
	require.NoError(t, err)

	client, server := runFullExchange(t, cfg, "alice", "password123", "password123", salt, verifier)
	require.True(t, client.IsAuthenticated())
	require.True(t, server.IsAuthenticated())

	// Recompute M1's expected input independently, left-padding the salt
	// segment by hand, and confirm the session's M1 matches.
	hN := cfg.hash.hashAll(cfg.encode(group.N()))
	hG := cfg.hash.hashAll(cfg.encode(group.Generator()))
	xorred := make([]byte, len(hN))
	for i := range hN {
		xorred[i] = hN[i] ^ hG[i]
	}
	hIdentity := cfg.hash.hashAll([]byte("alice"))
	paddedSalt := bigIntToBytes(bytesToBigInt(salt), group.ByteLen(), true)
	require.Len(t, paddedSalt, group.ByteLen())

	wantM1 := cfg.hash.hashAll(
		xorred,
		hIdentity,
		paddedSalt,
		cfg.encode(server.A),
		cfg.encode(server.keyPair.B),
		server.sessionKey,
	)

	assert.Equal(t, wantM1, server.m1, "strict-padding mode must left-pad the salt segment of M1, not just N/g/A/B")
}
