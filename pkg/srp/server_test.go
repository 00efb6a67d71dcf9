package srp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServerSessionRejectsZeroA(t *testing.T) {
	cfg := testConfig(t, HashSHA1, GroupN1024)
	salt, verifier, err := CreateVerifier(cfg, "alice", "password123", 0)
	require.NoError(t, err)

	// A = N triggers the A mod N == 0 safety check.
	session, pubB, err := NewServerSession(cfg, "alice", salt, verifier, cfg.group.N())
	require.Error(t, err)
	assert.Nil(t, session)
	assert.Nil(t, pubB)

	var srpErr *SRPError
	require.ErrorAs(t, err, &srpErr)
	assert.Equal(t, ErrCodeProtocolViolation, srpErr.Code)
}

func TestNewServerSessionWithKeyPairReusable(t *testing.T) {
	cfg := testConfig(t, HashSHA512, GroupN3072)
	salt, verifier, err := CreateVerifier(cfg, "alice", "password123", 0)
	require.NoError(t, err)

	keyPair, err := NewKeyPair(cfg, verifier)
	require.NoError(t, err)

	clientA, err := NewClientSession(cfg, "alice", "password123")
	require.NoError(t, err)
	_, pubA, err := clientA.Start()
	require.NoError(t, err)

	serverA, bA, err := NewServerSessionWithKeyPair(cfg, "alice", salt, verifier, pubA, keyPair)
	require.NoError(t, err)
	require.NotNil(t, serverA)

	m1A, err := clientA.ProcessChallenge(salt, bA)
	require.NoError(t, err)
	ok, m2A := serverA.VerifyClientProof(m1A)
	assert.True(t, ok)
	assert.NotNil(t, m2A)

	clientB, err := NewClientSession(cfg, "alice", "password123")
	require.NoError(t, err)
	_, pubB2, err := clientB.Start()
	require.NoError(t, err)

	serverB, bB, err := NewServerSessionWithKeyPair(cfg, "alice", salt, verifier, pubB2, keyPair)
	require.NoError(t, err)

	m1B, err := clientB.ProcessChallenge(salt, bB)
	require.NoError(t, err)
	ok, m2B := serverB.VerifyClientProof(m1B)
	assert.True(t, ok)

	assert.NotEqual(t, serverA.SessionKey(), serverB.SessionKey(), "reusing a KeyPair with two different client scalars must not collapse K")
	assert.NotEqual(t, m2A, m2B)
}

func TestServerSessionFailedIsTerminal(t *testing.T) {
	cfg := testConfig(t, HashSHA256, GroupN2048)
	salt, verifier, err := CreateVerifier(cfg, "alice", "password123", 0)
	require.NoError(t, err)

	client, err := NewClientSession(cfg, "alice", "password123")
	require.NoError(t, err)
	_, pubA, err := client.Start()
	require.NoError(t, err)

	server, pubB, err := NewServerSession(cfg, "alice", salt, verifier, pubA)
	require.NoError(t, err)

	ok, m2 := server.VerifyClientProof([]byte("wrong-proof"))
	assert.False(t, ok)
	assert.Nil(t, m2)
	assert.Equal(t, ServerFailed, server.state)

	// A second verification attempt, even with a correct M1, must not
	// succeed once the session has failed.
	m1, err := client.ProcessChallenge(salt, pubB)
	require.NoError(t, err)
	ok, m2 = server.VerifyClientProof(m1)
	assert.False(t, ok)
	assert.Nil(t, m2)
}
