package srp

import (
	"crypto/sha1" //nolint:gosec // SHA-1 is a supported SRP transcript hash, not used for general integrity
	"crypto/sha256"
	"crypto/sha512"
	"hash"
)

// HashKind selects the hash function used throughout the transcript
// (k, u, x, K, M1, M2). SHA1, SHA256, and SHA512 are the three kinds this
// package implements; SHA224 and SHA384 are rejected at Config
// construction rather than silently routed to SHA256/SHA512 (the source's
// switch-statement gaps are not reproduced — see DESIGN.md).
type HashKind int

const (
	HashSHA1 HashKind = iota
	HashSHA256
	HashSHA512
)

// DigestLen returns the digest length in bytes for kind, or 0 if kind is
// not supported.
func (k HashKind) DigestLen() int {
	switch k {
	case HashSHA1:
		return sha1.Size
	case HashSHA256:
		return sha256.Size
	case HashSHA512:
		return sha512.Size
	default:
		return 0
	}
}

// valid reports whether kind is one of the three supported hash kinds.
func (k HashKind) valid() bool {
	switch k {
	case HashSHA1, HashSHA256, HashSHA512:
		return true
	default:
		return false
	}
}

// newHasher returns a fresh hash.Hash for kind.
func (k HashKind) newHasher() hash.Hash {
	switch k {
	case HashSHA1:
		return sha1.New() //nolint:gosec // see the crypto/sha1 import comment
	case HashSHA256:
		return sha256.New()
	case HashSHA512:
		return sha512.New()
	default:
		// Unreachable: callers must check valid() at Config construction.
		panic("srp: unsupported hash kind")
	}
}

// hashAll is a one-shot hash over the concatenation of parts.
func (k HashKind) hashAll(parts ...[]byte) []byte {
	h := k.newHasher()
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}
