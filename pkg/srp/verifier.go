package srp

import "math/big"

// defaultSaltLen is used by CreateVerifier when the caller does not
// supply an explicit salt length or salt.
const defaultSaltLen = 16

// CreateVerifier derives a fresh salt and password verifier for (I, P)
// under cfg. saltLen selects the salt length in bytes; zero selects
// defaultSaltLen. The verifier is v = g^x mod N with
// x = H(s || H(I ":" P)) — see transcriptHasher.privateKey.
func CreateVerifier(cfg *Config, identity, password string, saltLen int) (salt []byte, verifier *big.Int, err error) {
	if cfg == nil {
		return nil, nil, newInvalidConfig("config must not be nil")
	}
	if saltLen <= 0 {
		saltLen = defaultSaltLen
	}

	saltInt, err := randomScalar(saltLen)
	if err != nil {
		return nil, nil, err
	}
	salt = bigIntToBytes(saltInt, saltLen, true)

	verifier, err = computeVerifier(cfg, salt, identity, password)
	if err != nil {
		return nil, nil, err
	}
	return salt, verifier, nil
}

// computeVerifier is the pure function CreateVerifier wraps around a
// random salt draw: v = g^x mod N for a given, already-chosen salt.
// Exposed separately so tests can assert determinism (testable property
// 6: fixed s, fixed (I, P) always yields the same v).
func computeVerifier(cfg *Config, salt []byte, identity, password string) (*big.Int, error) {
	th := newTranscriptHasher(cfg)
	x := th.privateKey(salt, identity, password)
	return expModN(cfg.group.Generator(), x, cfg.group), nil
}
