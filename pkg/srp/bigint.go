package srp

import "math/big"

// bigIntToBytes encodes n as big-endian bytes. In unpadded mode (the
// default) it is exactly n.Bytes() — no leading zero, and the zero value
// encodes to an empty slice. In strict mode it left-pads to width bytes,
// per RFC 5054 §2.6.
func bigIntToBytes(n *big.Int, width int, strictPadding bool) []byte {
	raw := n.Bytes()
	if !strictPadding || len(raw) >= width {
		return raw
	}

	padded := make([]byte, width)
	copy(padded[width-len(raw):], raw)
	return padded
}

// bytesToBigInt decodes big-endian bytes into a big.Int. Padding, present
// or absent, does not change the numeric value, so both modes share this
// decoder.
func bytesToBigInt(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// modN reduces n modulo the group's safe prime, returning a value in
// [0, N).
func modN(n *big.Int, group *Group) *big.Int {
	return new(big.Int).Mod(n, group.n)
}

// isZeroModN reports whether n mod N == 0 — the zero-key protocol
// violation both client and server must reject.
func isZeroModN(n *big.Int, group *Group) bool {
	return modN(n, group).Sign() == 0
}

// expModN computes base^exp mod N.
func expModN(base, exp *big.Int, group *Group) *big.Int {
	return new(big.Int).Exp(base, exp, group.n)
}
