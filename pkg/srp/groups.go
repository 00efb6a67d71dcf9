package srp

import (
	_ "embed"
	"fmt"
	"math/big"
	"strings"
)

//go:embed groups/512.txt
var hex512 string

//go:embed groups/768.txt
var hex768 string

//go:embed groups/1024.txt
var hex1024 string

//go:embed groups/2048.txt
var hex2048 string

//go:embed groups/3072.txt
var hex3072 string

//go:embed groups/4096.txt
var hex4096 string

//go:embed groups/8192.txt
var hex8192 string

// GroupID identifies one of the RFC 5054 Appendix A safe-prime groups, or
// a caller-supplied custom group.
type GroupID int

// Known groups. The bit sizes and hex digits are part of the wire contract
// and must match RFC 5054 Appendix A verbatim.
const (
	GroupN512 GroupID = iota
	GroupN768
	GroupN1024
	GroupN2048
	GroupN3072
	GroupN4096
	GroupN8192
	GroupCustom
)

// Group is an immutable (N, g) pair: a safe prime and a generator of a
// large prime-order subgroup modulo N. Groups are safe to share by value
// or by pointer across sessions once constructed.
type Group struct {
	id  GroupID
	n   *big.Int
	gen *big.Int

	// byteLen is len(N.Bytes()), cached for strict-padding mode.
	byteLen int
}

// N returns the group's safe prime.
func (g *Group) N() *big.Int { return new(big.Int).Set(g.n) }

// Generator returns the group's generator.
func (g *Group) Generator() *big.Int { return new(big.Int).Set(g.gen) }

// ByteLen returns byte_len(N), the width used by strict-padding mode.
func (g *Group) ByteLen() int { return g.byteLen }

var ngTable = map[GroupID]struct {
	hex string
	g   int64
}{
	GroupN512:  {hex512, 2},
	GroupN768:  {hex768, 2},
	GroupN1024: {hex1024, 2},
	GroupN2048: {hex2048, 2},
	GroupN3072: {hex3072, 5},
	GroupN4096: {hex4096, 5},
	GroupN8192: {hex8192, 13},
}

// LookupGroup returns the fixed RFC 5054 group for id. For GroupCustom,
// use NewCustomGroup instead.
func LookupGroup(id GroupID) (*Group, error) {
	entry, ok := ngTable[id]
	if !ok {
		return nil, &SRPError{Code: ErrCodeInvalidConfig, Message: fmt.Sprintf("unknown group id %d", id)}
	}

	n, ok := new(big.Int).SetString(strings.TrimSpace(entry.hex), 16)
	if !ok {
		// Unreachable with the embedded constants; guards against a corrupted build.
		return nil, &SRPError{Code: ErrCodeInvalidConfig, Message: "failed to parse embedded group N"}
	}

	group := &Group{
		id:      id,
		n:       n,
		gen:     big.NewInt(entry.g),
		byteLen: len(n.Bytes()),
	}
	return group, nil
}

// NewCustomGroup builds a Group from caller-supplied hex strings. Both N
// and g must be present and non-empty; N must be at least 512 bits and g
// must satisfy 2 <= g < N.
func NewCustomGroup(nHex, gHex string) (*Group, error) {
	if strings.TrimSpace(nHex) == "" || strings.TrimSpace(gHex) == "" {
		return nil, &SRPError{Code: ErrCodeInvalidConfig, Message: "custom group requires both N and g hex strings"}
	}

	n, ok := new(big.Int).SetString(strings.TrimSpace(nHex), 16)
	if !ok {
		return nil, &SRPError{Code: ErrCodeInvalidConfig, Message: "custom group N is not valid hex"}
	}
	g, ok := new(big.Int).SetString(strings.TrimSpace(gHex), 16)
	if !ok {
		return nil, &SRPError{Code: ErrCodeInvalidConfig, Message: "custom group g is not valid hex"}
	}

	if n.BitLen() < 512 {
		return nil, &SRPError{Code: ErrCodeInvalidConfig, Message: "custom group N must be at least 512 bits"}
	}
	two := big.NewInt(2)
	if g.Cmp(two) < 0 || g.Cmp(n) >= 0 {
		return nil, &SRPError{Code: ErrCodeInvalidConfig, Message: "custom group g must satisfy 2 <= g < N"}
	}

	return &Group{id: GroupCustom, n: n, gen: g, byteLen: len(n.Bytes())}, nil
}
