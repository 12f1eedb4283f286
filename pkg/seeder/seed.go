// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package seeder

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/big"
	"math/bits"
	"strings"
)

// SeedSize is the size of the Seed in bytes.
const SeedSize = 16

// Seed is an opaque 128-bit unsigned integer.
//
// The value is stored in little-endian byte order.
type Seed [SeedSize]byte

// SeedFromBytes interprets exactly SeedSize bytes as a little-endian 128-bit integer.
func SeedFromBytes(b []byte) (Seed, error) {
	var s Seed

	if len(b) != SeedSize {
		return s, fmt.Errorf("seed must be %d bytes long, got %d", SeedSize, len(b))
	}

	copy(s[:], b)

	return s, nil
}

// SeedFromUint64s builds a Seed from its high and low 64-bit halves.
func SeedFromUint64s(hi, lo uint64) Seed {
	var s Seed

	binary.LittleEndian.PutUint64(s[:8], lo)
	binary.LittleEndian.PutUint64(s[8:], hi)

	return s
}

// ParseSeed parses a Seed from its String representation.
//
// The input is up to 32 hex digits, most significant digit first, optionally prefixed with 0x.
func ParseSeed(in string) (Seed, error) {
	in = strings.TrimPrefix(strings.TrimSpace(in), "0x")

	if in == "" || len(in) > 2*SeedSize {
		return Seed{}, fmt.Errorf("invalid seed %q: expected 1 to %d hex digits", in, 2*SeedSize)
	}

	in = strings.Repeat("0", 2*SeedSize-len(in)) + in

	be, err := hex.DecodeString(in)
	if err != nil {
		return Seed{}, fmt.Errorf("invalid seed %q: %w", in, err)
	}

	return SeedFromUint64s(binary.BigEndian.Uint64(be[:8]), binary.BigEndian.Uint64(be[8:])), nil
}

// Lo returns the low 64 bits.
func (s Seed) Lo() uint64 {
	return binary.LittleEndian.Uint64(s[:8])
}

// Hi returns the high 64 bits.
func (s Seed) Hi() uint64 {
	return binary.LittleEndian.Uint64(s[8:])
}

// Bytes returns a copy of the little-endian representation.
func (s Seed) Bytes() []byte {
	return append([]byte(nil), s[:]...)
}

// BigInt returns the Seed as a big.Int.
func (s Seed) BigInt() *big.Int {
	be := make([]byte, SeedSize)

	binary.BigEndian.PutUint64(be[:8], s.Hi())
	binary.BigEndian.PutUint64(be[8:], s.Lo())

	return new(big.Int).SetBytes(be)
}

// IsZero reports whether all bits are zero.
func (s Seed) IsZero() bool {
	return s == Seed{}
}

// Add returns s+other modulo 2^128.
func (s Seed) Add(other Seed) Seed {
	lo, carry := bits.Add64(s.Lo(), other.Lo(), 0)
	hi, _ := bits.Add64(s.Hi(), other.Hi(), carry)

	return SeedFromUint64s(hi, lo)
}

// String implements fmt.Stringer.
func (s Seed) String() string {
	return fmt.Sprintf("%016x%016x", s.Hi(), s.Lo())
}
