// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package seeder

import (
	"crypto/sha256"

	"golang.org/x/crypto/chacha20"
)

// DefaultContextLiteral is used when no context was configured.
const DefaultContextLiteral = "some-default-string-that-is-long"

// Derive computes the deterministic seed of a context.
//
// SHA-256 of the context keys a ChaCha20 stream (zero nonce, counter 0), and the
// first SeedSize bytes of the keystream are the little-endian seed.
func Derive(context string) Seed {
	key := sha256.Sum256([]byte(context))

	var nonce [chacha20.NonceSize]byte

	stream, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		// key and nonce sizes are fixed
		panic(err)
	}

	var s Seed

	stream.XORKeyStream(s[:], s[:])

	return s
}

// DeterministicSeeder derives seeds from a captured context instead of entropy.
//
// Every call to Seed returns the same value.
type DeterministicSeeder struct {
	context string
	set     bool
}

// NewDeterministicSeeder snapshots the current context of the store.
//
// Later changes to the store do not affect the returned seeder.
func NewDeterministicSeeder(store ContextStore) *DeterministicSeeder {
	context, set := store.Get()

	return &DeterministicSeeder{
		context: context,
		set:     set,
	}
}

// Context returns the resolved context.
func (d *DeterministicSeeder) Context() string {
	if !d.set {
		return DefaultContextLiteral
	}

	return d.context
}

// Source implements Handle.
func (d *DeterministicSeeder) Source() SourceName {
	return SourceDeterministic
}

// Seed implements Handle.
func (d *DeterministicSeeder) Seed() (Seed, error) {
	return Derive(d.Context()), nil
}

// ProbeDeterministic is always true, the source has no hardware dependency.
func ProbeDeterministic() bool {
	return true
}
