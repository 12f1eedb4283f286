// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package seeder provides 128-bit seeds for cryptographically secure pseudo random generators.
//
// A seed comes from exactly one entropy source, picked at runtime by priority:
//
//  1. deterministic, derived from a configured context (opt-in, for reproducible key material)
//  2. rdseed, the CPU hardware instruction
//  3. secure-service, the platform secure random service (TPM 2.0 on Linux, kernel CSPRNG on macOS)
//  4. device-file, /dev/random, quality depends on the host
//
// In js/wasm and wasip1 builds the host random API is the only candidate.
//
// Selection never falls back to a weaker source silently: when nothing is available,
// New returns a *NoSourceError.
//
//	handle, err := seeder.New(seeder.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//
//	seed, err := handle.Seed()
package seeder
