// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

//go:build js || wasip1

package rng

import "crypto/rand"

// HostAvailable reports whether the host exposes a random API.
func HostAvailable() bool {
	return true
}

// ReadHost reads SeedSize bytes via the host random API (getRandomValues or random_get).
func ReadHost() ([SeedSize]byte, error) {
	var out [SeedSize]byte

	_, err := rand.Read(out[:])

	return out, err
}
