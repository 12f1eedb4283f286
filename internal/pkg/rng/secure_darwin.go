// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rng

import (
	"crypto/rand"

	"go.uber.org/zap"
)

// SecureServiceAvailable is always true on macOS, the kernel CSPRNG is always present.
func SecureServiceAvailable() bool {
	return true
}

// ReadSecureService reads SeedSize bytes from the system randomization service.
func ReadSecureService(*zap.Logger) ([SeedSize]byte, error) {
	var out [SeedSize]byte

	_, err := rand.Read(out[:])

	return out, err
}
