// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

//go:build !linux && !darwin

package rng

import "go.uber.org/zap"

// SecureServiceAvailable reports whether the platform secure random service is present.
func SecureServiceAvailable() bool {
	return false
}

// ReadSecureService reads SeedSize bytes from the platform secure random service.
func ReadSecureService(*zap.Logger) ([SeedSize]byte, error) {
	return [SeedSize]byte{}, ErrUnsupported
}
