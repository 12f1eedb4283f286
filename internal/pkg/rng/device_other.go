// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

//go:build !unix

package rng

// DeviceAvailable reports whether path is a character device.
func DeviceAvailable(string) bool {
	return false
}

// ReadDevice reads SeedSize bytes from a random device.
func ReadDevice(string) ([SeedSize]byte, error) {
	return [SeedSize]byte{}, ErrUnsupported
}
