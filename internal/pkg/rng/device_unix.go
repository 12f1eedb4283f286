// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

//go:build unix

package rng

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// DeviceAvailable reports whether path is a character device.
func DeviceAvailable(path string) bool {
	var st unix.Stat_t

	if err := unix.Stat(path, &st); err != nil {
		return false
	}

	return uint32(st.Mode)&unix.S_IFMT == unix.S_IFCHR
}

// ReadDevice reads SeedSize bytes from a random device.
func ReadDevice(path string) ([SeedSize]byte, error) {
	var out [SeedSize]byte

	fd, err := os.OpenFile(path, os.O_RDONLY|unix.O_CLOEXEC|unix.O_NOCTTY, 0)
	if err != nil {
		return out, err
	}

	defer fd.Close() //nolint:errcheck

	if _, err = io.ReadFull(fd, out[:]); err != nil {
		return out, fmt.Errorf("error reading %q: %w", path, err)
	}

	return out, fd.Close()
}
