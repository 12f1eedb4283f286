// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

//go:build linux

// Package tpm provides TPM 2.0 device access.
package tpm

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-tpm/tpm2/transport"
	"golang.org/x/sys/unix"
)

// DevicePaths are the TPM device nodes, resource manager first.
//
// A later path is only considered when the previous one does not exist.
var DevicePaths = []string{"/dev/tpmrm0", "/dev/tpm0"}

// SysClassPath is the sysfs class directory describing TPM chips.
var SysClassPath = "/sys/class/tpm"

// DevicePath returns the TPM 2.0 device node Open uses.
//
// The device is not opened: the node has to be a character device accessible for
// reading and writing, and sysfs has to report a TPM 2.0 chip behind it.
func DevicePath() (string, error) {
	for _, path := range DevicePaths {
		var st unix.Stat_t

		if err := unix.Stat(path, &st); err != nil {
			if errors.Is(err, unix.ENOENT) {
				continue
			}

			return "", fmt.Errorf("%w: %s: %w", ErrNotAvailable, path, err)
		}

		if st.Mode&unix.S_IFMT != unix.S_IFCHR {
			return "", fmt.Errorf("%w: %s is not a character device", ErrNotAvailable, path)
		}

		if err := unix.Access(path, unix.R_OK|unix.W_OK); err != nil {
			return "", fmt.Errorf("%w: %s: %w", ErrNotAvailable, path, err)
		}

		if err := checkVersion(path); err != nil {
			return "", err
		}

		return path, nil
	}

	return "", ErrNotAvailable
}

// checkVersion verifies the chip behind the device node is a TPM 2.0.
func checkVersion(path string) error {
	// tpmrmN is the resource manager of tpmN
	chip := strings.Replace(filepath.Base(path), "tpmrm", "tpm", 1)

	contents, err := os.ReadFile(filepath.Join(SysClassPath, chip, "tpm_version_major"))
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrNotAvailable, path, err)
	}

	if version := string(bytes.TrimSpace(contents)); version != "2" {
		return fmt.Errorf("%w: %s is a TPM %s.x device", ErrNotAvailable, path, version)
	}

	return nil
}

// Available reports whether a usable TPM 2.0 device node is present.
func Available() bool {
	_, err := DevicePath()

	return err == nil
}

// Open the TPM device returned by DevicePath.
func Open() (transport.TPMCloser, error) {
	path, err := DevicePath()
	if err != nil {
		return nil, err
	}

	t, err := transport.OpenTPM(path)
	if err != nil {
		if strings.Contains(err.Error(), "device is not a TPM 2.0") {
			return nil, fmt.Errorf("%w: %w", ErrNotAvailable, err)
		}

		return nil, fmt.Errorf("error opening TPM device %s: %w", path, err)
	}

	return t, nil
}
