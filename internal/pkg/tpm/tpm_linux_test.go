// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

//go:build linux

package tpm_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siderolabs/go-seeder/internal/pkg/tpm"
)

// overrideDevices replaces the device nodes and the sysfs root for the duration of the test.
func overrideDevices(t *testing.T, sysClass string, paths ...string) {
	t.Helper()

	oldPaths, oldSysClass := tpm.DevicePaths, tpm.SysClassPath

	t.Cleanup(func() {
		tpm.DevicePaths, tpm.SysClassPath = oldPaths, oldSysClass
	})

	tpm.DevicePaths = paths
	tpm.SysClassPath = sysClass
}

func TestDevicePathRegularFile(t *testing.T) {
	regular := filepath.Join(t.TempDir(), "tpmrm0")
	require.NoError(t, os.WriteFile(regular, nil, 0o600))

	overrideDevices(t, t.TempDir(), regular)

	_, err := tpm.DevicePath()
	require.ErrorIs(t, err, tpm.ErrNotAvailable)
	assert.ErrorContains(t, err, "not a character device")
	assert.False(t, tpm.Available())

	_, err = tpm.Open()
	require.ErrorIs(t, err, tpm.ErrNotAvailable)
}

func TestDevicePathNotATPM(t *testing.T) {
	// character device without a TPM chip in sysfs
	overrideDevices(t, t.TempDir(), "/dev/null")

	_, err := tpm.DevicePath()
	require.ErrorIs(t, err, tpm.ErrNotAvailable)
	assert.False(t, tpm.Available())

	_, err = tpm.Open()
	require.ErrorIs(t, err, tpm.ErrNotAvailable)
}

func TestDevicePathVersion(t *testing.T) {
	sysClass := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(sysClass, "null"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sysClass, "null", "tpm_version_major"), []byte("1\n"), 0o644))

	overrideDevices(t, sysClass, "/dev/null")

	_, err := tpm.DevicePath()
	require.ErrorIs(t, err, tpm.ErrNotAvailable)
	assert.ErrorContains(t, err, "TPM 1.x")

	require.NoError(t, os.WriteFile(filepath.Join(sysClass, "null", "tpm_version_major"), []byte("2\n"), 0o644))

	path, err := tpm.DevicePath()
	require.NoError(t, err)
	assert.Equal(t, "/dev/null", path)
}

func TestDevicePathFallback(t *testing.T) {
	dir := t.TempDir()
	regular := filepath.Join(dir, "tpm0")
	require.NoError(t, os.WriteFile(regular, nil, 0o600))

	// missing resource manager falls back to the next node
	overrideDevices(t, dir, filepath.Join(dir, "tpmrm0"), regular)

	_, err := tpm.DevicePath()
	assert.ErrorContains(t, err, regular)

	// an existing but unusable node stops the lookup
	overrideDevices(t, dir, regular, "/dev/null")

	_, err = tpm.DevicePath()
	assert.ErrorContains(t, err, regular)

	overrideDevices(t, dir, filepath.Join(dir, "tpmrm0"), filepath.Join(dir, "tpm0-missing"))

	_, err = tpm.DevicePath()
	require.ErrorIs(t, err, tpm.ErrNotAvailable)
}
