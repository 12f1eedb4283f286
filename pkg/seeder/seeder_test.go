// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package seeder_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/siderolabs/go-seeder/pkg/seeder"
)

func TestNewDeterministic(t *testing.T) {
	t.Parallel()

	store := seeder.NewSharedContext()
	store.Set("abc")

	handle, err := seeder.New(
		seeder.WithLogger(zaptest.NewLogger(t)),
		seeder.WithFeatures(seeder.Features{Deterministic: true, RDSEED: true, DeviceFile: true}),
		seeder.WithContextStore(store),
		seeder.WithTarget(seeder.TargetNative),
	)
	require.NoError(t, err)

	assert.Equal(t, seeder.SourceDeterministic, handle.Source())

	s, err := handle.Seed()
	require.NoError(t, err)
	assert.Equal(t, seeder.Derive("abc"), s)
}

func TestConfigureProcessWide(t *testing.T) {
	// mutates the process-wide store, not parallel
	seeder.Configure("process-wide")

	handle, err := seeder.New(
		seeder.WithFeatures(seeder.Features{Deterministic: true}),
		seeder.WithTarget(seeder.TargetNative),
	)
	require.NoError(t, err)

	seeder.Configure("changed-later")

	s, err := handle.Seed()
	require.NoError(t, err)
	assert.Equal(t, seeder.Derive("process-wide"), s)
}

func TestConfigureConcurrentWithNew(t *testing.T) {
	var wg sync.WaitGroup

	for range 8 {
		wg.Add(2)

		go func() {
			defer wg.Done()

			seeder.Configure("race")
		}()

		go func() {
			defer wg.Done()

			_, err := seeder.New(
				seeder.WithFeatures(seeder.Features{Deterministic: true}),
				seeder.WithTarget(seeder.TargetNative),
			)
			assert.NoError(t, err)
		}()
	}

	wg.Wait()
}

func TestNewNothingEnabled(t *testing.T) {
	t.Parallel()

	_, err := seeder.New(
		seeder.WithFeatures(seeder.Features{}),
		seeder.WithTarget(seeder.TargetNative),
	)
	require.ErrorIs(t, err, seeder.ErrNoSourceAvailable)
	assert.EqualError(t, err, seeder.MessageEnableFeature)

	_, err = seeder.New(
		seeder.WithFeatures(seeder.Features{}),
		seeder.WithTarget(seeder.TargetNative),
		seeder.WithMode(seeder.ModeEmbedded),
	)
	assert.EqualError(t, err, seeder.MessageNoCompatible)

	assert.PanicsWithValue(t, seeder.MessageNoCompatible, func() {
		seeder.MustNew(
			seeder.WithFeatures(seeder.Features{}),
			seeder.WithTarget(seeder.TargetNative),
			seeder.WithMode(seeder.ModeEmbedded),
		)
	})
}

func TestNewDeviceFileNotCharDevice(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "random")
	require.NoError(t, os.WriteFile(path, make([]byte, 64), 0o600))

	_, selection, err := seeder.NewWithSelection(
		seeder.WithFeatures(seeder.Features{DeviceFile: true}),
		seeder.WithTarget(seeder.TargetNative),
		seeder.WithDevicePath(path),
	)
	require.ErrorIs(t, err, seeder.ErrNoSourceAvailable)
	assert.Equal(t, []seeder.SourceName{seeder.SourceDeviceFile}, selection.Probed)
}

func TestEntropySourcesDistinct(t *testing.T) {
	t.Parallel()

	for _, desc := range seeder.DefaultDescriptors(seeder.SourceConfig{Logger: zaptest.NewLogger(t)}) {
		if desc.Name == seeder.SourceDeterministic {
			continue
		}

		t.Run(string(desc.Name), func(t *testing.T) {
			t.Parallel()

			if !desc.Probe() {
				t.Skipf("source %q is not available", desc.Name)
			}

			handle, err := desc.Open()
			require.NoError(t, err)

			trials := 1000
			if desc.Name == seeder.SourceSecureService {
				trials = 16
			}

			distinct := 0

			for range trials {
				first, err := handle.Seed()
				if err != nil {
					t.Skipf("source %q failed: %s", desc.Name, err)
				}

				second, err := handle.Seed()
				require.NoError(t, err)

				if first != second {
					distinct++
				}
			}

			assert.GreaterOrEqual(t, distinct, trials-trials/1000)
		})
	}
}
