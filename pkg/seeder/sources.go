// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package seeder

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/siderolabs/go-seeder/internal/pkg/rng"
)

// SourceConfig is the input of the built-in source descriptors.
type SourceConfig struct {
	// Context feeds the deterministic source.
	Context ContextStore
	// Logger is passed to sources which report diagnostics.
	Logger *zap.Logger
	// DevicePath is the random device of the device-file source.
	DevicePath string
	// DeviceSecret is added (mod 2^128) to every seed read from the device file.
	DeviceSecret Seed
}

// DefaultDescriptors returns the built-in sources in priority order.
func DefaultDescriptors(cfg SourceConfig) []Descriptor {
	if cfg.Context == nil {
		cfg.Context = DefaultContext()
	}

	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	if cfg.DevicePath == "" {
		cfg.DevicePath = rng.RandomDevicePath
	}

	return []Descriptor{
		{
			Name:     SourceDeterministic,
			Priority: PriorityDeterministic,
			Target:   TargetNative,
			Feature:  FeatureDeterministic,
			Probe:    ProbeDeterministic,
			Open: func() (Handle, error) {
				return NewDeterministicSeeder(cfg.Context), nil
			},
		},
		{
			Name:     SourceRDSEED,
			Priority: PriorityRDSEED,
			Target:   TargetNative,
			Feature:  FeatureRDSEED,
			Probe:    rng.RDSEEDAvailable,
			Open:     openReader(SourceRDSEED, rng.ReadRDSEED),
		},
		{
			Name:     SourceSecureService,
			Priority: PrioritySecureService,
			Target:   TargetNative,
			Feature:  FeatureSecureService,
			Probe:    rng.SecureServiceAvailable,
			Open: openReader(SourceSecureService, func() ([rng.SeedSize]byte, error) {
				return rng.ReadSecureService(cfg.Logger)
			}),
		},
		{
			Name:     SourceDeviceFile,
			Priority: PriorityDeviceFile,
			Target:   TargetNative,
			Feature:  FeatureDeviceFile,
			Probe: func() bool {
				return rng.DeviceAvailable(cfg.DevicePath)
			},
			Open: func() (Handle, error) {
				return HandleFunc(SourceDeviceFile, func() (Seed, error) {
					s, err := readSeed(SourceDeviceFile, func() ([rng.SeedSize]byte, error) {
						return rng.ReadDevice(cfg.DevicePath)
					})
					if err != nil {
						return s, err
					}

					return s.Add(cfg.DeviceSecret), nil
				}), nil
			},
		},
		{
			Name:     SourceHostRandom,
			Priority: PriorityHostRandom,
			Target:   TargetRestricted,
			Feature:  FeatureHostRandom,
			Probe:    rng.HostAvailable,
			Open:     openReader(SourceHostRandom, rng.ReadHost),
		},
	}
}

// NewDefaultRegistry returns a registry with the built-in sources.
func NewDefaultRegistry(cfg SourceConfig) (*Registry, error) {
	registry := NewRegistry()

	if err := registry.RegisterAll(DefaultDescriptors(cfg)...); err != nil {
		return nil, err
	}

	return registry, nil
}

func openReader(name SourceName, read func() ([rng.SeedSize]byte, error)) func() (Handle, error) {
	return func() (Handle, error) {
		return HandleFunc(name, func() (Seed, error) {
			return readSeed(name, read)
		}), nil
	}
}

func readSeed(name SourceName, read func() ([rng.SeedSize]byte, error)) (Seed, error) {
	buf, err := read()
	if err != nil {
		return Seed{}, fmt.Errorf("%w: %s: %w", ErrSourceFailed, name, err)
	}

	return Seed(buf), nil
}
