// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package config provides the configuration document of the seeder.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/siderolabs/go-seeder/pkg/seeder"
)

// Config selects which entropy sources are compiled in and how they behave.
type Config struct {
	// Context of the deterministic source, nil leaves the store untouched.
	Context *string `yaml:"context,omitempty" env:"SEEDER_CONTEXT"`
	// Mode is "library" or "embedded".
	Mode string `yaml:"mode,omitempty" env:"SEEDER_MODE"`
	// DevicePath overrides /dev/random.
	DevicePath string `yaml:"devicePath,omitempty" env:"SEEDER_DEVICE_PATH"`
	// DeviceSecret is a hex 128-bit value added to device-file seeds.
	DeviceSecret string `yaml:"deviceSecret,omitempty" env:"SEEDER_DEVICE_SECRET"`

	Features Features `yaml:"features" envPrefix:"SEEDER_"`
}

// Features toggles individual sources.
type Features struct {
	Deterministic bool `yaml:"deterministic" env:"DETERMINISTIC"`
	RDSEED        bool `yaml:"rdseed" env:"RDSEED"`
	SecureService bool `yaml:"secureService" env:"SECURE_SERVICE"`
	DeviceFile    bool `yaml:"deviceFile" env:"DEVICE_FILE"`
}

// Default returns the default configuration.
func Default() *Config {
	defaults := seeder.DefaultFeatures()

	return &Config{
		Mode: seeder.ModeLibrary.String(),
		Features: Features{
			Deterministic: defaults.Deterministic,
			RDSEED:        defaults.RDSEED,
			SecureService: defaults.SecureService,
			DeviceFile:    defaults.DeviceFile,
		},
	}
}

// Load reads the configuration file (if path is not empty), applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("error opening config %q: %w", path, err)
		}

		defer f.Close() //nolint:errcheck

		if err = cfg.decode(f); err != nil {
			return nil, fmt.Errorf("error parsing config %q: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse decodes and validates a YAML document on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	if err := cfg.decode(bytes.NewReader(data)); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// Validate checks the configuration.
func (cfg *Config) Validate() error {
	var result *multierror.Error

	if _, err := seeder.ParseMode(cfg.Mode); err != nil {
		result = multierror.Append(result, err)
	}

	if cfg.DeviceSecret != "" {
		if _, err := seeder.ParseSeed(cfg.DeviceSecret); err != nil {
			result = multierror.Append(result, fmt.Errorf("device secret: %w", err))
		}
	}

	if cfg.DevicePath != "" && !strings.HasPrefix(cfg.DevicePath, "/") {
		result = multierror.Append(result, fmt.Errorf("device path %q must be absolute", cfg.DevicePath))
	}

	if cfg.Context != nil && !cfg.Features.Deterministic {
		result = multierror.Append(result, errors.New("context is set but the deterministic source is disabled"))
	}

	return result.ErrorOrNil()
}

// SeederFeatures converts Features to the seeder feature set.
func (cfg *Config) SeederFeatures() seeder.Features {
	return seeder.Features{
		Deterministic: cfg.Features.Deterministic,
		RDSEED:        cfg.Features.RDSEED,
		SecureService: cfg.Features.SecureService,
		DeviceFile:    cfg.Features.DeviceFile,
	}
}

// Options converts the configuration to seeder options.
//
// The context, if set, is written to store.
func (cfg *Config) Options(store seeder.ContextStore) ([]seeder.Option, error) {
	mode, err := seeder.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}

	opts := []seeder.Option{
		seeder.WithFeatures(cfg.SeederFeatures()),
		seeder.WithMode(mode),
		seeder.WithContextStore(store),
	}

	if cfg.DevicePath != "" {
		opts = append(opts, seeder.WithDevicePath(cfg.DevicePath))
	}

	if cfg.DeviceSecret != "" {
		secret, err := seeder.ParseSeed(cfg.DeviceSecret)
		if err != nil {
			return nil, fmt.Errorf("device secret: %w", err)
		}

		opts = append(opts, seeder.WithDeviceSecret(secret))
	}

	if cfg.Context != nil {
		store.Set(*cfg.Context)
	}

	return opts, nil
}
