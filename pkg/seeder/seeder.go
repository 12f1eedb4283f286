// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package seeder

import (
	"context"

	"go.uber.org/zap"
)

// Option configures New.
type Option func(*Options)

// Options for New.
type Options struct {
	Context  context.Context //nolint:containedctx
	Logger   *zap.Logger
	Store    ContextStore
	Registry *Registry

	DevicePath   string
	DeviceSecret Seed

	Features Features
	Mode     Mode
	Target   Target
}

// DefaultOptions returns the defaults of New.
func DefaultOptions() Options {
	return Options{
		Context:  context.Background(),
		Logger:   zap.NewNop(),
		Features: DefaultFeatures(),
		Mode:     ModeLibrary,
		Target:   CurrentTarget(),
	}
}

// WithContext sets the context checked between probes.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Context = ctx
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithFeatures replaces the enabled feature set.
func WithFeatures(features Features) Option {
	return func(o *Options) {
		o.Features = features
	}
}

// WithContextStore sets the context store of the deterministic source.
//
// Defaults to DefaultContext.
func WithContextStore(store ContextStore) Option {
	return func(o *Options) {
		o.Store = store
	}
}

// WithRegistry replaces the built-in sources.
//
// The built-in sources are not created then, so WithContextStore, WithDevicePath and
// WithDeviceSecret have no effect.
func WithRegistry(registry *Registry) Option {
	return func(o *Options) {
		o.Registry = registry
	}
}

// WithMode sets the remediation message mode.
func WithMode(mode Mode) Option {
	return func(o *Options) {
		o.Mode = mode
	}
}

// WithTarget overrides target detection.
func WithTarget(target Target) Option {
	return func(o *Options) {
		o.Target = target
	}
}

// WithDevicePath overrides the random device of the device-file source.
func WithDevicePath(path string) Option {
	return func(o *Options) {
		o.DevicePath = path
	}
}

// WithDeviceSecret sets the secret added to device-file seeds.
func WithDeviceSecret(secret Seed) Option {
	return func(o *Options) {
		o.DeviceSecret = secret
	}
}

// New returns a handle for the highest priority available source.
//
// Priority order: deterministic (when enabled), rdseed, secure-service, device-file.
// On the restricted target only host-random is considered.
// If nothing is available, the error is a *NoSourceError.
func New(opts ...Option) (Handle, error) {
	handle, _, err := NewWithSelection(opts...)

	return handle, err
}

// NewWithSelection is New which also reports which sources were probed.
func NewWithSelection(opts ...Option) (Handle, Selection, error) {
	options := DefaultOptions()

	for _, opt := range opts {
		opt(&options)
	}

	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}

	if options.Context == nil {
		options.Context = context.Background()
	}

	registry := options.Registry

	if registry == nil {
		var err error

		registry, err = NewDefaultRegistry(SourceConfig{
			Context:      options.Store,
			Logger:       options.Logger,
			DevicePath:   options.DevicePath,
			DeviceSecret: options.DeviceSecret,
		})
		if err != nil {
			return nil, Selection{}, err
		}
	}

	return Select(options.Context, registry, SelectOptions{
		Logger:   options.Logger,
		Features: options.Features,
		Mode:     options.Mode,
		Target:   options.Target,
	})
}

// MustNew is New which panics with the remediation message when no source is available.
func MustNew(opts ...Option) Handle {
	handle, err := New(opts...)
	if err != nil {
		panic(err.Error())
	}

	return handle
}
