// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package seeder

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// SelectOptions controls the selection.
type SelectOptions struct {
	Logger   *zap.Logger
	Features Features
	Mode     Mode
	Target   Target
}

// Selection describes the outcome of Select.
type Selection struct {
	Source SourceName
	Probed []SourceName
}

// Select returns a handle for the highest priority available source.
//
// Candidates are probed in priority order and probing stops at the first available one.
// On the restricted target only the host-provided sources are considered.
func Select(ctx context.Context, registry *Registry, opts SelectOptions) (Handle, Selection, error) {
	if registry == nil {
		return nil, Selection{}, fmt.Errorf("%w: nil registry", ErrInvalidDescriptor)
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var candidates []Descriptor

	if opts.Target == TargetRestricted {
		candidates = restrictedCandidates(registry)
	} else {
		candidates = nativeCandidates(registry, opts.Features)
	}

	var selection Selection

	for _, desc := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, selection, err
		}

		available := desc.Probe()

		selection.Probed = append(selection.Probed, desc.Name)

		logger.Debug("probed entropy source", zap.String("source", string(desc.Name)), zap.Bool("available", available))

		if !available {
			continue
		}

		handle, err := desc.Open()
		if err != nil {
			return nil, selection, fmt.Errorf("%w: error opening %q: %w", ErrSourceFailed, desc.Name, err)
		}

		selection.Source = desc.Name

		logger.Info("selected entropy source", zap.String("source", string(desc.Name)), zap.Stringer("target", opts.Target))

		return handle, selection, nil
	}

	return nil, selection, newNoSourceError(opts.Mode, opts.Target, selection.Probed)
}

func nativeCandidates(registry *Registry, features Features) []Descriptor {
	var candidates []Descriptor

	for _, desc := range registry.Descriptors() {
		if desc.Target != TargetNative || !features.Enabled(desc.Feature) {
			continue
		}

		candidates = append(candidates, desc)
	}

	return candidates
}

func restrictedCandidates(registry *Registry) []Descriptor {
	var candidates []Descriptor

	for _, desc := range registry.Descriptors() {
		if desc.Target == TargetRestricted {
			candidates = append(candidates, desc)
		}
	}

	return candidates
}
