// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package seeder_test

import (
	"math"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siderolabs/go-seeder/pkg/seeder"
)

func stubDescriptor(name seeder.SourceName, priority int) seeder.Descriptor {
	return seeder.Descriptor{
		Name:     name,
		Priority: priority,
		Probe:    func() bool { return true },
		Open: func() (seeder.Handle, error) {
			return seeder.HandleFunc(name, func() (seeder.Seed, error) { return seeder.Seed{}, nil }), nil
		},
	}
}

func TestRegistryRegisterLookup(t *testing.T) {
	t.Parallel()

	r := seeder.NewRegistry()

	require.NoError(t, r.Register(stubDescriptor("a", 1)))
	require.ErrorIs(t, r.Register(stubDescriptor("a", 2)), seeder.ErrSourceExists)

	desc, ok := r.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, 1, desc.Priority)

	_, ok = r.Lookup("missing")
	assert.False(t, ok)
}

func TestRegistryInvalidDescriptors(t *testing.T) {
	t.Parallel()

	r := seeder.NewRegistry()

	noProbe := stubDescriptor("no-probe", 1)
	noProbe.Probe = nil

	noOpen := stubDescriptor("no-open", 1)
	noOpen.Open = nil

	err := r.RegisterAll(stubDescriptor(" ", 1), noProbe, noOpen, stubDescriptor("ok", 1))
	require.ErrorIs(t, err, seeder.ErrInvalidDescriptor)

	var merr *multierror.Error

	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 3)

	_, ok := r.Lookup("ok")
	assert.True(t, ok)
}

func TestRegistryDescriptorsOrdered(t *testing.T) {
	t.Parallel()

	r := seeder.NewRegistry()

	require.NoError(t, r.RegisterAll(
		stubDescriptor("c", 30),
		stubDescriptor("b", 10),
		stubDescriptor("a", 30),
		stubDescriptor("d", 20),
	))

	var names []seeder.SourceName

	for _, desc := range r.Descriptors() {
		names = append(names, desc.Name)
	}

	assert.Equal(t, []seeder.SourceName{"b", "d", "a", "c"}, names)
}

func TestDefaultRegistryOrder(t *testing.T) {
	t.Parallel()

	r, err := seeder.NewDefaultRegistry(seeder.SourceConfig{Context: seeder.NewSharedContext()})
	require.NoError(t, err)

	var names []seeder.SourceName

	for _, desc := range r.Descriptors() {
		names = append(names, desc.Name)
	}

	assert.Equal(t, []seeder.SourceName{
		seeder.SourceDeterministic,
		seeder.SourceRDSEED,
		seeder.SourceSecureService,
		seeder.SourceDeviceFile,
		seeder.SourceHostRandom,
	}, names)
}

func TestRegistryDescriptorsExtremePriorities(t *testing.T) {
	t.Parallel()

	r := seeder.NewRegistry()

	require.NoError(t, r.RegisterAll(
		stubDescriptor("max", math.MaxInt),
		stubDescriptor("zero", 0),
		stubDescriptor("min", math.MinInt),
	))

	var names []seeder.SourceName

	for _, desc := range r.Descriptors() {
		names = append(names, desc.Name)
	}

	assert.Equal(t, []seeder.SourceName{"min", "zero", "max"}, names)
}
