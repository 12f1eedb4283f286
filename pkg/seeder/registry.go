// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package seeder

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// Registry maps source names to their descriptors.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	items map[SourceName]Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{items: make(map[SourceName]Descriptor)}
}

// Register adds a descriptor.
func (r *Registry) Register(desc Descriptor) error {
	if strings.TrimSpace(string(desc.Name)) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidDescriptor)
	}

	if desc.Probe == nil || desc.Open == nil {
		return fmt.Errorf("%w: source %q requires both probe and open", ErrInvalidDescriptor, desc.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[desc.Name]; ok {
		return fmt.Errorf("%w: %q", ErrSourceExists, desc.Name)
	}

	r.items[desc.Name] = desc

	return nil
}

// RegisterAll registers every descriptor, returning all the failures.
func (r *Registry) RegisterAll(descs ...Descriptor) error {
	var result *multierror.Error

	for _, desc := range descs {
		if err := r.Register(desc); err != nil {
			result = multierror.Append(result, err)
		}
	}

	return result.ErrorOrNil()
}

// Lookup returns a descriptor by name.
func (r *Registry) Lookup(name SourceName) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	desc, ok := r.items[name]

	return desc, ok
}

// Descriptors returns all descriptors in priority order.
func (r *Registry) Descriptors() []Descriptor {
	r.mu.RLock()

	list := make([]Descriptor, 0, len(r.items))
	for _, desc := range r.items {
		list = append(list, desc)
	}

	r.mu.RUnlock()

	slices.SortFunc(list, func(a, b Descriptor) int {
		return cmp.Or(
			cmp.Compare(a.Priority, b.Priority),
			strings.Compare(string(a.Name), string(b.Name)),
		)
	})

	return list
}
