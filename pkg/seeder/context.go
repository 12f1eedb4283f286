// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package seeder

import (
	"sync"
)

// ContextStore holds the context of the deterministic source.
//
// Implementations must serialize Set and Get.
type ContextStore interface {
	// Set replaces the context, no history is kept.
	Set(value string)
	// Get returns a copy of the context and whether it was ever set.
	Get() (string, bool)
}

// SharedContext is a ContextStore guarded by a mutex.
type SharedContext struct {
	mu    sync.RWMutex
	value *string
}

// NewSharedContext creates an empty context store.
func NewSharedContext() *SharedContext {
	return &SharedContext{}
}

// Set implements ContextStore.
func (c *SharedContext) Set(value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value = &value
}

// Get implements ContextStore.
func (c *SharedContext) Get() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.value == nil {
		return "", false
	}

	return *c.value, true
}

// DefaultContext returns the process-wide context store.
//
// It is created empty on first use and lives until the process exits.
var DefaultContext = sync.OnceValue(func() ContextStore {
	return NewSharedContext()
})

// Configure sets the context of the process-wide store.
//
// It only affects deterministic seeders created afterwards.
func Configure(value string) {
	DefaultContext().Set(value)
}
