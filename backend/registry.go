// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"sort"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/ggview/engine"
)

// BackendFactory creates a new backend instance.
type BackendFactory func() engine.Backend

// backendPriority is the selection order for Default (first registered
// wins). Unlisted backends come after in no particular order.
var backendPriority = []string{Wgpu, WgpuFallback}

var registry = gpucontext.NewRegistry[engine.Backend](gpucontext.WithPriority(backendPriority...))

// Register registers a backend factory under name. Backend packages call it
// from init. Registering a name again replaces the earlier factory.
func Register(name string, factory BackendFactory) {
	registry.Register(name, factory)
}

// Unregister removes a backend. It is mostly useful in tests.
func Unregister(name string) {
	registry.Unregister(name)
}

// Available returns the registered backend names, sorted.
func Available() []string {
	names := registry.Available()
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a backend is registered under name.
func IsRegistered(name string) bool {
	return registry.Has(name)
}

// Get returns a new instance of the named backend, or nil.
func Get(name string) engine.Backend {
	return registry.Get(name)
}

// Default returns a new instance of the best registered backend, or nil.
func Default() engine.Backend {
	return registry.Best()
}

// DefaultName returns the name Default would pick, or "".
func DefaultName() string {
	return registry.BestName()
}
