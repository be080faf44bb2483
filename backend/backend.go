// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"errors"
	"fmt"

	"github.com/gogpu/ggview/engine"
)

// Backend names.
const (
	// Wgpu is the hardware wgpu backend.
	Wgpu = "wgpu"

	// WgpuFallback is the wgpu backend restricted to fallback (software)
	// adapters, for machines without a usable GPU.
	WgpuFallback = "wgpu-fallback"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not
	// registered.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNoBackends is returned when no backend is registered at all.
	ErrNoBackends = errors.New("backend: no backends registered")
)

// Select returns the backend registered under name, or the best available
// backend when name is empty.
func Select(name string) (engine.Backend, error) {
	if name == "" {
		b := Default()
		if b == nil {
			return nil, ErrNoBackends
		}
		return b, nil
	}
	b := Get(name)
	if b == nil {
		return nil, fmt.Errorf("%w: %q (registered: %v)", ErrBackendNotAvailable, name, Available())
	}
	return b, nil
}
