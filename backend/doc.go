// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package backend selects the engine backend that creates the rendering
// device, window surfaces and render tasks.
//
// # Backend Registration
//
// Backends register a factory from init, so importing a backend package
// makes it available:
//
//	import _ "github.com/gogpu/ggview/backend/wgpu"
//
// # Backend Selection
//
// Use Default to get the best available backend, or Get to request one by
// name. Select combines both and reports which names are registered when
// the request fails:
//
//	b, err := backend.Select("") // best available
//	b, err := backend.Select(backend.WgpuFallback)
//
// # Available Backends
//
//   - "wgpu": GPU rendering via gogpu/wgpu
//   - "wgpu-fallback": the same renderer on a fallback (software) adapter
package backend
