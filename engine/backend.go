// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"context"

	"github.com/gogpu/gpucontext"
)

// Backend creates devices, surfaces and render tasks. A single backend
// instance serves every window of a viewer.
type Backend interface {
	// Name returns the backend identifier (e.g., "wgpu").
	Name() string

	// CreateDevice creates the rendering device. It is called at most once
	// per device slot.
	CreateDevice(traits *Traits) (gpucontext.DeviceProvider, error)

	// CreateSurface creates the render target of w on device at extent,
	// in device pixels.
	CreateSurface(device gpucontext.DeviceProvider, w *Window, extent Extent) (Surface, error)

	// NewRenderTask builds the per-frame render, submit and present work
	// for one window, camera and scene.
	NewRenderTask(device gpucontext.DeviceProvider, w *Window, cam *Camera, scene Node) (Task, error)
}

// Surface is the render target of one window.
type Surface interface {
	// Resize reallocates the target at the new extent in device pixels.
	Resize(width, height uint32) error

	// Release frees the target. Release is idempotent.
	Release()
}

// Task is the frame work registered for one window.
type Task interface {
	// Run records, submits and presents one frame.
	Run(ctx context.Context, stamp FrameStamp) error

	// Release frees resources owned by the task. Release is idempotent.
	Release()
}

// Releaser is implemented by devices that own GPU resources.
type Releaser interface {
	Release()
}
