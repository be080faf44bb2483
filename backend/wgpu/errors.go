// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import "errors"

// Package errors for the wgpu backend.
var (
	// ErrNoAdapter is returned when no GPU adapter matches the request.
	ErrNoAdapter = errors.New("wgpu: no suitable adapter")

	// ErrDeviceCreationFailed is returned when the logical device cannot be created.
	ErrDeviceCreationFailed = errors.New("wgpu: device creation failed")

	// ErrForeignDevice is returned when a device provider was not created by this backend.
	ErrForeignDevice = errors.New("wgpu: device not created by the wgpu backend")

	// ErrForeignSurface is returned when a window's surface was not created by this backend.
	ErrForeignSurface = errors.New("wgpu: surface not created by the wgpu backend")

	// ErrDeviceReleased is returned when a released device is used.
	ErrDeviceReleased = errors.New("wgpu: device released")

	// ErrInvalidDimensions is returned when a surface extent is empty.
	ErrInvalidDimensions = errors.New("wgpu: invalid dimensions")

	// ErrInvalidShader is returned when the WGSL shader fails validation.
	ErrInvalidShader = errors.New("wgpu: invalid shader")

	// ErrUnknownGraphicsAPI is returned for an unrecognised GOGPU_GRAPHICS_API value.
	ErrUnknownGraphicsAPI = errors.New("wgpu: unknown graphics API")
)
