// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import "errors"

// Package errors.
var (
	// ErrDeviceAlreadySet is returned when a populated device slot is written again.
	ErrDeviceAlreadySet = errors.New("engine: device already set")

	// ErrSlotReleased is returned when a device slot is used after Take.
	ErrSlotReleased = errors.New("engine: device slot released")

	// ErrNilDevice is returned when a device factory returns no device and no error.
	ErrNilDevice = errors.New("engine: nil device")

	// ErrViewerClosed is returned by Run when the viewer was closed before it started.
	ErrViewerClosed = errors.New("engine: viewer closed")

	// ErrNilCamera is returned when a handler or task is built without a camera.
	ErrNilCamera = errors.New("engine: nil camera")
)
