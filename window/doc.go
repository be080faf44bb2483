// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package window adapts a host window to the engine.
//
// An Adapter owns one host.WindowHost and one engine.Window. It listens to
// the host's raw events and turns each into exactly one engine event on the
// viewer queue: expose, hide and resize become window-state events, key
// events pass through keymap, and pointer and wheel events are scaled to
// device pixels. The adapter never touches rendering state directly.
//
// Initialize creates the window's surface and takes the rendering device
// from a shared engine.DeviceSlot, creating it only if the slot is empty,
// so every window of an area renders with the same device:
//
//	var slot engine.DeviceSlot
//	a := window.NewAdapter(host, viewer, traits, backend)
//	if err := a.Initialize(&slot); err != nil {
//	    return err
//	}
package window
