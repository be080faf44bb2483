// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package host defines the capabilities ggview needs from a windowing
// toolkit and provides a headless implementation.
//
// A toolkit plugs in through two interfaces:
//
//   - WindowHost is one native window. It reports its logical size and
//     scale factor (gpucontext.WindowProvider), delivers raw input as a
//     single Event value to one registered listener, and displays frames.
//   - ViewContainer owns the windows of a multi-view area. It creates them,
//     shows the first one maximized, retiles the rest so they never
//     overlap, and drives the event loop.
//
// Events carry host key codes (keymap.Code), host modifier flags
// (gpucontext.Modifiers) and logical pixel coordinates. Translation into
// engine events happens in package window.
//
// The desktop implementation over ebiten lives in host/desktop. Any
// gpucontext.EventSource can be turned into an Event stream with Bridge.
package host
