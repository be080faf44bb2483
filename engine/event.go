// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"time"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/ggview/keymap"
)

// Event is an engine-side input or window-state event. Target is nil for
// events that are not tied to a window.
type Event interface {
	Target() *Window
	Timestamp() time.Time
}

// WindowEvent is the common part of every window event.
type WindowEvent struct {
	Window *Window
	Time   time.Time
}

// Target returns the window the event belongs to.
func (e WindowEvent) Target() *Window { return e.Window }

// Timestamp returns when the host delivered the event.
func (e WindowEvent) Timestamp() time.Time { return e.Time }

// ExposeWindowEvent reports that a window became visible or needs a redraw.
// The extent is in device pixels.
type ExposeWindowEvent struct {
	WindowEvent
	X, Y          int32
	Width, Height uint32
}

// UnmapWindowEvent reports that a window was hidden.
type UnmapWindowEvent struct {
	WindowEvent
}

// ConfigureWindowEvent reports a new window extent in device pixels.
type ConfigureWindowEvent struct {
	WindowEvent
	X, Y          int32
	Width, Height uint32
}

// CloseWindowEvent reports that the user asked to close a window.
type CloseWindowEvent struct {
	WindowEvent
}

// KeyEvent carries a translated key.
type KeyEvent struct {
	WindowEvent
	Key      keymap.KeySymbol
	Modified keymap.KeySymbol
	Mask     keymap.ModifierMask
	Repeat   bool
}

// KeyPressEvent is a key going down.
type KeyPressEvent struct{ KeyEvent }

// KeyReleaseEvent is a key coming up.
type KeyReleaseEvent struct{ KeyEvent }

// PointerEvent carries a pointer position in device pixels and the buttons
// held at that moment.
type PointerEvent struct {
	WindowEvent
	X, Y    int32
	Buttons gpucontext.Buttons
	Mask    keymap.ModifierMask
}

// MoveEvent is pointer motion.
type MoveEvent struct{ PointerEvent }

// ButtonPressEvent is a pointer button going down. Buttons includes Button.
type ButtonPressEvent struct {
	PointerEvent
	Button gpucontext.Button
}

// ButtonReleaseEvent is a pointer button coming up. Buttons excludes Button.
type ButtonReleaseEvent struct {
	PointerEvent
	Button gpucontext.Button
}

// ScrollWheelEvent is a wheel step. Deltas are in lines; positive DY scrolls
// up (away from the user).
type ScrollWheelEvent struct {
	WindowEvent
	DX, DY float32
	Mask   keymap.ModifierMask
}

// FrameEvent is dispatched to handlers at the start of every frame.
type FrameEvent struct {
	Stamp FrameStamp
}

// Target returns nil.
func (FrameEvent) Target() *Window { return nil }

// Timestamp returns the frame time.
func (e FrameEvent) Timestamp() time.Time { return e.Stamp.Time }

// FrameStamp identifies one tick of the viewer.
type FrameStamp struct {
	Frame uint64
	Time  time.Time
}

// Handler receives events from the viewer.
type Handler interface {
	Handle(ev Event)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ev Event)

// Handle calls f(ev).
func (f HandlerFunc) Handle(ev Event) { f(ev) }
