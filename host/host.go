// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"context"
	"image"
	"time"

	"github.com/gogpu/gpucontext"
)

// WindowHost is one native window.
//
// Size returns the logical size of the drawable area and ScaleFactor the
// ratio of device pixels to logical pixels. RequestRedraw asks the host to
// emit an expose event soon.
type WindowHost interface {
	gpucontext.WindowProvider

	// Title returns the window title.
	Title() string

	// OnEvent registers the listener for raw events. A later call replaces
	// the earlier listener. The listener runs on the event-loop goroutine
	// and must not block.
	OnEvent(fn func(Event))

	// Present displays a finished frame. Frames may arrive from any
	// goroutine; the host keeps the latest.
	Present(frame *image.RGBA)
}

// WindowConfig describes a window to create.
type WindowConfig struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
}

// TickFunc is called by ViewContainer.Run on the event-loop goroutine. It
// returns false to stop the loop.
type TickFunc func(now time.Time) (keepRunning bool, err error)

// ViewContainer owns the windows of a multi-view area.
type ViewContainer interface {
	// Title returns the container title.
	Title() string

	// NewWindow creates a window owned by this container. The window is not
	// shown until it is added and laid out.
	NewWindow(cfg WindowConfig) (WindowHost, error)

	// Add embeds w in the container.
	Add(w WindowHost) error

	// Remove hides w and takes it out of the layout.
	Remove(w WindowHost) error

	// ShowMaximized shows w over the whole container.
	ShowMaximized(w WindowHost)

	// Tile lays every added window out in disjoint, non-empty regions and
	// shows them.
	Tile()

	// Run drives the event loop, calling tick once per iteration, until
	// tick returns false, tick fails, the user closes the container, or
	// ctx is done.
	Run(ctx context.Context, tick TickFunc) error
}
