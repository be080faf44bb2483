// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"fmt"
	"time"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/ggview/keymap"
)

// EventKind identifies the variant held by an Event.
type EventKind uint8

const (
	// EventNone is the zero kind. Listeners ignore it.
	EventNone EventKind = iota

	// EventExpose reports that the window became visible or needs a
	// redraw. X, Y, Width and Height give the exposed region.
	EventExpose

	// EventHide reports that the window was hidden.
	EventHide

	// EventResize reports a new logical size in Width and Height.
	EventResize

	// EventKeyPress and EventKeyRelease carry Key, Modifiers, Text and
	// Repeat.
	EventKeyPress
	EventKeyRelease

	// EventMouseMove, EventMousePress and EventMouseRelease carry the
	// pointer position in X and Y. Press and release also carry Button.
	EventMouseMove
	EventMousePress
	EventMouseRelease

	// EventWheel carries DeltaX, DeltaY and DeltaMode.
	EventWheel

	// EventClose reports that the user asked to close the window.
	EventClose
)

var kindNames = [...]string{
	EventNone:         "None",
	EventExpose:       "Expose",
	EventHide:         "Hide",
	EventResize:       "Resize",
	EventKeyPress:     "KeyPress",
	EventKeyRelease:   "KeyRelease",
	EventMouseMove:    "MouseMove",
	EventMousePress:   "MousePress",
	EventMouseRelease: "MouseRelease",
	EventWheel:        "Wheel",
	EventClose:        "Close",
}

// String returns the kind name.
func (k EventKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", k)
}

// Event is a raw host event. Kind selects which fields are meaningful.
// Coordinates and sizes are in logical pixels; multiply by the window's
// scale factor for device pixels.
type Event struct {
	Kind EventKind
	Time time.Time

	// Pointer position or exposed-region origin.
	X, Y float64

	// Exposed-region or new window size.
	Width, Height int

	// Key events.
	Key    keymap.Code
	Text   string
	Repeat bool

	// Modifier state for key, pointer and wheel events.
	Modifiers gpucontext.Modifiers

	// Mouse press and release.
	Button gpucontext.MouseButton

	// Wheel deltas. Positive DeltaY scrolls down.
	DeltaX, DeltaY float64
	DeltaMode      gpucontext.ScrollDeltaMode
}

// String formats the event for logging.
func (e Event) String() string {
	switch e.Kind {
	case EventExpose, EventResize:
		return fmt.Sprintf("%s{%gx%g %dx%d}", e.Kind, e.X, e.Y, e.Width, e.Height)
	case EventKeyPress, EventKeyRelease:
		return fmt.Sprintf("%s{key=%#x mods=%d text=%q}", e.Kind, uint32(e.Key), e.Modifiers, e.Text)
	case EventMouseMove:
		return fmt.Sprintf("%s{%g,%g}", e.Kind, e.X, e.Y)
	case EventMousePress, EventMouseRelease:
		return fmt.Sprintf("%s{%g,%g button=%d}", e.Kind, e.X, e.Y, e.Button)
	case EventWheel:
		return fmt.Sprintf("%s{%g,%g mode=%s}", e.Kind, e.DeltaX, e.DeltaY, e.DeltaMode)
	default:
		return e.Kind.String()
	}
}
