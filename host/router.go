// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"image"
	"math"
	"sync"
)

// Target is a window that can receive routed input.
type Target interface {
	Rect() image.Rectangle
	Visible() bool
	IsMaximized() bool
	Send(ev Event)
}

// Router delivers container-level input to one window. Pointer events go
// to the window under the pointer, or to the window holding the pointer
// while buttons are down; their coordinates become window-local. Key
// events go to the window that last received a press or, failing that, the
// window under the pointer.
//
// The zero value is ready to use.
type Router struct {
	mu    sync.Mutex
	grab  Target
	held  int
	focus Target
	hover Target
}

// Route delivers ev to one of targets, ordered bottom to top. It reports
// whether a target received the event. Window-state events are not routed.
func (r *Router) Route(targets []Target, ev Event) bool {
	switch ev.Kind {
	case EventMouseMove, EventMousePress, EventMouseRelease, EventWheel:
		return r.routePointer(targets, ev)
	case EventKeyPress, EventKeyRelease:
		return r.routeKey(targets, ev)
	default:
		return false
	}
}

func (r *Router) routePointer(targets []Target, ev Event) bool {
	r.mu.Lock()
	t := r.grab
	if t == nil || !t.Visible() {
		t = hit(targets, ev.X, ev.Y)
		r.grab = nil
		r.held = 0
	}
	switch ev.Kind {
	case EventMousePress:
		if t != nil {
			r.grab = t
			r.held++
			r.focus = t
		}
	case EventMouseRelease:
		if r.held > 0 {
			r.held--
		}
		if r.held == 0 {
			r.grab = nil
		}
	}
	r.hover = t
	r.mu.Unlock()

	if t == nil {
		return false
	}
	min := t.Rect().Min
	ev.X -= float64(min.X)
	ev.Y -= float64(min.Y)
	t.Send(ev)
	return true
}

func (r *Router) routeKey(targets []Target, ev Event) bool {
	r.mu.Lock()
	t := r.focus
	if t == nil || !t.Visible() {
		t = r.hover
	}
	r.mu.Unlock()

	if t == nil || !t.Visible() {
		return false
	}
	t.Send(ev)
	return true
}

// hit returns the topmost visible target containing (x, y). A maximized
// target is above every other.
func hit(targets []Target, x, y float64) Target {
	p := image.Pt(int(math.Floor(x)), int(math.Floor(y)))
	var found Target
	for _, t := range targets {
		if !t.Visible() || !p.In(t.Rect()) {
			continue
		}
		if t.IsMaximized() {
			return t
		}
		found = t
	}
	return found
}
