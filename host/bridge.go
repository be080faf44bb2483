// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"sync"
	"time"

	"github.com/gogpu/gpucontext"
)

// Bridge turns the callbacks of a gpucontext.EventSource into Events.
//
// EventSource reports modifiers only with key events and positions only
// with pointer events, so the bridge remembers the last of each and
// attaches them to the events that lack them. Key text is derived with
// TextOf because EventSource delivers text input separately from the key.
type Bridge struct {
	emit func(Event)
	now  func() time.Time

	mu   sync.Mutex
	mods gpucontext.Modifiers
	x, y float64
}

// NewBridge registers callbacks on src that forward to emit.
func NewBridge(src gpucontext.EventSource, emit func(Event)) *Bridge {
	b := &Bridge{emit: emit, now: time.Now}
	src.OnKeyPress(func(k gpucontext.Key, m gpucontext.Modifiers) { b.key(EventKeyPress, k, m) })
	src.OnKeyRelease(func(k gpucontext.Key, m gpucontext.Modifiers) { b.key(EventKeyRelease, k, m) })
	src.OnMouseMove(func(x, y float64) { b.pointer(EventMouseMove, 0, x, y) })
	src.OnMousePress(func(btn gpucontext.MouseButton, x, y float64) { b.pointer(EventMousePress, btn, x, y) })
	src.OnMouseRelease(func(btn gpucontext.MouseButton, x, y float64) { b.pointer(EventMouseRelease, btn, x, y) })
	src.OnScroll(b.scroll)
	src.OnResize(func(w, h int) {
		b.send(Event{Kind: EventResize, Width: w, Height: h})
	})
	src.OnFocus(func(focused bool) {
		if !focused {
			// Modifier releases are not reported while unfocused.
			b.mu.Lock()
			b.mods = 0
			b.mu.Unlock()
		}
	})
	return b
}

func (b *Bridge) send(ev Event) {
	ev.Time = b.now()
	b.emit(ev)
}

func (b *Bridge) key(kind EventKind, k gpucontext.Key, m gpucontext.Modifiers) {
	b.mu.Lock()
	b.mods = m
	b.mu.Unlock()

	code := CodeOf(k)
	ev := Event{Kind: kind, Key: code, Modifiers: m}
	if kind == EventKeyPress {
		ev.Text = TextOf(code, m)
	}
	b.send(ev)
}

func (b *Bridge) pointer(kind EventKind, btn gpucontext.MouseButton, x, y float64) {
	b.mu.Lock()
	b.x, b.y = x, y
	m := b.mods
	b.mu.Unlock()
	b.send(Event{Kind: kind, X: x, Y: y, Button: btn, Modifiers: m})
}

func (b *Bridge) scroll(dx, dy float64) {
	b.mu.Lock()
	x, y, m := b.x, b.y, b.mods
	b.mu.Unlock()
	b.send(Event{
		Kind:      EventWheel,
		X:         x,
		Y:         y,
		DeltaX:    dx,
		DeltaY:    dy,
		DeltaMode: gpucontext.ScrollDeltaLine,
		Modifiers: m,
	})
}
