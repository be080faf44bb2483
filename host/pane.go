// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"image"
	"sync"
	"time"

	"github.com/gogpu/gpucontext"
)

// Pane is the state shared by every container's windows: the region inside
// the container, visibility, the event listener and the latest presented
// frame. Containers embed it in their window types and add the operations
// that need the container (maximize, minimize).
type Pane struct {
	title string

	mu         sync.Mutex
	scale      float64
	rect       image.Rectangle
	visible    bool
	maximized  bool
	fullscreen bool
	frameless  bool
	listener   func(Event)
	frame      *image.RGBA
	frames     int
	hitTest    gpucontext.HitTestCallback
}

// NewPane returns a hidden pane of size w×h logical pixels.
func NewPane(title string, w, h int, scale float64) *Pane {
	if scale <= 0 {
		scale = 1
	}
	return &Pane{title: title, scale: scale, rect: image.Rect(0, 0, w, h)}
}

// Title returns the window title.
func (p *Pane) Title() string { return p.title }

// Size returns the logical size.
func (p *Pane) Size() (int, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rect.Dx(), p.rect.Dy()
}

// Rect returns the region inside the container.
func (p *Pane) Rect() image.Rectangle {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rect
}

// ScaleFactor returns the device pixel ratio.
func (p *Pane) ScaleFactor() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.scale
}

// SetScaleFactor updates the device pixel ratio. Non-positive values are
// ignored. A visible pane whose ratio changed gets a resize event so the
// engine reallocates its surface.
func (p *Pane) SetScaleFactor(scale float64) {
	if scale <= 0 {
		return
	}
	p.mu.Lock()
	changed := scale != p.scale
	p.scale = scale
	visible := p.visible
	w, h := p.rect.Dx(), p.rect.Dy()
	p.mu.Unlock()
	if changed && visible {
		p.Send(Event{Kind: EventResize, Width: w, Height: h})
	}
}

// Visible reports whether the pane has been shown and not hidden.
func (p *Pane) Visible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visible
}

// RequestRedraw emits an expose event for a visible pane.
func (p *Pane) RequestRedraw() {
	p.mu.Lock()
	visible := p.visible
	w, h := p.rect.Dx(), p.rect.Dy()
	p.mu.Unlock()
	if visible {
		p.Send(Event{Kind: EventExpose, Width: w, Height: h})
	}
}

// OnEvent registers the event listener.
func (p *Pane) OnEvent(fn func(Event)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listener = fn
}

// Send delivers ev to the listener. A zero Time is set to now.
func (p *Pane) Send(ev Event) {
	if ev.Time.IsZero() {
		ev.Time = time.Now()
	}
	p.mu.Lock()
	fn := p.listener
	p.mu.Unlock()
	if fn != nil {
		fn(ev)
	}
}

// Hide hides the pane and emits a hide event.
func (p *Pane) Hide() {
	p.mu.Lock()
	was := p.visible
	p.visible = false
	p.maximized = false
	p.mu.Unlock()
	if was {
		p.Send(Event{Kind: EventHide})
	}
}

// Present stores a copy of frame.
func (p *Pane) Present(frame *image.RGBA) {
	if frame == nil {
		return
	}
	cp := image.NewRGBA(frame.Rect)
	copy(cp.Pix, frame.Pix)

	p.mu.Lock()
	p.frame = cp
	p.frames++
	p.mu.Unlock()
}

// Frame returns the latest presented frame, or nil.
func (p *Pane) Frame() *image.RGBA {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frame
}

// FrameCount returns the number of presented frames.
func (p *Pane) FrameCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frames
}

// LatestFrame returns the latest frame and its sequence number, so a
// drawer can skip uploads when nothing new arrived.
func (p *Pane) LatestFrame() (*image.RGBA, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frame, p.frames
}

// Place moves the pane to r and shows it. A newly shown pane gets an
// expose event; a visible pane whose size changed gets a resize event.
func (p *Pane) Place(r image.Rectangle, maximized bool) {
	p.mu.Lock()
	wasVisible := p.visible
	resized := r.Dx() != p.rect.Dx() || r.Dy() != p.rect.Dy()
	p.rect = r
	p.visible = true
	p.maximized = maximized
	p.mu.Unlock()

	switch {
	case !wasVisible:
		p.Send(Event{Kind: EventExpose, Width: r.Dx(), Height: r.Dy()})
	case resized:
		p.Send(Event{Kind: EventResize, Width: r.Dx(), Height: r.Dy()})
	}
}

// IsMaximized reports whether the pane covers the whole container.
func (p *Pane) IsMaximized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.maximized
}

// SetFrameless records the frameless flag.
func (p *Pane) SetFrameless(frameless bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.frameless = frameless
}

// IsFrameless reports the frameless flag.
func (p *Pane) IsFrameless() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frameless
}

// SetHitTestCallback stores the callback used by HitTest.
func (p *Pane) SetHitTestCallback(cb gpucontext.HitTestCallback) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hitTest = cb
}

// HitTest classifies a pane-local logical position with the registered
// callback.
func (p *Pane) HitTest(x, y float64) gpucontext.HitTestResult {
	p.mu.Lock()
	cb := p.hitTest
	p.mu.Unlock()
	if cb == nil {
		return gpucontext.HitTestClient
	}
	return cb(x, y)
}

// SetFullscreen records the fullscreen flag.
func (p *Pane) SetFullscreen(fullscreen bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fullscreen = fullscreen
}

// IsFullscreen reports the fullscreen flag.
func (p *Pane) IsFullscreen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fullscreen
}

// Close emits a close event.
func (p *Pane) Close() {
	p.Send(Event{Kind: EventClose})
}
