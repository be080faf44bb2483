// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"image"
	"sync"

	"github.com/gogpu/gpucontext"
)

// Extent is a size in device pixels.
type Extent struct {
	Width  uint32
	Height uint32
}

// Presenter receives finished frames for display.
type Presenter interface {
	Present(frame *image.RGBA)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(frame *image.RGBA)

// Present calls f(frame).
func (f PresenterFunc) Present(frame *image.RGBA) { f(frame) }

// Window is the engine side of one host window. It holds the device and
// surface assigned at initialization and the visibility and extent applied
// from window-state events.
//
// Window state changes only through the viewer: hosts push events and the
// viewer applies them at the start of a tick.
type Window struct {
	title  string
	traits Traits

	mu        sync.RWMutex
	extent    Extent
	visible   bool
	device    gpucontext.DeviceProvider
	surface   Surface
	presenter Presenter
}

// NewWindow creates an engine window with a copy of traits. The extent
// starts at the traits size.
func NewWindow(title string, traits *Traits) *Window {
	if traits == nil {
		traits = NewTraits()
	}
	return &Window{
		title:  title,
		traits: *traits,
		extent: Extent{Width: uint32(max(traits.Width, 0)), Height: uint32(max(traits.Height, 0))},
	}
}

// Title returns the window title.
func (w *Window) Title() string { return w.title }

// Traits returns the traits the window was created with.
func (w *Window) Traits() Traits { return w.traits }

// Extent returns the current extent in device pixels.
func (w *Window) Extent() Extent {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.extent
}

// Visible reports whether the window is currently shown.
func (w *Window) Visible() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.visible
}

// Device returns the device attached at initialization.
func (w *Window) Device() gpucontext.DeviceProvider {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.device
}

// Surface returns the surface attached at initialization.
func (w *Window) Surface() Surface {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.surface
}

// Attach binds the device and surface. It is called once by the host
// adapter during initialization.
func (w *Window) Attach(device gpucontext.DeviceProvider, surface Surface, extent Extent) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.device = device
	w.surface = surface
	w.extent = extent
}

// SetPresenter sets where finished frames go. Nil discards frames.
func (w *Window) SetPresenter(p Presenter) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.presenter = p
}

// Present hands a finished frame to the presenter, if any.
func (w *Window) Present(frame *image.RGBA) {
	w.mu.RLock()
	p := w.presenter
	w.mu.RUnlock()
	if p != nil {
		p.Present(frame)
	}
}

// apply updates window state from a window-state event.
func (w *Window) apply(ev Event) {
	switch e := ev.(type) {
	case ExposeWindowEvent:
		w.mu.Lock()
		w.visible = true
		resized := w.setExtentLocked(e.Width, e.Height)
		w.mu.Unlock()
		if resized {
			w.resizeSurface()
		}
	case UnmapWindowEvent:
		w.mu.Lock()
		w.visible = false
		w.mu.Unlock()
	case ConfigureWindowEvent:
		w.mu.Lock()
		resized := w.setExtentLocked(e.Width, e.Height)
		w.mu.Unlock()
		if resized {
			w.resizeSurface()
		}
	}
}

// setExtentLocked stores a non-empty extent and reports whether it changed.
func (w *Window) setExtentLocked(width, height uint32) bool {
	if width == 0 || height == 0 {
		return false
	}
	next := Extent{Width: width, Height: height}
	if next == w.extent {
		return false
	}
	w.extent = next
	return true
}

func (w *Window) resizeSurface() {
	s := w.Surface()
	if s == nil {
		return
	}
	ext := w.Extent()
	if err := s.Resize(ext.Width, ext.Height); err != nil {
		Logger().Warn("engine: surface resize failed",
			"window", w.title, "width", ext.Width, "height", ext.Height, "err", err)
	}
}

// release frees the surface.
// Detach releases the surface and clears it. Later calls do nothing.
func (w *Window) Detach() { w.release() }

func (w *Window) release() {
	w.mu.Lock()
	s := w.surface
	w.surface = nil
	w.mu.Unlock()
	if s != nil {
		s.Release()
	}
}
