// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"context"
	"fmt"
	"image"
	"slices"
	"sync"
	"time"

	"github.com/gogpu/gpucontext"
)

// HeadlessConfig controls a Headless container.
type HeadlessConfig struct {
	Title string

	// Width and Height are the container size in logical pixels.
	Width  int
	Height int

	// ScaleFactor is the device pixel ratio reported by every window.
	// Zero means 1.
	ScaleFactor float64

	// Hz is the event-loop rate. Zero means 60.
	Hz int
}

// Headless is a ViewContainer without a display. Windows keep the latest
// presented frame in memory, and tests or scripts inject input with
// HeadlessWindow.Send or route container-level input with Input.
type Headless struct {
	cfg HeadlessConfig

	mu      sync.Mutex
	windows []*HeadlessWindow
	closed  bool
	router  Router
}

var _ ViewContainer = (*Headless)(nil)

// NewHeadless creates a headless container.
func NewHeadless(cfg HeadlessConfig) (*Headless, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: container %dx%d", ErrInvalidSize, cfg.Width, cfg.Height)
	}
	if cfg.ScaleFactor <= 0 {
		cfg.ScaleFactor = 1
	}
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	return &Headless{cfg: cfg}, nil
}

// Title returns the container title.
func (c *Headless) Title() string { return c.cfg.Title }

// Bounds returns the container area in logical pixels.
func (c *Headless) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.cfg.Width, c.cfg.Height)
}

// NewWindow creates a hidden window. Without an explicit size the window
// takes the container size.
func (c *Headless) NewWindow(cfg WindowConfig) (WindowHost, error) {
	w, h := cfg.Width, cfg.Height
	if w == 0 && h == 0 {
		w, h = c.cfg.Width, c.cfg.Height
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: window %q %dx%d", ErrInvalidSize, cfg.Title, w, h)
	}
	hw := &HeadlessWindow{Pane: NewPane(cfg.Title, w, h, c.cfg.ScaleFactor), owner: c}
	hw.SetFullscreen(cfg.Fullscreen)
	return hw, nil
}

// Add embeds w in the container.
func (c *Headless) Add(w WindowHost) error {
	hw, ok := w.(*HeadlessWindow)
	if !ok || hw.owner != c {
		return ErrForeignWindow
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if slices.Contains(c.windows, hw) {
		return ErrAlreadyAdded
	}
	c.windows = append(c.windows, hw)
	return nil
}

// Remove hides w and takes it out of the container.
func (c *Headless) Remove(w WindowHost) error {
	hw, ok := w.(*HeadlessWindow)
	if !ok || hw.owner != c {
		return ErrForeignWindow
	}
	c.mu.Lock()
	i := slices.Index(c.windows, hw)
	if i >= 0 {
		c.windows = slices.Delete(c.windows, i, i+1)
	}
	c.mu.Unlock()
	if i < 0 {
		return ErrNotAdded
	}
	hw.Hide()
	return nil
}

// Windows returns the added windows in order.
func (c *Headless) Windows() []*HeadlessWindow {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.windows)
}

// ShowMaximized places w over the whole container and shows it.
func (c *Headless) ShowMaximized(w WindowHost) {
	hw, ok := w.(*HeadlessWindow)
	if !ok || hw.owner != c {
		return
	}
	hw.Place(c.Bounds(), true)
}

// Tile lays out every added window in a grid and shows them.
func (c *Headless) Tile() {
	windows := c.Windows()
	tiles := TileLayout(c.Bounds(), len(windows))
	for i, w := range windows {
		w.Place(tiles[i], false)
	}
}

// Close ends Run at the next iteration and sends a close event to every
// window.
func (c *Headless) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mu.Unlock()

	for _, w := range c.Windows() {
		w.Send(Event{Kind: EventClose})
	}
}

func (c *Headless) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Run calls tick at the configured rate until tick returns false, tick
// fails, Close is called, or ctx is done.
func (c *Headless) Run(ctx context.Context, tick TickFunc) error {
	d := time.Second / time.Duration(c.cfg.Hz)
	t := time.NewTicker(d)
	defer t.Stop()

	Logger().Debug("host: headless loop started", "title", c.cfg.Title, "hz", c.cfg.Hz)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-t.C:
			if c.isClosed() {
				return nil
			}
			more, err := tick(now)
			if err != nil {
				return err
			}
			if !more {
				return nil
			}
		}
	}
}

// Input routes a container-level input event to the window under the
// pointer or the focused window. It reports whether a window received it.
func (c *Headless) Input(ev Event) bool {
	windows := c.Windows()
	targets := make([]Target, len(windows))
	for i, w := range windows {
		targets[i] = w
	}
	return c.router.Route(targets, ev)
}

// HeadlessWindow is a window of a Headless container. It also implements
// gpucontext.WindowChrome so callers can exercise maximize, fullscreen and
// close requests. A headless container has no screen, so SetFullscreen only
// records the flag.
type HeadlessWindow struct {
	*Pane
	owner *Headless
}

var (
	_ WindowHost              = (*HeadlessWindow)(nil)
	_ gpucontext.WindowChrome = (*HeadlessWindow)(nil)
)

// Minimize hides the window.
func (w *HeadlessWindow) Minimize() { w.Hide() }

// Maximize toggles between the whole container and the container's tile
// layout.
func (w *HeadlessWindow) Maximize() {
	if w.IsMaximized() {
		w.owner.Tile()
		return
	}
	w.owner.ShowMaximized(w)
}
