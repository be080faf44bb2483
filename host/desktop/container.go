// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package desktop

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"slices"
	"sync"
	"time"

	"github.com/gogpu/gpucontext"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gogpu/ggview/host"
)

// Config controls a Container.
type Config struct {
	Title string

	// Width and Height are the initial window size in logical pixels.
	Width  int
	Height int

	Fullscreen bool

	// TPS is the number of updates per second. Zero means 60.
	TPS int
}

var (
	borderColor     = color.RGBA{0x60, 0x60, 0x70, 0xff}
	backgroundColor = color.RGBA{0x10, 0x10, 0x14, 0xff}
)

// Container is a host.ViewContainer backed by one ebiten window.
type Container struct {
	cfg    Config
	input  *input
	router host.Router

	mu        sync.Mutex
	windows   []*Window
	maximized *Window
	width     int
	height    int
	closed    bool
}

var _ host.ViewContainer = (*Container)(nil)

// NewContainer returns a container. The ebiten window opens in Run.
func NewContainer(cfg Config) (*Container, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: container %dx%d", host.ErrInvalidSize, cfg.Width, cfg.Height)
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	c := &Container{cfg: cfg, input: newInput(), width: cfg.Width, height: cfg.Height}
	host.NewBridge(c.input, c.route)
	return c, nil
}

// Title returns the container title.
func (c *Container) Title() string { return c.cfg.Title }

// Bounds returns the drawable area in logical pixels.
func (c *Container) Bounds() image.Rectangle {
	c.mu.Lock()
	defer c.mu.Unlock()
	return image.Rect(0, 0, c.width, c.height)
}

// NewWindow creates a hidden pane. Without an explicit size the pane takes
// the container size.
func (c *Container) NewWindow(cfg host.WindowConfig) (host.WindowHost, error) {
	b := c.Bounds()
	w, h := cfg.Width, cfg.Height
	if w == 0 && h == 0 {
		w, h = b.Dx(), b.Dy()
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: window %q %dx%d", host.ErrInvalidSize, cfg.Title, w, h)
	}
	win := &Window{Pane: host.NewPane(cfg.Title, w, h, ebiten.DeviceScaleFactor()), owner: c}
	win.Pane.SetFullscreen(cfg.Fullscreen)
	return win, nil
}

// Add embeds w in the container.
func (c *Container) Add(w host.WindowHost) error {
	win, ok := w.(*Window)
	if !ok || win.owner != c {
		return host.ErrForeignWindow
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if slices.Contains(c.windows, win) {
		return host.ErrAlreadyAdded
	}
	c.windows = append(c.windows, win)
	return nil
}

// Remove hides w and takes it out of the container.
func (c *Container) Remove(w host.WindowHost) error {
	win, ok := w.(*Window)
	if !ok || win.owner != c {
		return host.ErrForeignWindow
	}
	c.mu.Lock()
	i := slices.Index(c.windows, win)
	if i >= 0 {
		c.windows = slices.Delete(c.windows, i, i+1)
		if c.maximized == win {
			c.maximized = nil
		}
	}
	c.mu.Unlock()
	if i < 0 {
		return host.ErrNotAdded
	}
	win.Hide()
	return nil
}

func (c *Container) list() []*Window {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.windows)
}

// ShowMaximized places w over the whole container and shows it.
func (c *Container) ShowMaximized(w host.WindowHost) {
	win, ok := w.(*Window)
	if !ok || win.owner != c {
		return
	}
	c.mu.Lock()
	c.maximized = win
	c.mu.Unlock()
	win.Place(c.Bounds(), true)
}

// Tile lays out every added pane in a grid and shows them.
func (c *Container) Tile() {
	c.mu.Lock()
	c.maximized = nil
	c.mu.Unlock()

	windows := c.list()
	tiles := host.TileLayout(c.Bounds(), len(windows))
	for i, w := range windows {
		w.Place(tiles[i], false)
	}
}

// relayout reapplies the current layout after the window was resized.
func (c *Container) relayout() {
	c.mu.Lock()
	m := c.maximized
	c.mu.Unlock()
	if m != nil {
		m.Place(c.Bounds(), true)
		return
	}
	c.Tile()
}

// Close ends Run at the next update and sends a close event to every pane.
func (c *Container) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mu.Unlock()

	for _, w := range c.list() {
		w.Send(host.Event{Kind: host.EventClose})
	}
}

func (c *Container) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *Container) route(ev host.Event) {
	windows := c.list()
	targets := make([]host.Target, len(windows))
	for i, w := range windows {
		targets[i] = w
	}
	if !c.router.Route(targets, ev) {
		host.Logger().Debug("desktop: unrouted event", "event", ev)
	}
}

// Run opens the ebiten window and calls tick once per update until tick
// returns false, tick fails, the window is closed, or ctx is done. It must
// be called on the main goroutine.
func (c *Container) Run(ctx context.Context, tick host.TickFunc) error {
	ebiten.SetWindowTitle(c.cfg.Title)
	ebiten.SetWindowSize(c.cfg.Width, c.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetFullscreen(c.cfg.Fullscreen)
	ebiten.SetTPS(c.cfg.TPS)

	host.Logger().Debug("desktop: window opening", "title", c.cfg.Title, "width", c.cfg.Width, "height", c.cfg.Height, "tps", c.cfg.TPS)
	g := &game{c: c, ctx: ctx, tick: tick, images: make(map[*Window]*paneImage)}
	defer g.release()
	if err := ebiten.RunGame(g); err != nil {
		if errors.Is(err, ebiten.Termination) {
			return nil
		}
		return err
	}
	return nil
}

// Window is a pane of a Container. It implements gpucontext.WindowChrome;
// SetFullscreen switches the whole ebiten window.
type Window struct {
	*host.Pane
	owner *Container
}

var (
	_ host.WindowHost         = (*Window)(nil)
	_ gpucontext.WindowChrome = (*Window)(nil)
)

// Minimize hides the pane.
func (w *Window) Minimize() { w.Hide() }

// Maximize toggles between the whole container and the tile layout.
func (w *Window) Maximize() {
	if w.IsMaximized() {
		w.owner.Tile()
		return
	}
	w.owner.ShowMaximized(w)
}

// SetFullscreen switches the ebiten window in or out of fullscreen.
func (w *Window) SetFullscreen(fullscreen bool) {
	w.Pane.SetFullscreen(fullscreen)
	ebiten.SetFullscreen(fullscreen)
}

// paneImage caches the uploaded frame of one pane.
type paneImage struct {
	img *ebiten.Image
	seq int
}

// game adapts the container to ebiten.Game.
type game struct {
	c      *Container
	ctx    context.Context
	tick   host.TickFunc
	images map[*Window]*paneImage
}

func (g *game) Update() error {
	if err := g.ctx.Err(); err != nil {
		return err
	}
	if ebiten.IsWindowBeingClosed() {
		host.Logger().Debug("desktop: window close requested")
		g.c.Close()
	}
	if g.c.isClosed() {
		return ebiten.Termination
	}

	g.c.input.poll()
	more, err := g.tick(time.Now())
	if err != nil {
		return err
	}
	if !more {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.c.mu.Lock()
	top := g.c.maximized
	g.c.mu.Unlock()

	for _, w := range g.c.list() {
		if !w.Visible() || (top != nil && w != top) {
			continue
		}
		g.drawPane(screen, w)
	}
}

func (g *game) drawPane(screen *ebiten.Image, w *Window) {
	r := w.Rect()
	if frame, seq := w.LatestFrame(); frame != nil {
		pi := g.upload(w, frame, seq)
		fw, fh := frame.Rect.Dx(), frame.Rect.Dy()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(r.Dx())/float64(fw), float64(r.Dy())/float64(fh))
		op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
		screen.DrawImage(pi.img, op)
	}
	if w.IsMaximized() || w.IsFrameless() {
		return
	}
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, borderColor, false)
	ebitenutil.DebugPrintAt(screen, w.Title(), r.Min.X+4, r.Min.Y+2)
}

// upload copies a new frame into the pane's ebiten image, reallocating it
// when the frame size changed.
func (g *game) upload(w *Window, frame *image.RGBA, seq int) *paneImage {
	fw, fh := frame.Rect.Dx(), frame.Rect.Dy()
	pi := g.images[w]
	if pi == nil {
		pi = &paneImage{seq: -1}
		g.images[w] = pi
	}
	if pi.img != nil {
		if b := pi.img.Bounds(); b.Dx() != fw || b.Dy() != fh {
			pi.img.Deallocate()
			pi.img = nil
		}
	}
	if pi.img == nil {
		pi.img = ebiten.NewImage(fw, fh)
		pi.seq = -1
	}
	if pi.seq != seq {
		pi.img.WritePixels(frame.Pix)
		pi.seq = seq
	}
	return pi
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	c := g.c
	c.mu.Lock()
	changed := outsideWidth != c.width || outsideHeight != c.height
	c.width, c.height = outsideWidth, outsideHeight
	c.mu.Unlock()

	if changed && outsideWidth > 0 && outsideHeight > 0 {
		host.Logger().Debug("desktop: window resized", "width", outsideWidth, "height", outsideHeight)
		scale := ebiten.DeviceScaleFactor()
		for _, w := range c.list() {
			w.SetScaleFactor(scale)
		}
		c.relayout()
	}
	return outsideWidth, outsideHeight
}

func (g *game) release() {
	for w, pi := range g.images {
		if pi.img != nil {
			pi.img.Deallocate()
		}
		delete(g.images, w)
	}
}
