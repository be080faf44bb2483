package ggview

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/ggview/backend"
	"github.com/gogpu/ggview/engine"
	"github.com/gogpu/ggview/host"
	"github.com/gogpu/ggview/window"
)

// View is one window onto a scene with its own camera and trackball.
type View struct {
	Title     string
	Adapter   *window.Adapter
	Camera    *engine.Camera
	Trackball *engine.Trackball
	Task      engine.Task
}

// Area shows scenes in several views that share one device. Views are
// added in order and never removed; their indices are stable.
//
// AddView, Run and Close are meant to be called from the goroutine that
// runs the host event loop.
type Area struct {
	backend   engine.Backend
	container host.ViewContainer
	traits    *engine.Traits
	viewer    *engine.Viewer
	adapter   []window.AdapterOption
	maxFrames uint64

	slot engine.DeviceSlot

	mu           sync.Mutex
	views        []*View
	closeHandler bool
	closed       bool
}

// NewArea creates an area. Without options it renders on the best
// registered backend into a headless container of the default traits size.
func NewArea(opts ...AreaOption) (*Area, error) {
	var o areaOptions
	for _, opt := range opts {
		opt(&o)
	}

	if o.traits == nil {
		o.traits = engine.NewTraits()
	}
	if o.backend == nil {
		o.backend = backend.Default()
		if o.backend == nil {
			return nil, ErrNoBackend
		}
	}
	if o.viewer == nil {
		o.viewer = engine.NewViewer()
	}
	if o.container == nil {
		c, err := host.NewHeadless(host.HeadlessConfig{
			Title:  o.traits.WindowTitle,
			Width:  o.traits.Width,
			Height: o.traits.Height,
		})
		if err != nil {
			return nil, fmt.Errorf("ggview: default container: %w", err)
		}
		o.container = c
	}

	Logger().Debug("ggview: area created",
		"backend", o.backend.Name(), "container", o.container.Title(),
		"width", o.traits.Width, "height", o.traits.Height)
	return &Area{
		backend:   o.backend,
		container: o.container,
		traits:    o.traits,
		viewer:    o.viewer,
		adapter:   o.adapter,
		maxFrames: o.maxFrames,
	}, nil
}

// AddView creates a view of scene titled title and returns its index.
//
// The first view is shown maximized and creates the shared device; later
// views retile the container and reuse the device. A failure is returned
// unchanged in kind; the window, handlers and layout changes made for the
// view are undone, so the area stays usable.
func (a *Area) AddView(scene engine.Node, title string) (int, error) {
	if scene == nil {
		return -1, ErrNilScene
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return -1, ErrClosed
	}

	h, err := a.container.NewWindow(host.WindowConfig{
		Title:      title,
		Width:      a.traits.Width,
		Height:     a.traits.Height,
		Fullscreen: a.traits.Fullscreen,
	})
	if err != nil {
		return -1, fmt.Errorf("ggview: create window %q: %w", title, err)
	}

	// Each step pushes its inverse; a failure unwinds them newest first.
	var undo []func()
	fail := func(err error) (int, error) {
		for i := len(undo) - 1; i >= 0; i-- {
			undo[i]()
		}
		return -1, err
	}

	adapter := window.NewAdapter(h, a.viewer, a.traits, a.backend, a.adapter...)
	undo = append(undo, func() {
		adapter.Close()
		a.viewer.RemoveWindow(adapter.Window())
	})

	if err := a.container.Add(h); err != nil {
		return fail(fmt.Errorf("ggview: add window %q: %w", title, err))
	}
	undo = append(undo, func() {
		h.OnEvent(nil)
		if err := a.container.Remove(h); err != nil {
			Logger().Warn("ggview: remove window", "title", title, "err", err)
		}
		a.relayout()
	})
	if len(a.views) == 0 {
		a.container.ShowMaximized(h)
	} else {
		a.container.Tile()
	}

	if err := adapter.Initialize(&a.slot); err != nil {
		return fail(fmt.Errorf("ggview: %w", err))
	}
	if !a.closeHandler {
		ch := engine.NewCloseHandler(a.viewer)
		a.viewer.AddEventHandler(ch)
		a.closeHandler = true
		undo = append(undo, func() {
			a.viewer.RemoveEventHandler(ch)
			a.closeHandler = false
		})
	}

	cam := deriveCamera(scene, a.traits)
	trackball, err := engine.NewTrackball(cam, adapter.Window())
	if err != nil {
		return fail(fmt.Errorf("ggview: trackball for %q: %w", title, err))
	}
	trackball.Ellipsoid = engine.EllipsoidModelOf(scene)
	a.viewer.AddEventHandler(trackball)
	undo = append(undo, func() { a.viewer.RemoveEventHandler(trackball) })

	task, err := a.backend.NewRenderTask(a.slot.Device(), adapter.Window(), cam, scene)
	if err != nil {
		return fail(fmt.Errorf("ggview: %w", err))
	}
	a.viewer.AddTask(task)

	a.views = append(a.views, &View{
		Title:     title,
		Adapter:   adapter,
		Camera:    cam,
		Trackball: trackball,
		Task:      task,
	})
	index := len(a.views) - 1
	Logger().Info("ggview: view added", "index", index, "title", title,
		"eye", cam.View.Eye, "center", cam.View.Center)
	return index, nil
}

// relayout restores the layout of the registered views: one view is shown
// maximized, more are tiled.
func (a *Area) relayout() {
	switch len(a.views) {
	case 0:
	case 1:
		a.container.ShowMaximized(a.views[0].Adapter.Host())
	default:
		a.container.Tile()
	}
}

// Views returns the views in index order.
func (a *Area) Views() []*View {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]*View(nil), a.views...)
}

// View returns the view at index, or nil.
func (a *Area) View(index int) *View {
	a.mu.Lock()
	defer a.mu.Unlock()
	if index < 0 || index >= len(a.views) {
		return nil
	}
	return a.views[index]
}

// Device returns the shared device, or nil before the first view.
func (a *Area) Device() gpucontext.DeviceProvider { return a.slot.Device() }

// Viewer returns the viewer that schedules every view.
func (a *Area) Viewer() *engine.Viewer { return a.viewer }

// Traits returns the traits shared by every view.
func (a *Area) Traits() *engine.Traits { return a.traits }

// Container returns the host container.
func (a *Area) Container() host.ViewContainer { return a.container }

// Run drives the container's event loop and ticks the viewer on every
// iteration until the viewer is closed, the frame limit is reached, a
// frame fails or ctx is done.
func (a *Area) Run(ctx context.Context) error {
	a.mu.Lock()
	closed, n := a.closed, len(a.views)
	a.mu.Unlock()
	if closed {
		return ErrClosed
	}
	if n == 0 {
		return ErrNoViews
	}

	Logger().Debug("ggview: running", "views", n,
		"continuous", a.viewer.ContinuousUpdate(), "interval", a.viewer.Interval())
	err := a.container.Run(ctx, func(now time.Time) (bool, error) {
		if !a.viewer.Active() {
			return false, nil
		}
		if _, err := a.viewer.Tick(ctx, now); err != nil {
			return false, err
		}
		if a.maxFrames > 0 && a.viewer.FrameCount() >= a.maxFrames {
			return false, nil
		}
		return a.viewer.Active(), nil
	})
	Logger().Debug("ggview: stopped", "frames", a.viewer.FrameCount(), "err", err)
	return err
}

// Close stops the viewer and releases, in order, the render tasks, the
// window surfaces and the device. It is idempotent.
func (a *Area) Close() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.closed = true
	views := a.views
	a.mu.Unlock()

	a.viewer.Release()
	for i := len(views) - 1; i >= 0; i-- {
		views[i].Adapter.Close()
	}
	if d, ok := a.slot.Take().(engine.Releaser); ok {
		d.Release()
	}
	Logger().Debug("ggview: area closed", "views", len(views))
}
