// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

import (
	"fmt"
	"math"
	"sync"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/ggview/engine"
	"github.com/gogpu/ggview/host"
	"github.com/gogpu/ggview/keymap"
)

type state uint8

const (
	stateNew state = iota
	stateInitialized
	stateClosed
)

// Adapter connects one host window to the engine. It owns the host window
// and the engine window; the viewer, traits and backend are shared with the
// other adapters of an area.
type Adapter struct {
	host    host.WindowHost
	viewer  *engine.Viewer
	traits  *engine.Traits
	backend engine.Backend
	window  *engine.Window
	opts    adapterOptions

	keys keymap.Translator

	mu      sync.Mutex
	state   state
	buttons gpucontext.Buttons
}

// NewAdapter creates an adapter for h. The engine window takes its title
// from h and its initial size from traits. The adapter starts listening to
// h immediately; events are queued on v.
func NewAdapter(h host.WindowHost, v *engine.Viewer, traits *engine.Traits, b engine.Backend, opts ...AdapterOption) *Adapter {
	o := defaultAdapterOptions()
	for _, opt := range opts {
		opt(&o)
	}

	a := &Adapter{
		host:    h,
		viewer:  v,
		traits:  traits,
		backend: b,
		window:  engine.NewWindow(h.Title(), traits),
		opts:    o,
	}
	a.window.SetPresenter(h)
	v.AddWindow(a.window)
	h.OnEvent(a.Handle)
	return a
}

// Window returns the engine window. The adapter keeps ownership.
func (a *Adapter) Window() *engine.Window { return a.window }

// Host returns the host window.
func (a *Adapter) Host() host.WindowHost { return a.host }

// ScaleFactor returns the device pixel ratio used for conversions.
func (a *Adapter) ScaleFactor() float64 {
	if a.opts.scale > 0 {
		return a.opts.scale
	}
	if r := a.host.ScaleFactor(); r > 0 {
		return r
	}
	return 1
}

// Extent returns the host window size in device pixels.
func (a *Adapter) Extent() engine.Extent {
	w, h := a.host.Size()
	r := a.ScaleFactor()
	return engine.Extent{Width: convertSize(w, r), Height: convertSize(h, r)}
}

// Initialize takes the rendering device from slot, creating it with the
// backend if the slot is empty, and creates the window surface. It may be
// called once; later calls return ErrAlreadyInitialized.
func (a *Adapter) Initialize(slot *engine.DeviceSlot) error {
	if slot == nil {
		return ErrNilSlot
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	switch a.state {
	case stateInitialized:
		return ErrAlreadyInitialized
	case stateClosed:
		return ErrClosed
	}

	title := a.window.Title()
	device, created, err := slot.Acquire(func() (gpucontext.DeviceProvider, error) {
		return a.backend.CreateDevice(a.traits)
	})
	if err != nil {
		return fmt.Errorf("window %q: %w", title, err)
	}
	if created {
		info := device.AdapterInfo()
		Logger().Info("window: device created",
			"window", title, "backend", a.backend.Name(), "adapter", info.Name, "type", info.Type)
	} else {
		Logger().Debug("window: sharing device", "window", title)
	}

	ext := a.Extent()
	surface, err := a.backend.CreateSurface(device, a.window, ext)
	if err != nil {
		return fmt.Errorf("window %q: create surface: %w", title, err)
	}
	a.window.Attach(device, surface, ext)

	// Hosts that implement gpucontext.WindowChrome satisfy this.
	if fs, ok := a.host.(interface{ SetFullscreen(bool) }); ok && a.traits.Fullscreen {
		fs.SetFullscreen(true)
	}

	a.state = stateInitialized
	Logger().Debug("window: initialized", "window", title, "width", ext.Width, "height", ext.Height)
	return nil
}

// Initialized reports whether Initialize succeeded.
func (a *Adapter) Initialized() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state == stateInitialized
}

// Handle converts a host event into one engine event on the viewer queue.
// It is registered with the host by NewAdapter.
func (a *Adapter) Handle(ev host.Event) {
	r := a.ScaleFactor()
	base := engine.WindowEvent{Window: a.window, Time: ev.Time}

	switch ev.Kind {
	case host.EventExpose:
		a.viewer.Push(engine.ExposeWindowEvent{
			WindowEvent: base,
			X:           convertCoord(ev.X, r),
			Y:           convertCoord(ev.Y, r),
			Width:       convertSize(ev.Width, r),
			Height:      convertSize(ev.Height, r),
		})
	case host.EventHide:
		a.viewer.Push(engine.UnmapWindowEvent{WindowEvent: base})
	case host.EventResize:
		a.viewer.Push(engine.ConfigureWindowEvent{
			WindowEvent: base,
			Width:       convertSize(ev.Width, r),
			Height:      convertSize(ev.Height, r),
		})
	case host.EventKeyPress:
		a.viewer.Push(engine.KeyPressEvent{KeyEvent: a.keyEvent(base, ev)})
	case host.EventKeyRelease:
		a.viewer.Push(engine.KeyReleaseEvent{KeyEvent: a.keyEvent(base, ev)})
	case host.EventMouseMove:
		a.viewer.Push(engine.MoveEvent{PointerEvent: a.pointerEvent(base, ev, r)})
	case host.EventMousePress:
		button := convertButton(ev.Button)
		a.setButton(button, true)
		a.viewer.Push(engine.ButtonPressEvent{PointerEvent: a.pointerEvent(base, ev, r), Button: button})
	case host.EventMouseRelease:
		button := convertButton(ev.Button)
		a.setButton(button, false)
		a.viewer.Push(engine.ButtonReleaseEvent{PointerEvent: a.pointerEvent(base, ev, r), Button: button})
	case host.EventWheel:
		dx, dy := a.wheelLines(ev)
		a.viewer.Push(engine.ScrollWheelEvent{
			WindowEvent: base,
			DX:          float32(dx),
			DY:          float32(-dy),
			Mask:        keymap.Mask(ev.Modifiers),
		})
	case host.EventClose:
		a.viewer.Push(engine.CloseWindowEvent{WindowEvent: base})
	default:
		Logger().Debug("window: ignoring event", "window", a.window.Title(), "event", ev.String())
	}
}

func (a *Adapter) keyEvent(base engine.WindowEvent, ev host.Event) engine.KeyEvent {
	sym, modified, mask := a.keys.Translate(ev.Key, ev.Modifiers, ev.Text)
	return engine.KeyEvent{
		WindowEvent: base,
		Key:         sym,
		Modified:    modified,
		Mask:        mask,
		Repeat:      ev.Repeat,
	}
}

func (a *Adapter) pointerEvent(base engine.WindowEvent, ev host.Event, r float64) engine.PointerEvent {
	a.mu.Lock()
	buttons := a.buttons
	a.mu.Unlock()
	return engine.PointerEvent{
		WindowEvent: base,
		X:           convertCoord(ev.X, r),
		Y:           convertCoord(ev.Y, r),
		Buttons:     buttons,
		Mask:        keymap.Mask(ev.Modifiers),
	}
}

func (a *Adapter) setButton(b gpucontext.Button, down bool) {
	bit := buttonBit(b)
	a.mu.Lock()
	defer a.mu.Unlock()
	if down {
		a.buttons |= bit
	} else {
		a.buttons &^= bit
	}
}

// wheelLines returns the host wheel deltas in lines.
func (a *Adapter) wheelLines(ev host.Event) (dx, dy float64) {
	if ev.DeltaMode == gpucontext.ScrollDeltaPixel {
		return ev.DeltaX / a.opts.wheelNotch, ev.DeltaY / a.opts.wheelNotch
	}
	return ev.DeltaX, ev.DeltaY
}

// Close releases the window surface. It is idempotent. The viewer keeps
// the engine window registered.
func (a *Adapter) Close() {
	a.mu.Lock()
	if a.state == stateClosed {
		a.mu.Unlock()
		return
	}
	a.state = stateClosed
	a.mu.Unlock()

	a.host.OnEvent(nil)
	a.window.Detach()
	Logger().Debug("window: closed", "window", a.window.Title())
}

// convertCoord scales a logical coordinate to device pixels, rounding half
// away from zero.
func convertCoord(c, ratio float64) int32 {
	return int32(math.Round(c * ratio))
}

// convertSize scales a logical size to device pixels. Negative sizes
// become zero.
func convertSize(n int, ratio float64) uint32 {
	return uint32(max(convertCoord(float64(n), ratio), 0))
}

// convertButton maps a host mouse button to a pointer button.
func convertButton(b gpucontext.MouseButton) gpucontext.Button {
	switch b {
	case gpucontext.MouseButtonLeft:
		return gpucontext.ButtonLeft
	case gpucontext.MouseButtonMiddle:
		return gpucontext.ButtonMiddle
	case gpucontext.MouseButtonRight:
		return gpucontext.ButtonRight
	case gpucontext.MouseButton4:
		return gpucontext.ButtonX1
	case gpucontext.MouseButton5:
		return gpucontext.ButtonX2
	default:
		return gpucontext.ButtonNone
	}
}

func buttonBit(b gpucontext.Button) gpucontext.Buttons {
	switch b {
	case gpucontext.ButtonLeft:
		return gpucontext.ButtonsLeft
	case gpucontext.ButtonMiddle:
		return gpucontext.ButtonsMiddle
	case gpucontext.ButtonRight:
		return gpucontext.ButtonsRight
	case gpucontext.ButtonX1:
		return gpucontext.ButtonsX1
	case gpucontext.ButtonX2:
		return gpucontext.ButtonsX2
	default:
		return gpucontext.ButtonsNone
	}
}
