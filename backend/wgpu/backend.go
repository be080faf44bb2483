// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"

	"github.com/gogpu/ggview/backend"
	"github.com/gogpu/ggview/engine"
)

// init registers the hardware and the software-fallback variants.
func init() {
	backend.Register(backend.Wgpu, func() engine.Backend {
		return New()
	})
	backend.Register(backend.WgpuFallback, func() engine.Backend {
		return New(WithFallbackAdapter())
	})
}

// Backend creates wgpu devices, offscreen surfaces and render tasks.
// It implements engine.Backend. A Backend holds no GPU state of its own;
// the device it creates does.
type Backend struct {
	name     string
	fallback bool
	power    gputypes.PowerPreference
	api      string
	apiSet   bool
	clear    gputypes.Color
	light    mgl32.Vec3
}

// Option configures a Backend.
type Option func(*Backend)

// WithFallbackAdapter requests a software adapter.
func WithFallbackAdapter() Option {
	return func(b *Backend) {
		b.fallback = true
		b.name = backend.WgpuFallback
	}
}

// WithPowerPreference sets the adapter power preference. The default is
// high performance.
func WithPowerPreference(p gputypes.PowerPreference) Option {
	return func(b *Backend) { b.power = p }
}

// WithGraphicsAPI restricts the instance to one graphics API, overriding
// GOGPU_GRAPHICS_API.
func WithGraphicsAPI(name string) Option {
	return func(b *Backend) { b.api, b.apiSet = name, true }
}

// WithClearColor sets the background color of every frame.
func WithClearColor(c color.Color) Option {
	return func(b *Backend) {
		r, g, bl, a := c.RGBA()
		b.clear = gputypes.Color{
			R: float64(r) / 0xffff,
			G: float64(g) / 0xffff,
			B: float64(bl) / 0xffff,
			A: float64(a) / 0xffff,
		}
	}
}

// WithLight sets the world-space direction of the headlight used for flat
// shading.
func WithLight(dir mgl32.Vec3) Option {
	return func(b *Backend) { b.light = dir }
}

// New returns a wgpu backend.
func New(opts ...Option) *Backend {
	b := &Backend{
		name:  backend.Wgpu,
		power: gputypes.PowerPreferenceHighPerformance,
		clear: gputypes.Color{R: 0.2, G: 0.2, B: 0.4, A: 1},
		light: mgl32.Vec3{0.3, -1, 0.6},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name implements engine.Backend.
func (b *Backend) Name() string { return b.name }

// CreateDevice implements engine.Backend. Traits.Debug enables the debug
// and validation layers; Traits.APIDump traces every backend call at debug
// level.
func (b *Backend) CreateDevice(traits *engine.Traits) (gpucontext.DeviceProvider, error) {
	if traits == nil {
		traits = engine.NewTraits()
	}
	api := b.api
	if !b.apiSet {
		cfg, err := LoadConfig()
		if err != nil {
			return nil, err
		}
		api = cfg.GraphicsAPI
	}
	backends, err := ParseGraphicsAPI(api)
	if err != nil {
		return nil, err
	}

	opts := deviceOptions{
		backends: backends,
		adapter: wgpu.RequestAdapterOptions{
			PowerPreference:      b.power,
			ForceFallbackAdapter: b.fallback,
		},
		apiDump: traits.APIDump,
	}
	if traits.Debug {
		opts.flags = gputypes.InstanceFlagsDebug | gputypes.InstanceFlagsValidation
	}
	Logger().Debug("wgpu: creating device", "backend", b.name, "api", api, "fallback", b.fallback, "debug", traits.Debug)

	d, err := openDevice(opts)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// CreateSurface implements engine.Backend.
func (b *Backend) CreateSurface(device gpucontext.DeviceProvider, w *engine.Window, extent engine.Extent) (engine.Surface, error) {
	d, ok := device.(*Device)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrForeignDevice, device)
	}
	traits := w.Traits()
	s, err := newSurface(d, w.Title(), extent.Width, extent.Height, traits.SampleCount())
	if err != nil {
		return nil, fmt.Errorf("create surface for %q: %w", w.Title(), err)
	}
	return s, nil
}

// taskConfig carries backend settings into a render task.
type taskConfig struct {
	clear   gputypes.Color
	light   mgl32.Vec3
	samples uint32
}

// NewRenderTask implements engine.Backend.
func (b *Backend) NewRenderTask(device gpucontext.DeviceProvider, w *engine.Window, cam *engine.Camera, scene engine.Node) (engine.Task, error) {
	d, ok := device.(*Device)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrForeignDevice, device)
	}
	traits := w.Traits()
	t, err := newRenderTask(d, w, cam, scene, taskConfig{
		clear:   b.clear,
		light:   b.light,
		samples: traits.SampleCount(),
	})
	if err != nil {
		return nil, fmt.Errorf("render task for %q: %w", w.Title(), err)
	}
	return t, nil
}

var (
	_ engine.Backend = (*Backend)(nil)
	_ engine.Surface = (*Surface)(nil)
	_ engine.Task    = (*RenderTask)(nil)
)
