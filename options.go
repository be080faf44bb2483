package ggview

import (
	"github.com/gogpu/ggview/engine"
	"github.com/gogpu/ggview/host"
	"github.com/gogpu/ggview/window"
)

// AreaOption configures an Area during creation.
//
// Example:
//
//	// Headless area on the best registered backend
//	area, err := ggview.NewArea()
//
//	// Desktop area with custom traits
//	area, err := ggview.NewArea(
//	    ggview.WithContainer(container),
//	    ggview.WithTraits(traits),
//	)
type AreaOption func(*areaOptions)

type areaOptions struct {
	backend   engine.Backend
	container host.ViewContainer
	traits    *engine.Traits
	viewer    *engine.Viewer
	adapter   []window.AdapterOption
	maxFrames uint64
}

// WithBackend sets the rendering backend. The default is backend.Default().
func WithBackend(b engine.Backend) AreaOption {
	return func(o *areaOptions) {
		o.backend = b
	}
}

// WithContainer sets the host container. The default is a headless
// container of the traits size.
func WithContainer(c host.ViewContainer) AreaOption {
	return func(o *areaOptions) {
		o.container = c
	}
}

// WithTraits sets the traits shared by every view. The area keeps the
// pointer; changes affect views added afterwards.
func WithTraits(t *engine.Traits) AreaOption {
	return func(o *areaOptions) {
		o.traits = t
	}
}

// WithViewer sets the viewer that schedules every view. Use it to configure
// pacing before the area is built.
func WithViewer(v *engine.Viewer) AreaOption {
	return func(o *areaOptions) {
		o.viewer = v
	}
}

// WithAdapterOptions passes options to every window adapter.
func WithAdapterOptions(opts ...window.AdapterOption) AreaOption {
	return func(o *areaOptions) {
		o.adapter = append(o.adapter, opts...)
	}
}

// WithMaxFrames makes Run return after n frames. Zero means no limit.
func WithMaxFrames(n uint64) AreaOption {
	return func(o *areaOptions) {
		o.maxFrames = n
	}
}
