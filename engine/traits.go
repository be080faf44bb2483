// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

// Default window dimensions.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Traits is the window configuration shared by every window of a viewer.
// It is read when a window is initialized; later changes affect only windows
// initialized afterwards.
type Traits struct {
	// WindowTitle is the default title for new windows.
	WindowTitle string

	// Width and Height are the initial window size in logical pixels.
	Width  int
	Height int

	// Fullscreen requests a fullscreen host window.
	Fullscreen bool

	// Debug enables the backend's validation and debug layers.
	Debug bool

	// APIDump logs every backend call.
	APIDump bool

	// Samples is the multisample count. Zero or one disables multisampling.
	Samples int
}

// NewTraits returns traits with the default window size.
func NewTraits() *Traits {
	return &Traits{
		WindowTitle: "ggview",
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Samples:     1,
	}
}

// AspectRatio returns Width/Height, or 1 when Height is not positive.
func (t *Traits) AspectRatio() float64 {
	if t.Height <= 0 {
		return 1
	}
	return float64(t.Width) / float64(t.Height)
}

// SampleCount returns the multisample count clamped to at least one.
func (t *Traits) SampleCount() uint32 {
	if t.Samples < 1 {
		return 1
	}
	return uint32(t.Samples)
}
