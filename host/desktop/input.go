// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package desktop

import (
	"github.com/gogpu/gpucontext"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// input is a gpucontext.EventSource fed by polling ebiten once per update.
// Positions are in container logical pixels.
type input struct {
	gpucontext.NullEventSource

	keyPress     func(gpucontext.Key, gpucontext.Modifiers)
	keyRelease   func(gpucontext.Key, gpucontext.Modifiers)
	mouseMove    func(x, y float64)
	mousePress   func(gpucontext.MouseButton, float64, float64)
	mouseRelease func(gpucontext.MouseButton, float64, float64)
	scroll       func(dx, dy float64)
	focus        func(bool)

	keys    []ebiten.Key
	x, y    int
	focused bool
}

var _ gpucontext.EventSource = (*input)(nil)

func newInput() *input {
	return &input{focused: true}
}

func (in *input) OnKeyPress(fn func(gpucontext.Key, gpucontext.Modifiers))   { in.keyPress = fn }
func (in *input) OnKeyRelease(fn func(gpucontext.Key, gpucontext.Modifiers)) { in.keyRelease = fn }
func (in *input) OnMouseMove(fn func(float64, float64))                      { in.mouseMove = fn }
func (in *input) OnScroll(fn func(float64, float64))                         { in.scroll = fn }
func (in *input) OnFocus(fn func(bool))                                      { in.focus = fn }

func (in *input) OnMousePress(fn func(gpucontext.MouseButton, float64, float64)) {
	in.mousePress = fn
}

func (in *input) OnMouseRelease(fn func(gpucontext.MouseButton, float64, float64)) {
	in.mouseRelease = fn
}

// poll reports what changed since the previous update.
func (in *input) poll() {
	if f := ebiten.IsFocused(); f != in.focused {
		in.focused = f
		if in.focus != nil {
			in.focus(f)
		}
	}

	mods := modifiers()
	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		if g := keyOf(k); g != gpucontext.KeyUnknown && in.keyPress != nil {
			in.keyPress(g, mods)
		}
	}
	in.keys = inpututil.AppendJustReleasedKeys(in.keys[:0])
	for _, k := range in.keys {
		if g := keyOf(k); g != gpucontext.KeyUnknown && in.keyRelease != nil {
			in.keyRelease(g, mods)
		}
	}

	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)
	if (x != in.x || y != in.y) && in.mouseMove != nil {
		in.mouseMove(fx, fy)
	}
	in.x, in.y = x, y

	for _, b := range buttonTable {
		if inpututil.IsMouseButtonJustPressed(b.ebiten) && in.mousePress != nil {
			in.mousePress(b.button, fx, fy)
		}
		if inpututil.IsMouseButtonJustReleased(b.ebiten) && in.mouseRelease != nil {
			in.mouseRelease(b.button, fx, fy)
		}
	}

	// ebiten reports positive y for scrolling up.
	if dx, dy := ebiten.Wheel(); (dx != 0 || dy != 0) && in.scroll != nil {
		in.scroll(dx, -dy)
	}
}
