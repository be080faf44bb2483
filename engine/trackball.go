// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/ggview/keymap"
)

// Trackball orbits, pans and zooms a camera from the pointer and keyboard
// events of one window.
//
// Left drag rotates about the look-at centre, middle drag (or Shift + left
// drag) pans, right drag and the wheel zoom. HomeKey restores the view the
// trackball was created with.
//
// With an Ellipsoid set, zoom steps and pan distances follow the eye's
// altitude above the surface instead of its distance to the centre, so
// navigation close to the ground stays controllable.
type Trackball struct {
	RotateFactor    float64
	ZoomFactor      float64
	WheelZoomFactor float64
	HomeKey         keymap.KeySymbol
	Ellipsoid       *EllipsoidModel

	camera  *Camera
	window  *Window
	home    LookAt
	buttons gpucontext.Buttons
	prev    mgl64.Vec2
	hasPrev bool
}

// NewTrackball binds a trackball to cam and w.
func NewTrackball(cam *Camera, w *Window) (*Trackball, error) {
	if cam == nil || cam.View == nil {
		return nil, ErrNilCamera
	}
	return &Trackball{
		RotateFactor:    1,
		ZoomFactor:      1,
		WheelZoomFactor: 0.1,
		HomeKey:         keymap.KeySpace,
		camera:          cam,
		window:          w,
		home:            *cam.View,
	}, nil
}

// Camera returns the controlled camera.
func (t *Trackball) Camera() *Camera { return t.camera }

// Handle implements Handler. Events for other windows are ignored.
func (t *Trackball) Handle(ev Event) {
	if ev.Target() != t.window {
		return
	}

	switch e := ev.(type) {
	case ButtonPressEvent:
		t.buttons = e.Buttons
		t.prev, t.hasPrev = t.ndc(e.X, e.Y), true
	case ButtonReleaseEvent:
		t.buttons = e.Buttons
		t.prev, t.hasPrev = t.ndc(e.X, e.Y), true
	case MoveEvent:
		cur := t.ndc(e.X, e.Y)
		if t.hasPrev {
			t.drag(cur.Sub(t.prev), e.Mask)
		}
		t.prev, t.hasPrev = cur, true
	case ScrollWheelEvent:
		t.Zoom(float64(e.DY) * t.WheelZoomFactor)
	case KeyPressEvent:
		if e.Key == t.HomeKey {
			t.Home()
		}
	}
}

func (t *Trackball) drag(d mgl64.Vec2, mask keymap.ModifierMask) {
	if d.X() == 0 && d.Y() == 0 {
		return
	}
	left := t.buttons&gpucontext.ButtonsLeft != 0
	middle := t.buttons&gpucontext.ButtonsMiddle != 0
	right := t.buttons&gpucontext.ButtonsRight != 0

	switch {
	case middle || (left && mask.Has(keymap.ModShift)):
		t.Pan(d.X(), d.Y())
	case left:
		l := t.camera.View
		look := l.Center.Sub(l.Eye)
		side := look.Cross(l.Up)
		t.Rotate(-d.X()*math.Pi/2*t.RotateFactor, l.Up)
		t.Rotate(d.Y()*math.Pi/2*t.RotateFactor, side)
	case right:
		t.Zoom(d.Y() * t.ZoomFactor)
	}
}

// Rotate turns the eye and up vector by angle radians about axis through
// the look-at centre.
func (t *Trackball) Rotate(angle float64, axis mgl64.Vec3) {
	if angle == 0 || axis.Len() == 0 {
		return
	}
	q := mgl64.QuatRotate(angle, axis.Normalize())
	l := t.camera.View
	l.Eye = l.Center.Add(q.Rotate(l.Eye.Sub(l.Center)))
	l.Up = q.Rotate(l.Up)
}

// Zoom moves the eye toward the centre by ratio of the current distance,
// or of the altitude when an ellipsoid is set. Negative ratios move away.
// The eye never passes the centre or drops below the surface.
func (t *Trackball) Zoom(ratio float64) {
	l := t.camera.View
	scale := math.Max(1-ratio, 0.01)
	offset := l.Eye.Sub(l.Center)
	dist := offset.Len()
	if alt, ok := t.altitude(); ok && dist > 0 && alt < dist {
		step := math.Min(alt*(1-scale), dist*(1-0.01))
		l.Eye = l.Eye.Sub(offset.Mul(step / dist))
		return
	}
	l.Eye = l.Center.Add(offset.Mul(scale))
}

// Pan shifts eye and centre in the view plane. dx and dy are in normalized
// window units.
func (t *Trackball) Pan(dx, dy float64) {
	l := t.camera.View
	look := l.Center.Sub(l.Eye)
	dist := look.Len()
	side := look.Cross(l.Up)
	if dist == 0 || side.Len() == 0 {
		return
	}
	if alt, ok := t.altitude(); ok && alt < dist {
		dist = alt
	}
	side = side.Normalize()
	up := side.Cross(look).Normalize()
	offset := side.Mul(-dx * dist * 0.5).Add(up.Mul(-dy * dist * 0.5))
	l.Eye = l.Eye.Add(offset)
	l.Center = l.Center.Add(offset)
}

// altitude returns the eye height above the ellipsoid. It reports false
// without an ellipsoid or when the eye is not above the surface.
func (t *Trackball) altitude() (float64, bool) {
	if t.Ellipsoid == nil {
		return 0, false
	}
	alt := t.Ellipsoid.Altitude(t.camera.View.Eye)
	return alt, alt > 0
}

// Home restores the initial view.
func (t *Trackball) Home() {
	*t.camera.View = t.home
}

// ndc converts a device-pixel position into [-1, 1] window coordinates
// with y up.
func (t *Trackball) ndc(x, y int32) mgl64.Vec2 {
	ext := t.window.Extent()
	if ext.Width == 0 || ext.Height == 0 {
		return mgl64.Vec2{}
	}
	return mgl64.Vec2{
		2*float64(x)/float64(ext.Width) - 1,
		1 - 2*float64(y)/float64(ext.Height),
	}
}
