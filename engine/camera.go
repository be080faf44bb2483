// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// LookAt is a view matrix given by eye, centre and up vectors.
type LookAt struct {
	Eye    mgl64.Vec3
	Center mgl64.Vec3
	Up     mgl64.Vec3
}

// Matrix returns the world-to-view matrix.
func (l *LookAt) Matrix() mgl64.Mat4 {
	return mgl64.LookAtV(l.Eye, l.Center, l.Up)
}

// Projection produces a view-to-clip matrix.
type Projection interface {
	Matrix() mgl64.Mat4
}

// Perspective is a symmetric perspective projection. FieldOfViewY is in
// degrees.
type Perspective struct {
	FieldOfViewY float64
	AspectRatio  float64
	NearDistance float64
	FarDistance  float64
}

// Matrix returns the projection matrix.
func (p *Perspective) Matrix() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(p.FieldOfViewY), p.AspectRatio, p.NearDistance, p.FarDistance)
}

// EllipsoidPerspective is a perspective projection whose near and far
// planes follow the eye's altitude above a reference ellipsoid, so the far
// plane reaches just past the horizon.
type EllipsoidPerspective struct {
	LookAt                *LookAt
	Ellipsoid             *EllipsoidModel
	FieldOfViewY          float64
	AspectRatio           float64
	NearFarRatio          float64
	HorizonMountainHeight float64
}

// Distances returns the near and far plane distances for the current eye.
// Altitude is measured against a sphere of the equatorial radius.
func (p *EllipsoidPerspective) Distances() (near, far float64) {
	r := p.Ellipsoid.RadiusEquator
	d := p.LookAt.Eye.Len()

	alpha := 0.0
	if d > r {
		alpha = math.Acos(r / d)
	}
	beta := 0.0
	if ratio := r / (r + p.HorizonMountainHeight); ratio < 1 {
		beta = math.Acos(ratio)
	}
	theta := alpha + beta

	far = math.Sqrt(d*d + r*r - 2*d*r*math.Cos(theta))
	near = far * p.NearFarRatio
	return near, far
}

// Matrix returns the projection matrix.
func (p *EllipsoidPerspective) Matrix() mgl64.Mat4 {
	near, far := p.Distances()
	return mgl64.Perspective(mgl64.DegToRad(p.FieldOfViewY), p.AspectRatio, near, far)
}

// ViewportState is the region of a window a camera renders into.
type ViewportState struct {
	X, Y          int32
	Width, Height uint32
}

// Camera combines a view, a projection and a viewport.
type Camera struct {
	View       *LookAt
	Projection Projection
	Viewport   ViewportState
}

// ViewProjection returns projection × view.
func (c *Camera) ViewProjection() mgl64.Mat4 {
	return c.Projection.Matrix().Mul4(c.View.Matrix())
}
