// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Node is an element of a scene graph: a Group, a Transform or a Geometry.
type Node interface {
	isNode()
}

// Group is an interior node. A root group may carry an ellipsoid model to
// mark the scene as geospatial.
type Group struct {
	Name      string
	Children  []Node
	Ellipsoid *EllipsoidModel
}

// Transform places its children with a local-to-parent matrix.
type Transform struct {
	Matrix   mgl64.Mat4
	Children []Node
}

// Geometry is an indexed triangle list.
type Geometry struct {
	Name      string
	Positions []mgl32.Vec3
	Indices   []uint32
	Color     color.RGBA
}

func (*Group) isNode()     {}
func (*Transform) isNode() {}
func (*Geometry) isNode()  {}

// NewGroup returns a group holding children.
func NewGroup(name string, children ...Node) *Group {
	return &Group{Name: name, Children: children}
}

// NewTransform returns a transform with matrix m.
func NewTransform(m mgl64.Mat4, children ...Node) *Transform {
	return &Transform{Matrix: m, Children: children}
}

// TriangleCount returns the number of complete triangles.
func (g *Geometry) TriangleCount() int { return len(g.Indices) / 3 }

// Walk calls fn for every geometry under n with its local-to-world matrix.
func Walk(n Node, fn func(g *Geometry, world mgl64.Mat4)) {
	walk(n, mgl64.Ident4(), fn)
}

func walk(n Node, world mgl64.Mat4, fn func(*Geometry, mgl64.Mat4)) {
	switch n := n.(type) {
	case *Group:
		if n == nil {
			return
		}
		for _, c := range n.Children {
			walk(c, world, fn)
		}
	case *Transform:
		if n == nil {
			return
		}
		m := world.Mul4(n.Matrix)
		for _, c := range n.Children {
			walk(c, m, fn)
		}
	case *Geometry:
		if n == nil {
			return
		}
		fn(n, world)
	}
}

// EllipsoidModel describes a reference ellipsoid in metres.
type EllipsoidModel struct {
	RadiusEquator float64
	RadiusPolar   float64
}

// WGS84 radii.
const (
	WGS84RadiusEquator = 6378137.0
	WGS84RadiusPolar   = 6356752.3142
)

// NewEllipsoidModel returns the WGS84 ellipsoid.
func NewEllipsoidModel() *EllipsoidModel {
	return &EllipsoidModel{RadiusEquator: WGS84RadiusEquator, RadiusPolar: WGS84RadiusPolar}
}

// Altitude returns the height of p above the ellipsoid surface, measured
// along the ray from the ellipsoid centre through p. Points inside the
// ellipsoid have a negative altitude.
func (m *EllipsoidModel) Altitude(p mgl64.Vec3) float64 {
	a, b := m.RadiusEquator, m.RadiusPolar
	n := p.Len()
	if n == 0 || a <= 0 || b <= 0 {
		return -math.Min(a, b)
	}
	d := p.Mul(1 / n)
	r := 1 / math.Sqrt((d[0]*d[0]+d[1]*d[1])/(a*a)+d[2]*d[2]/(b*b))
	return n - r
}

// EllipsoidModelOf returns the ellipsoid model attached to the root of
// scene, or nil for a non-geospatial scene.
func EllipsoidModelOf(scene Node) *EllipsoidModel {
	if g, ok := scene.(*Group); ok && g != nil {
		return g.Ellipsoid
	}
	return nil
}
