// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Box is an axis-aligned bounding box. The zero value is an invalid
// (empty) box.
type Box struct {
	Min, Max mgl64.Vec3
	valid    bool
}

// NewBox returns a valid box spanning lo and hi.
func NewBox(lo, hi mgl64.Vec3) Box {
	return Box{Min: lo, Max: hi, valid: true}
}

// Valid reports whether the box contains at least one point.
func (b Box) Valid() bool { return b.valid }

// Extend grows b to include p.
func (b *Box) Extend(p mgl64.Vec3) {
	if !b.valid {
		b.Min, b.Max, b.valid = p, p, true
		return
	}
	for i := 0; i < 3; i++ {
		b.Min[i] = math.Min(b.Min[i], p[i])
		b.Max[i] = math.Max(b.Max[i], p[i])
	}
}

// Center returns the midpoint of the box, or the origin for an invalid box.
func (b Box) Center() mgl64.Vec3 {
	if !b.valid {
		return mgl64.Vec3{}
	}
	return b.Min.Add(b.Max).Mul(0.5)
}

// Diagonal returns the length of the box diagonal, or 0 for an invalid box.
func (b Box) Diagonal() float64 {
	if !b.valid {
		return 0
	}
	return b.Max.Sub(b.Min).Len()
}

// ComputeBounds returns the world-space bounds of every vertex referenced
// by a geometry under scene.
func ComputeBounds(scene Node) Box {
	var b Box
	Walk(scene, func(g *Geometry, world mgl64.Mat4) {
		for _, idx := range g.Indices {
			if int(idx) >= len(g.Positions) {
				continue
			}
			p := g.Positions[idx]
			w := world.Mul4x1(mgl64.Vec4{float64(p[0]), float64(p[1]), float64(p[2]), 1})
			b.Extend(w.Vec3())
		}
	})
	return b
}
