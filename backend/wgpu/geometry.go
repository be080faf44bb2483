// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/ggview/engine"
)

// vertex is one corner of a flat-shaded triangle in world space.
type vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Color    mgl32.Vec4
}

const (
	// vertexStride is the size of one vertex in the vertex buffer.
	vertexStride = 10 * 4

	// uniformSize is four matrix columns and the light direction.
	uniformSize = 5 * 16
)

// vertexLayout describes vertex for the pipeline.
var vertexLayout = gputypes.VertexBufferLayout{
	ArrayStride: vertexStride,
	StepMode:    gputypes.VertexStepModeVertex,
	Attributes: []gputypes.VertexAttribute{
		{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
		{Format: gputypes.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
		{Format: gputypes.VertexFormatFloat32x4, Offset: 24, ShaderLocation: 2},
	},
}

// flatten expands every geometry under scene into world-space triangles
// with per-face normals. Triangles with an out-of-range index are skipped.
func flatten(scene engine.Node) []vertex {
	var out []vertex
	engine.Walk(scene, func(g *engine.Geometry, world mgl64.Mat4) {
		c := mgl32.Vec4{
			float32(g.Color.R) / 255,
			float32(g.Color.G) / 255,
			float32(g.Color.B) / 255,
			float32(g.Color.A) / 255,
		}
		if g.Color.A == 0 {
			c = mgl32.Vec4{0.8, 0.8, 0.8, 1}
		}
		n := len(g.Positions)
		for i := 0; i+2 < len(g.Indices); i += 3 {
			a, b, cc := g.Indices[i], g.Indices[i+1], g.Indices[i+2]
			if int(a) >= n || int(b) >= n || int(cc) >= n {
				continue
			}
			p0 := transform(world, g.Positions[a])
			p1 := transform(world, g.Positions[b])
			p2 := transform(world, g.Positions[cc])
			normal := faceNormal(p0, p1, p2)
			out = append(out,
				vertex{p0, normal, c},
				vertex{p1, normal, c},
				vertex{p2, normal, c},
			)
		}
	})
	return out
}

func transform(m mgl64.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	w := m.Mul4x1(mgl64.Vec4{float64(p[0]), float64(p[1]), float64(p[2]), 1})
	return mgl32.Vec3{float32(w[0]), float32(w[1]), float32(w[2])}
}

// faceNormal returns the unit normal of a counter-clockwise triangle, or +Z
// for a degenerate one.
func faceNormal(p0, p1, p2 mgl32.Vec3) mgl32.Vec3 {
	n := p1.Sub(p0).Cross(p2.Sub(p0))
	if l := n.Len(); l > 0 {
		return n.Mul(1 / l)
	}
	return mgl32.Vec3{0, 0, 1}
}

// encodeVertices packs vertices little-endian for the vertex buffer.
func encodeVertices(vs []vertex) []byte {
	buf := make([]byte, 0, len(vs)*vertexStride)
	for _, v := range vs {
		buf = appendFloats(buf, v.Position[:]...)
		buf = appendFloats(buf, v.Normal[:]...)
		buf = appendFloats(buf, v.Color[:]...)
	}
	return buf
}

// clipCorrection maps OpenGL clip depth [-w, w] onto WebGPU's [0, w].
var clipCorrection = mgl64.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// encodeUniforms packs the clip-corrected view-projection matrix in column
// order followed by the light direction.
func encodeUniforms(viewProj mgl64.Mat4, light mgl32.Vec3) []byte {
	m := clipCorrection.Mul4(viewProj)
	buf := make([]byte, 0, uniformSize)
	for _, v := range m {
		buf = appendFloats(buf, float32(v))
	}
	return appendFloats(buf, light[0], light[1], light[2], 0)
}

func appendFloats(buf []byte, fs ...float32) []byte {
	for _, f := range fs {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}
	return buf
}
