// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"fmt"
	"sync"

	"github.com/gogpu/naga"
)

// sceneShaderWGSL draws flat-shaded triangles. The view-projection matrix
// is passed as four columns and applied by hand.
const sceneShaderWGSL = `
struct Uniforms {
    col0: vec4<f32>,
    col1: vec4<f32>,
    col2: vec4<f32>,
    col3: vec4<f32>,
    light: vec4<f32>,
}

@group(0) @binding(0) var<uniform> u: Uniforms;

struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) normal: vec3<f32>,
    @location(1) color: vec4<f32>,
}

@vertex
fn vs_main(
    @location(0) pos: vec3<f32>,
    @location(1) normal: vec3<f32>,
    @location(2) color: vec4<f32>,
) -> VertexOutput {
    var out: VertexOutput;
    out.position = u.col0 * pos.x + u.col1 * pos.y + u.col2 * pos.z + u.col3;
    out.normal = normal;
    out.color = color;
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    let n = normalize(in.normal);
    let l = normalize(u.light.xyz);
    let diffuse = abs(dot(n, l));
    let shade = 0.3 + 0.7 * diffuse;
    return vec4<f32>(in.color.x * shade, in.color.y * shade, in.color.z * shade, in.color.w);
}
`

const (
	vertexEntryPoint   = "vs_main"
	fragmentEntryPoint = "fs_main"
)

// validateShader parses, lowers and validates WGSL source with naga.
func validateShader(source string) error {
	ast, err := naga.Parse(source)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidShader, err)
	}
	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidShader, err)
	}
	verrs, err := naga.Validate(module)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidShader, err)
	}
	if len(verrs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidShader, verrs[0].Error())
	}
	return nil
}

var (
	sceneShaderOnce sync.Once
	sceneShaderErr  error
)

// checkSceneShader validates the scene shader once per process.
func checkSceneShader() error {
	sceneShaderOnce.Do(func() {
		sceneShaderErr = validateShader(sceneShaderWGSL)
	})
	return sceneShaderErr
}
