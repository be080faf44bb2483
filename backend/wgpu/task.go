// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"

	"github.com/gogpu/ggview/engine"
)

// readbackTimeout bounds the wait for the staging buffer to map.
const readbackTimeout = 5 * time.Second

// RenderTask draws one scene for one window and camera each frame, reads
// the result back and presents it to the window.
//
// RenderTask implements engine.Task.
type RenderTask struct {
	mu       sync.Mutex
	device   *Device
	window   *engine.Window
	camera   *engine.Camera
	clear    gputypes.Color
	light    mgl32.Vec3
	samples  uint32
	released bool

	shader      *wgpu.ShaderModule
	bindLayout  *wgpu.BindGroupLayout
	layout      *wgpu.PipelineLayout
	pipeline    *wgpu.RenderPipeline
	uniforms    *wgpu.Buffer
	bindGroup   *wgpu.BindGroup
	vertices    *wgpu.Buffer
	vertexCount uint32
}

func newRenderTask(d *Device, w *engine.Window, cam *engine.Camera, scene engine.Node, cfg taskConfig) (*RenderTask, error) {
	if cam == nil || cam.View == nil || cam.Projection == nil {
		return nil, engine.ErrNilCamera
	}
	if err := checkSceneShader(); err != nil {
		return nil, err
	}
	dev, err := d.raw()
	if err != nil {
		return nil, err
	}

	t := &RenderTask{
		device:  d,
		window:  w,
		camera:  cam,
		clear:   cfg.clear,
		light:   cfg.light,
		samples: cfg.samples,
	}
	if err := t.createPipeline(dev); err != nil {
		t.Release()
		return nil, err
	}
	if err := t.uploadScene(dev, scene); err != nil {
		t.Release()
		return nil, err
	}
	return t, nil
}

func (t *RenderTask) createPipeline(dev *wgpu.Device) error {
	var err error
	label := t.window.Title()
	t.device.trace("create pipeline", "window", label, "samples", t.samples)

	t.shader, err = dev.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "ggview-scene-shader",
		WGSL:  sceneShaderWGSL,
	})
	if err != nil {
		return fmt.Errorf("create shader module: %w", err)
	}

	t.bindLayout, err = dev.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: label + "-uniforms-layout",
		Entries: []wgpu.BindGroupLayoutEntry{{
			Binding:    0,
			Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
			Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
		}},
	})
	if err != nil {
		return fmt.Errorf("create bind group layout: %w", err)
	}

	t.layout, err = dev.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            label + "-layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{t.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}

	t.pipeline, err = dev.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  label + "-pipeline",
		Layout: t.layout,
		Vertex: wgpu.VertexState{
			Module:     t.shader,
			EntryPoint: vertexEntryPoint,
			Buffers:    []wgpu.VertexBufferLayout{vertexLayout},
		},
		Primitive: gputypes.PrimitiveState{
			Topology:  gputypes.PrimitiveTopologyTriangleList,
			FrontFace: gputypes.FrontFaceCCW,
			CullMode:  gputypes.CullModeNone,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            depthFormat,
			DepthWriteEnabled: true,
			DepthCompare:      gputypes.CompareFunctionLess,
			StencilReadMask:   0xFFFFFFFF,
			StencilWriteMask:  0xFFFFFFFF,
		},
		Multisample: gputypes.MultisampleState{
			Count: t.samples,
			Mask:  0xFFFFFFFF,
		},
		Fragment: &wgpu.FragmentState{
			Module:     t.shader,
			EntryPoint: fragmentEntryPoint,
			Targets: []gputypes.ColorTargetState{{
				Format:    colorFormat,
				WriteMask: gputypes.ColorWriteMaskAll,
			}},
		},
	})
	if err != nil {
		return fmt.Errorf("create render pipeline: %w", err)
	}

	t.uniforms, err = dev.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label + "-uniforms",
		Size:  uniformSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create uniform buffer: %w", err)
	}

	t.bindGroup, err = dev.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:   label + "-uniforms",
		Layout:  t.bindLayout,
		Entries: []wgpu.BindGroupEntry{{Binding: 0, Buffer: t.uniforms, Size: uniformSize}},
	})
	if err != nil {
		return fmt.Errorf("create bind group: %w", err)
	}
	return nil
}

// uploadScene writes the flattened scene into a vertex buffer. An empty
// scene draws nothing.
func (t *RenderTask) uploadScene(dev *wgpu.Device, scene engine.Node) error {
	vs := flatten(scene)
	if len(vs) == 0 {
		return nil
	}
	data := encodeVertices(vs)
	var err error
	t.vertices, err = dev.CreateBuffer(&wgpu.BufferDescriptor{
		Label: t.window.Title() + "-vertices",
		Size:  uint64(len(data)),
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create vertex buffer: %w", err)
	}
	if err := dev.Queue().WriteBuffer(t.vertices, 0, data); err != nil {
		return fmt.Errorf("upload vertices: %w", err)
	}
	t.vertexCount = uint32(len(vs))
	t.device.trace("upload scene", "window", t.window.Title(), "vertices", t.vertexCount, "bytes", len(data))
	return nil
}

// VertexCount returns the number of vertices drawn per frame.
func (t *RenderTask) VertexCount() uint32 { return t.vertexCount }

// Run records, submits and reads back one frame, then presents it.
// Hidden windows are skipped.
func (t *RenderTask) Run(ctx context.Context, stamp engine.FrameStamp) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.released || !t.window.Visible() {
		return nil
	}

	s, ok := t.window.Surface().(*Surface)
	if !ok {
		return ErrForeignSurface
	}
	dev, err := t.device.raw()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return nil
	}
	t.device.trace("frame", "window", t.window.Title(), "frame", stamp.Frame, "width", s.width, "height", s.height)

	if err := dev.Queue().WriteBuffer(t.uniforms, 0, encodeUniforms(t.camera.ViewProjection(), t.light)); err != nil {
		return fmt.Errorf("write uniforms: %w", err)
	}
	if err := t.record(dev, s); err != nil {
		return err
	}
	if err := t.readback(ctx, s); err != nil {
		return err
	}
	t.window.Present(s.frame)
	return nil
}

func (t *RenderTask) record(dev *wgpu.Device, s *Surface) error {
	enc, err := dev.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: t.window.Title() + "-frame"})
	if err != nil {
		return fmt.Errorf("create encoder: %w", err)
	}

	pass, err := enc.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label:                  t.window.Title() + "-scene",
		ColorAttachments:       []wgpu.RenderPassColorAttachment{s.colorAttachment(t.clear)},
		DepthStencilAttachment: s.depthAttachment(),
	})
	if err != nil {
		return fmt.Errorf("begin render pass: %w", err)
	}
	if t.vertexCount > 0 {
		pass.SetPipeline(t.pipeline)
		pass.SetBindGroup(0, t.bindGroup, nil)
		pass.SetVertexBuffer(0, t.vertices, 0)
		pass.Draw(t.vertexCount, 1, 0, 0)
	}
	if err := pass.End(); err != nil {
		return fmt.Errorf("end render pass: %w", err)
	}

	s.copyToStaging(enc)

	cmd, err := enc.Finish()
	if err != nil {
		return fmt.Errorf("finish encoder: %w", err)
	}
	if _, err := dev.Queue().Submit(cmd); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	return nil
}

// readback maps the staging buffer and copies it into the surface frame.
func (t *RenderTask) readback(ctx context.Context, s *Surface) error {
	size := uint64(s.bytesPerRow) * uint64(s.height)
	ctx, cancel := context.WithTimeout(ctx, readbackTimeout)
	defer cancel()

	if err := s.staging.Map(ctx, wgpu.MapModeRead, 0, size); err != nil {
		return fmt.Errorf("map staging: %w", err)
	}
	rng, err := s.staging.MappedRange(0, size)
	if err != nil {
		_ = s.staging.Unmap()
		return fmt.Errorf("mapped range: %w", err)
	}
	unpadRows(s.frame.Pix, rng.Bytes(), int(s.width)*bytesPerPixel, int(s.bytesPerRow), int(s.height))
	if err := s.staging.Unmap(); err != nil {
		return fmt.Errorf("unmap: %w", err)
	}
	return nil
}

// Release frees the pipeline and buffers. Release is idempotent.
func (t *RenderTask) Release() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.released {
		return
	}
	t.released = true
	if t.vertices != nil {
		t.vertices.Release()
	}
	if t.bindGroup != nil {
		t.bindGroup.Release()
	}
	if t.uniforms != nil {
		t.uniforms.Release()
	}
	if t.pipeline != nil {
		t.pipeline.Release()
	}
	if t.layout != nil {
		t.layout.Release()
	}
	if t.bindLayout != nil {
		t.bindLayout.Release()
	}
	if t.shader != nil {
		t.shader.Release()
	}
}
