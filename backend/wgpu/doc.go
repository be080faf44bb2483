// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package wgpu implements engine.Backend on gogpu/wgpu, the Pure Go WebGPU
// implementation (Vulkan, Metal, DX12 or GLES depending on the platform).
//
// # Device
//
// CreateDevice opens an instance, an adapter and a logical device and wraps
// them in a *Device, which satisfies gpucontext.DeviceProvider. A viewer
// creates the device once and shares it between every window:
//
//	b := wgpu.New()
//	dev, err := b.CreateDevice(traits)
//	defer dev.(*wgpu.Device).Release()
//
// # Rendering
//
// Each window renders into an offscreen Surface (RGBA8 color, Depth24Plus
// depth, optional multisampling). The render task draws the scene
// flat-shaded, copies the color target into a staging buffer and hands the
// frame to the window's presenter as an *image.RGBA.
//
// The WGSL shader is validated with gogpu/naga before the pipeline is built.
//
// # Registration
//
// Importing the package registers two backends with package backend,
// "wgpu" for the best hardware adapter and "wgpu-fallback" for a software
// adapter (ForceFallbackAdapter):
//
//	import _ "github.com/gogpu/ggview/backend/wgpu"
//
// GOGPU_GRAPHICS_API (vulkan, metal, dx12, gl) restricts the graphics API.
package wgpu
