// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"fmt"
	"image"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"
)

const (
	colorFormat = gputypes.TextureFormatRGBA8Unorm
	depthFormat = gputypes.TextureFormatDepth24Plus

	bytesPerPixel = 4

	// copyRowAlignment is the required BytesPerRow alignment of
	// texture-to-buffer copies.
	copyRowAlignment = 256
)

// Surface is the offscreen render target of one window: a color texture,
// a depth texture, an optional multisampled color texture that resolves
// into the color texture, and a staging buffer for readback.
//
// Surface implements engine.Surface.
type Surface struct {
	mu      sync.Mutex
	device  *Device
	label   string
	samples uint32

	width, height uint32
	bytesPerRow   uint32

	color     *wgpu.Texture
	colorView *wgpu.TextureView
	msaa      *wgpu.Texture
	msaaView  *wgpu.TextureView
	depth     *wgpu.Texture
	depthView *wgpu.TextureView
	staging   *wgpu.Buffer
	frame     *image.RGBA

	released bool
}

// newSurface allocates a surface of width×height device pixels.
func newSurface(d *Device, label string, width, height, samples uint32) (*Surface, error) {
	if samples < 1 {
		samples = 1
	}
	s := &Surface{device: d, label: label, samples: samples}
	if err := s.allocate(width, height); err != nil {
		return nil, err
	}
	return s, nil
}

// Size returns the current extent in device pixels.
func (s *Surface) Size() (width, height uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// Samples returns the multisample count.
func (s *Surface) Samples() uint32 { return s.samples }

// Resize reallocates every target at the new extent.
func (s *Surface) Resize(width, height uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return ErrDeviceReleased
	}
	if width == s.width && height == s.height {
		return nil
	}
	s.freeLocked()
	return s.allocateLocked(width, height)
}

// Release frees every target. Release is idempotent.
func (s *Surface) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return
	}
	s.released = true
	s.freeLocked()
}

func (s *Surface) allocate(width, height uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allocateLocked(width, height)
}

func (s *Surface) allocateLocked(width, height uint32) error {
	if width == 0 || height == 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	dev, err := s.device.raw()
	if err != nil {
		return err
	}
	s.device.trace("allocate surface", "label", s.label, "width", width, "height", height, "samples", s.samples)

	size := wgpu.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1}

	s.color, err = dev.CreateTexture(&wgpu.TextureDescriptor{
		Label:         s.label + "-color",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        colorFormat,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return fmt.Errorf("create color texture: %w", err)
	}
	if s.colorView, err = dev.CreateTextureView(s.color, nil); err != nil {
		s.freeLocked()
		return fmt.Errorf("create color view: %w", err)
	}

	if s.samples > 1 {
		s.msaa, err = dev.CreateTexture(&wgpu.TextureDescriptor{
			Label:         s.label + "-msaa",
			Size:          size,
			MipLevelCount: 1,
			SampleCount:   s.samples,
			Dimension:     gputypes.TextureDimension2D,
			Format:        colorFormat,
			Usage:         gputypes.TextureUsageRenderAttachment,
		})
		if err != nil {
			s.freeLocked()
			return fmt.Errorf("create msaa texture: %w", err)
		}
		if s.msaaView, err = dev.CreateTextureView(s.msaa, nil); err != nil {
			s.freeLocked()
			return fmt.Errorf("create msaa view: %w", err)
		}
	}

	s.depth, err = dev.CreateTexture(&wgpu.TextureDescriptor{
		Label:         s.label + "-depth",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   s.samples,
		Dimension:     gputypes.TextureDimension2D,
		Format:        depthFormat,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		s.freeLocked()
		return fmt.Errorf("create depth texture: %w", err)
	}
	if s.depthView, err = dev.CreateTextureView(s.depth, nil); err != nil {
		s.freeLocked()
		return fmt.Errorf("create depth view: %w", err)
	}

	s.bytesPerRow = alignedBytesPerRow(width)
	s.staging, err = dev.CreateBuffer(&wgpu.BufferDescriptor{
		Label: s.label + "-staging",
		Size:  uint64(s.bytesPerRow) * uint64(height),
		Usage: wgpu.BufferUsageCopyDst | wgpu.BufferUsageMapRead,
	})
	if err != nil {
		s.freeLocked()
		return fmt.Errorf("create staging buffer: %w", err)
	}

	s.width, s.height = width, height
	s.frame = image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	return nil
}

func (s *Surface) freeLocked() {
	if s.staging != nil {
		s.staging.Release()
		s.staging = nil
	}
	for _, v := range []**wgpu.TextureView{&s.depthView, &s.msaaView, &s.colorView} {
		if *v != nil {
			(*v).Release()
			*v = nil
		}
	}
	for _, t := range []**wgpu.Texture{&s.depth, &s.msaa, &s.color} {
		if *t != nil {
			(*t).Release()
			*t = nil
		}
	}
}

// colorAttachment returns the attachment a render pass draws into,
// resolving into the color texture when multisampled.
func (s *Surface) colorAttachment(clear gputypes.Color) wgpu.RenderPassColorAttachment {
	a := wgpu.RenderPassColorAttachment{
		View:       s.colorView,
		LoadOp:     gputypes.LoadOpClear,
		StoreOp:    gputypes.StoreOpStore,
		ClearValue: clear,
	}
	if s.msaaView != nil {
		a.View = s.msaaView
		a.ResolveTarget = s.colorView
	}
	return a
}

func (s *Surface) depthAttachment() *wgpu.RenderPassDepthStencilAttachment {
	return &wgpu.RenderPassDepthStencilAttachment{
		View:            s.depthView,
		DepthLoadOp:     gputypes.LoadOpClear,
		DepthStoreOp:    gputypes.StoreOpDiscard,
		DepthClearValue: 1,
	}
}

// copyToStaging records the color-to-staging copy.
func (s *Surface) copyToStaging(enc *wgpu.CommandEncoder) {
	enc.CopyTextureToBuffer(s.color, s.staging, []wgpu.BufferTextureCopy{{
		BufferLayout: wgpu.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  s.bytesPerRow,
			RowsPerImage: s.height,
		},
		TextureBase: wgpu.ImageCopyTexture{Texture: s.color},
		Size:        wgpu.Extent3D{Width: s.width, Height: s.height, DepthOrArrayLayers: 1},
	}})
}

// alignedBytesPerRow returns the padded row pitch of a width-pixel row.
func alignedBytesPerRow(width uint32) uint32 {
	return align(width*bytesPerPixel, copyRowAlignment)
}

func align(n, a uint32) uint32 {
	return (n + a - 1) / a * a
}

// unpadRows copies height rows of rowBytes each from src, whose rows are
// pitch bytes apart, into dst.
func unpadRows(dst, src []byte, rowBytes, pitch, height int) {
	for y := 0; y < height; y++ {
		copy(dst[y*rowBytes:(y+1)*rowBytes], src[y*pitch:y*pitch+rowBytes])
	}
}
