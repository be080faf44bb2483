// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"fmt"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"

	// Register the HAL implementations (Vulkan, Metal, DX12, GLES).
	_ "github.com/gogpu/wgpu/hal/allbackends"
)

// GPUInfo contains information about the selected GPU.
type GPUInfo struct {
	// Name is the GPU name (e.g., "NVIDIA GeForce RTX 3080").
	Name string
	// Vendor is the GPU vendor.
	Vendor string
	// DeviceType is the type of GPU (discrete, integrated, etc.).
	DeviceType gputypes.DeviceType
	// Backend is the graphics API in use (Vulkan, Metal, DX12).
	Backend gputypes.Backend
	// Driver is the driver version string.
	Driver string
}

// String returns a human-readable description of the GPU.
func (g *GPUInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", g.Name, g.DeviceType, g.Backend)
}

// Config is read from the environment when a device is created.
type Config struct {
	// GraphicsAPI restricts the instance to one graphics API.
	GraphicsAPI string `env:"GOGPU_GRAPHICS_API"`
}

// LoadConfig parses Config from the environment.
func LoadConfig() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("wgpu: parse env: %w", err)
	}
	return c, nil
}

// ParseGraphicsAPI maps a graphics API name to an instance backend mask.
// The empty string selects every backend.
func ParseGraphicsAPI(name string) (wgpu.Backends, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return wgpu.BackendsAll, nil
	case "vulkan", "vk":
		return wgpu.BackendsVulkan, nil
	case "metal":
		return wgpu.BackendsMetal, nil
	case "dx12", "d3d12":
		return wgpu.BackendsDX12, nil
	case "gl", "gles":
		return wgpu.BackendsGL, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownGraphicsAPI, name)
	}
}

// Device owns a wgpu instance, adapter and logical device. It implements
// gpucontext.DeviceProvider so any gogpu library can share it.
//
// Device is safe for concurrent use. Release must be called once the last
// surface and task using it have been released.
type Device struct {
	mu       sync.RWMutex
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	info     wgpu.AdapterInfo
	apiDump  bool
	released bool
}

// deviceOptions configures openDevice.
type deviceOptions struct {
	backends wgpu.Backends
	flags    gputypes.InstanceFlags
	adapter  wgpu.RequestAdapterOptions
	apiDump  bool
}

// openDevice creates the instance, adapter and device in that order and
// unwinds on failure.
func openDevice(opts deviceOptions) (*Device, error) {
	instance, err := wgpu.CreateInstance(&wgpu.InstanceDescriptor{
		Backends: opts.backends,
		Flags:    opts.flags,
	})
	if err != nil {
		return nil, fmt.Errorf("create instance: %w", err)
	}

	adapter, err := instance.RequestAdapter(&opts.adapter)
	if err != nil {
		instance.Release()
		return nil, fmt.Errorf("%w: %w", ErrNoAdapter, err)
	}

	device, err := adapter.RequestDevice(nil)
	if err != nil {
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("%w: %w", ErrDeviceCreationFailed, err)
	}

	d := &Device{
		instance: instance,
		adapter:  adapter,
		device:   device,
		info:     adapter.Info(),
		apiDump:  opts.apiDump,
	}
	d.logGPUInfo()
	return d, nil
}

// Device implements gpucontext.DeviceProvider.
func (d *Device) Device() gpucontext.Device {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.device == nil {
		return nil
	}
	return d.device
}

// Queue implements gpucontext.DeviceProvider.
func (d *Device) Queue() gpucontext.Queue {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.device == nil {
		return nil
	}
	return d.device.Queue()
}

// SurfaceFormat implements gpucontext.DeviceProvider. Offscreen surfaces
// always use RGBA8Unorm.
func (d *Device) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Adapter implements gpucontext.DeviceProvider.
func (d *Device) Adapter() gpucontext.Adapter {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.adapter == nil {
		return nil
	}
	return d.adapter
}

// AdapterInfo implements gpucontext.DeviceProvider.
func (d *Device) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{
		Name: d.info.Name,
		Type: adapterType(d.info.DeviceType),
	}
}

// GPUInfo returns details about the adapter in use.
func (d *Device) GPUInfo() *GPUInfo {
	return &GPUInfo{
		Name:       d.info.Name,
		Vendor:     d.info.Vendor,
		DeviceType: d.info.DeviceType,
		Backend:    d.info.Backend,
		Driver:     d.info.Driver,
	}
}

// raw returns the logical device, or ErrDeviceReleased.
func (d *Device) raw() (*wgpu.Device, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.released {
		return nil, ErrDeviceReleased
	}
	return d.device, nil
}

// trace logs one backend call when API dumping is enabled.
func (d *Device) trace(call string, args ...any) {
	if d.apiDump {
		Logger().Debug("wgpu: "+call, args...)
	}
}

// Release frees the device, the adapter and the instance, in that order.
// Release is idempotent.
func (d *Device) Release() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.released {
		return
	}
	d.released = true
	if d.device != nil {
		d.device.Release()
		d.device = nil
	}
	if d.adapter != nil {
		d.adapter.Release()
		d.adapter = nil
	}
	if d.instance != nil {
		d.instance.Release()
		d.instance = nil
	}
	Logger().Info("wgpu: device released", "adapter", d.info.Name)
}

func (d *Device) logGPUInfo() {
	info := d.GPUInfo()
	Logger().Info("wgpu: GPU", "gpu", info.String())
	if info.Driver != "" {
		Logger().Info("wgpu: driver", "driver", info.Driver)
	}
}

// adapterType maps a WebGPU device type onto the gpucontext adapter type.
func adapterType(t gputypes.DeviceType) gpucontext.AdapterType {
	switch t {
	case gputypes.DeviceTypeDiscreteGPU:
		return gpucontext.AdapterTypeDiscrete
	case gputypes.DeviceTypeIntegratedGPU:
		return gpucontext.AdapterTypeIntegrated
	case gputypes.DeviceTypeCPU:
		return gpucontext.AdapterTypeSoftware
	default:
		return gpucontext.AdapterTypeUnknown
	}
}

var _ gpucontext.DeviceProvider = (*Device)(nil)
