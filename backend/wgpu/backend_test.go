// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"encoding/binary"
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"

	"github.com/gogpu/ggview/backend"
	"github.com/gogpu/ggview/engine"
)

func TestSceneShaderValidates(t *testing.T) {
	if err := validateShader(sceneShaderWGSL); err != nil {
		t.Fatalf("scene shader: %v", err)
	}
	if err := checkSceneShader(); err != nil {
		t.Fatalf("checkSceneShader: %v", err)
	}
}

func TestInvalidShaderRejected(t *testing.T) {
	err := validateShader("@vertex fn main( -> {")
	if !errors.Is(err, ErrInvalidShader) {
		t.Fatalf("validateShader(garbage) = %v, want ErrInvalidShader", err)
	}
}

func TestRegistered(t *testing.T) {
	for _, name := range []string{backend.Wgpu, backend.WgpuFallback} {
		if !backend.IsRegistered(name) {
			t.Errorf("%q not registered", name)
			continue
		}
		if got := backend.Get(name).Name(); got != name {
			t.Errorf("Get(%q).Name() = %q", name, got)
		}
	}
}

func TestNewOptions(t *testing.T) {
	b := New()
	if b.Name() != backend.Wgpu || b.fallback {
		t.Errorf("New() = %q fallback=%v, want wgpu hardware", b.Name(), b.fallback)
	}
	if b.power != gputypes.PowerPreferenceHighPerformance {
		t.Errorf("default power preference = %v", b.power)
	}

	b = New(WithFallbackAdapter(), WithClearColor(color.RGBA{R: 255, A: 255}), WithGraphicsAPI("vulkan"))
	if b.Name() != backend.WgpuFallback || !b.fallback {
		t.Errorf("fallback backend = %q fallback=%v", b.Name(), b.fallback)
	}
	if b.clear != (gputypes.Color{R: 1, A: 1}) {
		t.Errorf("clear = %+v, want opaque red", b.clear)
	}
	if !b.apiSet || b.api != "vulkan" {
		t.Errorf("api = %q set=%v", b.api, b.apiSet)
	}
}

func TestParseGraphicsAPI(t *testing.T) {
	tests := []struct {
		in      string
		want    wgpu.Backends
		wantErr bool
	}{
		{"", wgpu.BackendsAll, false},
		{"vulkan", wgpu.BackendsVulkan, false},
		{"VK", wgpu.BackendsVulkan, false},
		{"metal", wgpu.BackendsMetal, false},
		{"d3d12", wgpu.BackendsDX12, false},
		{" gles ", wgpu.BackendsGL, false},
		{"glide", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseGraphicsAPI(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseGraphicsAPI(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownGraphicsAPI) {
				t.Errorf("ParseGraphicsAPI(%q) err = %v, want ErrUnknownGraphicsAPI", tt.in, err)
			}
			continue
		}
		if got != tt.want {
			t.Errorf("ParseGraphicsAPI(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("GOGPU_GRAPHICS_API", "metal")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.GraphicsAPI != "metal" {
		t.Errorf("GraphicsAPI = %q, want metal", cfg.GraphicsAPI)
	}
}

func TestCreateDeviceRejectsUnknownAPI(t *testing.T) {
	_, err := New(WithGraphicsAPI("glide")).CreateDevice(engine.NewTraits())
	if !errors.Is(err, ErrUnknownGraphicsAPI) {
		t.Fatalf("CreateDevice = %v, want ErrUnknownGraphicsAPI", err)
	}
}

func TestAdapterType(t *testing.T) {
	tests := []struct {
		in   gputypes.DeviceType
		want gpucontext.AdapterType
	}{
		{gputypes.DeviceTypeDiscreteGPU, gpucontext.AdapterTypeDiscrete},
		{gputypes.DeviceTypeIntegratedGPU, gpucontext.AdapterTypeIntegrated},
		{gputypes.DeviceTypeCPU, gpucontext.AdapterTypeSoftware},
		{gputypes.DeviceTypeVirtualGPU, gpucontext.AdapterTypeUnknown},
		{gputypes.DeviceTypeOther, gpucontext.AdapterTypeUnknown},
	}
	for _, tt := range tests {
		if got := adapterType(tt.in); got != tt.want {
			t.Errorf("adapterType(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// foreignDevice is a device provider from some other backend.
type foreignDevice struct{}

func (foreignDevice) Device() gpucontext.Device             { return nil }
func (foreignDevice) Queue() gpucontext.Queue               { return nil }
func (foreignDevice) SurfaceFormat() gputypes.TextureFormat { return gputypes.TextureFormatUndefined }
func (foreignDevice) Adapter() gpucontext.Adapter           { return nil }
func (foreignDevice) AdapterInfo() gpucontext.AdapterInfo   { return gpucontext.AdapterInfo{} }

func TestForeignDeviceRejected(t *testing.T) {
	b := New()
	w := engine.NewWindow("w", engine.NewTraits())

	if _, err := b.CreateSurface(foreignDevice{}, w, engine.Extent{Width: 8, Height: 8}); !errors.Is(err, ErrForeignDevice) {
		t.Errorf("CreateSurface = %v, want ErrForeignDevice", err)
	}
	if _, err := b.NewRenderTask(foreignDevice{}, w, &engine.Camera{}, nil); !errors.Is(err, ErrForeignDevice) {
		t.Errorf("NewRenderTask = %v, want ErrForeignDevice", err)
	}
}

func TestReleasedDeviceRejected(t *testing.T) {
	d := &Device{}
	d.Release()
	d.Release()

	if _, err := newSurface(d, "w", 4, 4, 1); !errors.Is(err, ErrDeviceReleased) {
		t.Errorf("newSurface on released device = %v, want ErrDeviceReleased", err)
	}
	if d.Device() != nil || d.Queue() != nil || d.Adapter() != nil {
		t.Error("released device still exposes handles")
	}
}

func TestNewSurfaceRejectsEmptyExtent(t *testing.T) {
	if _, err := newSurface(&Device{}, "w", 0, 4, 1); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("newSurface(0x4) = %v, want ErrInvalidDimensions", err)
	}
}

func TestAlignedBytesPerRow(t *testing.T) {
	tests := []struct {
		width uint32
		want  uint32
	}{
		{1, 256},
		{64, 256},
		{65, 512},
		{800, 3328},
		{1024, 4096},
	}
	for _, tt := range tests {
		if got := alignedBytesPerRow(tt.width); got != tt.want {
			t.Errorf("alignedBytesPerRow(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestUnpadRows(t *testing.T) {
	// Two rows of one pixel with a pitch of eight bytes.
	src := []byte{
		1, 2, 3, 4, 0, 0, 0, 0,
		5, 6, 7, 8, 0, 0, 0, 0,
	}
	dst := make([]byte, 8)
	unpadRows(dst, src, 4, 8, 2)
	want := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("unpadRows = %v, want %v", dst, want)
		}
	}
}

func TestFlatten(t *testing.T) {
	tri := &engine.Geometry{
		Positions: []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Indices:   []uint32{0, 1, 2, 0, 1, 9},
		Color:     color.RGBA{R: 255, A: 255},
	}
	scene := engine.NewGroup("root", engine.NewTransform(mgl64.Translate3D(0, 0, 5), tri))

	vs := flatten(scene)
	if len(vs) != 3 {
		t.Fatalf("flatten produced %d vertices, want 3 (out-of-range triangle skipped)", len(vs))
	}
	for i, v := range vs {
		if v.Position.Z() != 5 {
			t.Errorf("vertex %d z = %v, want 5", i, v.Position.Z())
		}
		if v.Normal != (mgl32.Vec3{0, 0, 1}) {
			t.Errorf("vertex %d normal = %v, want +Z", i, v.Normal)
		}
		if v.Color != (mgl32.Vec4{1, 0, 0, 1}) {
			t.Errorf("vertex %d color = %v, want red", i, v.Color)
		}
	}
	if got := len(encodeVertices(vs)); got != 3*vertexStride {
		t.Errorf("encoded %d bytes, want %d", got, 3*vertexStride)
	}
	if got := flatten(engine.NewGroup("empty")); len(got) != 0 {
		t.Errorf("empty scene flattened to %d vertices", len(got))
	}
}

func TestFlattenDefaultColor(t *testing.T) {
	g := &engine.Geometry{
		Positions: []mgl32.Vec3{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}},
		Indices:   []uint32{0, 1, 2},
	}
	vs := flatten(g)
	if len(vs) != 3 {
		t.Fatalf("got %d vertices, want 3", len(vs))
	}
	if vs[0].Color != (mgl32.Vec4{0.8, 0.8, 0.8, 1}) {
		t.Errorf("default color = %v", vs[0].Color)
	}
	if vs[0].Normal != (mgl32.Vec3{0, 0, 1}) {
		t.Errorf("degenerate normal = %v, want +Z", vs[0].Normal)
	}
}

func TestClipCorrectionDepthRange(t *testing.T) {
	proj := clipCorrection.Mul4(mgl64.Perspective(mgl64.DegToRad(30), 1, 1, 10))

	tests := []struct {
		name string
		z    float64
		want float64
	}{
		{"near plane", -1, 0},
		{"far plane", -10, 1},
	}
	for _, tt := range tests {
		clip := proj.Mul4x1(mgl64.Vec4{0, 0, tt.z, 1})
		if got := clip.Z() / clip.W(); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s depth = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestEncodeUniforms(t *testing.T) {
	buf := encodeUniforms(mgl64.Ident4(), mgl32.Vec3{1, 2, 3})
	if len(buf) != uniformSize {
		t.Fatalf("uniforms are %d bytes, want %d", len(buf), uniformSize)
	}
	f := func(i int) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:])) }
	// Column 2 of the corrected identity is (0, 0, 0.5, 0).
	if f(10) != 0.5 || f(11) != 0 {
		t.Errorf("column 2 = (%v, %v, %v, %v)", f(8), f(9), f(10), f(11))
	}
	if f(14) != 0.5 || f(15) != 1 {
		t.Errorf("column 3 = (%v, %v, %v, %v)", f(12), f(13), f(14), f(15))
	}
	if f(16) != 1 || f(17) != 2 || f(18) != 3 || f(19) != 0 {
		t.Errorf("light = (%v, %v, %v, %v)", f(16), f(17), f(18), f(19))
	}
}

func TestGPUInfoString(t *testing.T) {
	d := &Device{info: wgpu.AdapterInfo{Name: "Test GPU", DeviceType: gputypes.DeviceTypeCPU, Backend: gputypes.BackendVulkan}}
	if got := d.AdapterInfo(); got.Name != "Test GPU" || got.Type != gpucontext.AdapterTypeSoftware {
		t.Errorf("AdapterInfo = %+v", got)
	}
	want := "Test GPU (" + gputypes.DeviceTypeCPU.String() + ", " + gputypes.BackendVulkan.String() + ")"
	if got := d.GPUInfo().String(); got != want {
		t.Errorf("GPUInfo = %q, want %q", got, want)
	}
}
