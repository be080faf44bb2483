package cli

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/ggview"
	"github.com/gogpu/ggview/backend"
	"github.com/gogpu/ggview/engine"
)

const testBackend = "cli-test"

type testDevice struct{}

func (d *testDevice) Device() gpucontext.Device             { return d }
func (d *testDevice) Queue() gpucontext.Queue               { return d }
func (d *testDevice) Adapter() gpucontext.Adapter           { return nil }
func (d *testDevice) SurfaceFormat() gputypes.TextureFormat { return gputypes.TextureFormatRGBA8Unorm }
func (d *testDevice) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Name: "test", Type: gpucontext.AdapterTypeSoftware}
}

type testSurface struct{}

func (testSurface) Resize(uint32, uint32) error { return nil }
func (testSurface) Release()                    {}

// testTask presents a solid frame every run.
type testTask struct{ w *engine.Window }

func (t *testTask) Run(context.Context, engine.FrameStamp) error {
	frame := image.NewRGBA(image.Rect(0, 0, 8, 6))
	for i := 0; i < len(frame.Pix); i += 4 {
		copy(frame.Pix[i:], []byte{0x20, 0x40, 0x80, 0xff})
	}
	t.w.Present(frame)
	return nil
}
func (t *testTask) Release() {}

type testBackendImpl struct{ devices *int }

func (b testBackendImpl) Name() string { return testBackend }

func (b testBackendImpl) CreateDevice(*engine.Traits) (gpucontext.DeviceProvider, error) {
	*b.devices++
	return &testDevice{}, nil
}

func (b testBackendImpl) CreateSurface(gpucontext.DeviceProvider, *engine.Window, engine.Extent) (engine.Surface, error) {
	return testSurface{}, nil
}

func (b testBackendImpl) NewRenderTask(_ gpucontext.DeviceProvider, w *engine.Window, _ *engine.Camera, _ engine.Node) (engine.Task, error) {
	return &testTask{w: w}, nil
}

// registerTestBackend registers a backend that needs no GPU and returns a
// pointer to its device count.
func registerTestBackend(t *testing.T) *int {
	t.Helper()
	devices := new(int)
	backend.Register(testBackend, func() engine.Backend { return testBackendImpl{devices: devices} })
	t.Cleanup(func() { backend.Unregister(testBackend) })
	return devices
}

func execute(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	t.Setenv("VSG_FILE_PATH", "")
	t.Setenv("VSG_FILE_CACHE", "")
	t.Cleanup(func() { ggview.SetLogger(nil) })

	var out, errOut bytes.Buffer
	code = Execute(context.Background(), args, Env{Stdout: &out, Stderr: &errOut})
	return code, out.String(), errOut.String()
}

func writeTriangle(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tri.obj")
	if err := os.WriteFile(path, []byte("v 0 0 0\nv 1 0 0\nv 0 0 1\nf 1 2 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestJoinWindowArgs(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"long", []string{"--window", "800", "600", "a.obj"}, []string{"--window", "800,600", "a.obj"}},
		{"short", []string{"-w", "1024", "768"}, []string{"--window", "1024,768"}},
		{"already joined", []string{"--window=800,600"}, []string{"--window=800,600"}},
		{"one number", []string{"-w", "800", "a.obj"}, []string{"-w", "800", "a.obj"}},
		{"after dashdash", []string{"--", "-w", "1", "2"}, []string{"--", "-w", "1", "2"}},
		{"other flags", []string{"-d", "--samples", "4", "x.png"}, []string{"-d", "--samples", "4", "x.png"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := joinWindowArgs(tt.in); !slices.Equal(got, tt.want) {
				t.Errorf("joinWindowArgs(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func parseSettings(t *testing.T, args ...string) (settings, error) {
	t.Helper()
	cmd := newCommand(Env{})
	if err := cmd.ParseFlags(joinWindowArgs(args)); err != nil {
		t.Fatalf("ParseFlags(%q): %v", args, err)
	}
	return loadSettings(cmd.Flags())
}

func TestSettingsDefaults(t *testing.T) {
	s, err := parseSettings(t)
	if err != nil {
		t.Fatal(err)
	}
	if s.Width != engine.DefaultWidth || s.Height != engine.DefaultHeight {
		t.Errorf("size = %dx%d, want %dx%d", s.Width, s.Height, engine.DefaultWidth, engine.DefaultHeight)
	}
	if s.Interval != 8 || s.Samples != 1 || s.EventDriven || s.Fullscreen || s.Headless {
		t.Errorf("defaults = %+v", s)
	}
}

func TestSettingsFlagsAndAliases(t *testing.T) {
	s, err := parseSettings(t, "--window", "800", "600", "--fs", "--ed", "-d", "-a",
		"--samples", "4", "--interval", "-1", "--log-level", "debug")
	if err != nil {
		t.Fatal(err)
	}
	if s.Width != 800 || s.Height != 600 {
		t.Errorf("size = %dx%d, want 800x600", s.Width, s.Height)
	}
	if !s.Fullscreen || !s.EventDriven || !s.Debug || !s.APIDump {
		t.Errorf("flags not set: %+v", s)
	}
	if s.Samples != 4 || s.Interval != -1 {
		t.Errorf("samples, interval = %d, %d", s.Samples, s.Interval)
	}
	if s.LogLevel.String() != "DEBUG" {
		t.Errorf("log level = %v", s.LogLevel)
	}
}

func TestSettingsEnvironment(t *testing.T) {
	t.Setenv("GGVIEW_SAMPLES", "8")
	t.Setenv("GGVIEW_WINDOW", "640,480")
	t.Setenv("GGVIEW_EVENT_DRIVEN", "true")

	s, err := parseSettings(t, "--samples", "2")
	if err != nil {
		t.Fatal(err)
	}
	if s.Samples != 2 {
		t.Errorf("samples = %d, want the flag value 2", s.Samples)
	}
	if s.Width != 640 || s.Height != 480 || !s.EventDriven {
		t.Errorf("environment not applied: %+v", s)
	}
}

func TestSettingsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ggview.yaml")
	yaml := "samples: 4\nwindow: [320, 200]\nheadless: true\nbackend: " + testBackend + "\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := parseSettings(t, "--config", path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Samples != 4 || s.Width != 320 || s.Height != 200 || !s.Headless || s.Backend != testBackend {
		t.Errorf("config not applied: %+v", s)
	}

	if _, err := parseSettings(t, "--config", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing config file accepted")
	}
}

func TestSettingsInvalid(t *testing.T) {
	tests := [][]string{
		{"--window", "0", "600"},
		{"--window", "800"},
		{"--window=1,2,3"},
		{"--log-level", "loud"},
		{"--samples", "-2"},
	}
	for _, args := range tests {
		if _, err := parseSettings(t, args...); err == nil {
			t.Errorf("%q accepted", args)
		}
	}
}

func TestExecuteExitCodes(t *testing.T) {
	registerTestBackend(t)
	tri := writeTriangle(t)

	tests := []struct {
		name       string
		args       []string
		code       int
		stdout     string
		stderrPart string
	}{
		{"no file", nil, ExitFailure, MsgNoPath + "\n", ""},
		{"missing file", []string{"no-such-model.obj"}, ExitFailure, MsgBadScene + "\n", "not found"},
		{"malformed flag", []string{"--samples", "many", tri}, ExitUsage, "", "invalid argument"},
		{"unknown flag", []string{"--sparkle", tri}, ExitUsage, "", "unknown flag"},
		{"bad size", []string{"--window", "0", "0", tri}, ExitUsage, "", "window"},
		{"unknown backend", []string{"--headless", "--backend", "nope", tri}, ExitFailure, "", "not available"},
		{"no desktop", []string{"--backend", testBackend, tri}, ExitFailure, "", "no desktop host"},
		{"help", []string{"--help"}, ExitOK, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := execute(t, tt.args...)
			if code != tt.code {
				t.Errorf("exit code = %d, want %d (stderr %q)", code, tt.code, stderr)
			}
			if tt.stdout != "" && stdout != tt.stdout {
				t.Errorf("stdout = %q, want %q", stdout, tt.stdout)
			}
			if !strings.Contains(stderr, tt.stderrPart) {
				t.Errorf("stderr = %q, want it to contain %q", stderr, tt.stderrPart)
			}
		})
	}
}

func TestExecuteHeadless(t *testing.T) {
	devices := registerTestBackend(t)
	tri := writeTriangle(t)
	out := filepath.Join(t.TempDir(), "first.png")

	code, _, stderr := execute(t, "--headless", "--backend", testBackend,
		"--frames", "3", "--interval", "0", "-w", "320", "240", "--output", out, tri)
	if code != ExitOK {
		t.Fatalf("exit code = %d, stderr %q", code, stderr)
	}
	if *devices != 1 {
		t.Errorf("devices created = %d, want 1 shared by every view", *devices)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("snapshot missing: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Errorf("snapshot size = %v, want 8x6", b)
	}
	if got := color.RGBAModel.Convert(img.At(0, 0)); got != (color.RGBA{0x20, 0x40, 0x80, 0xff}) {
		t.Errorf("snapshot pixel = %v", got)
	}
}
