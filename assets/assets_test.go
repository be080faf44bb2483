package assets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/ggview/engine"
)

func geometries(t *testing.T, n engine.Node) []*engine.Geometry {
	t.Helper()
	var out []*engine.Geometry
	engine.Walk(n, func(g *engine.Geometry, _ mgl64.Mat4) { out = append(out, g) })
	return out
}

func near(a, b mgl64.Vec3) bool {
	return a.Sub(b).Len() < 1e-5
}

const cubeFaces = `# two sections
o front
v 0 0 0
v 1 0 0
v 1 0 1
v 0 0 1 1 0 0
f 1 2 3 4
g back
v 0 2 0
v 1 2 0
v 1 2 1
f -3/1/1 -2/2/2 -1//3
`

func TestReadOBJ(t *testing.T) {
	scene, err := ReadOBJ(strings.NewReader(cubeFaces), "cube.obj")
	if err != nil {
		t.Fatalf("ReadOBJ: %v", err)
	}
	geoms := geometries(t, scene)
	if len(geoms) != 2 {
		t.Fatalf("geometries = %d, want 2", len(geoms))
	}

	front, back := geoms[0], geoms[1]
	if front.Name != "front" || back.Name != "back" {
		t.Errorf("names = %q, %q, want front, back", front.Name, back.Name)
	}
	if got := front.TriangleCount(); got != 2 {
		t.Errorf("front triangles = %d, want 2 (quad fan)", got)
	}
	if len(back.Positions) != 3 || back.TriangleCount() != 1 {
		t.Errorf("back = %d positions %d triangles, want 3 and 1", len(back.Positions), back.TriangleCount())
	}
	if want := (color.RGBA{0xff, 0, 0, 0xff}); front.Color != want {
		t.Errorf("front color = %v, want %v", front.Color, want)
	}
	if back.Color.A != 0 {
		t.Errorf("back color = %v, want unset", back.Color)
	}

	b := engine.ComputeBounds(scene)
	if !near(b.Min, mgl64.Vec3{0, 0, 0}) || !near(b.Max, mgl64.Vec3{1, 2, 1}) {
		t.Errorf("bounds = %v..%v, want 0,0,0..1,2,1", b.Min, b.Max)
	}
}

func TestReadOBJErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"empty", "# nothing\n", ErrEmptyScene},
		{"vertices only", "v 0 0 0\nv 1 0 0\n", ErrEmptyScene},
		{"short vertex", "v 0 0\n", ErrMalformed},
		{"bad float", "v 0 x 0\n", ErrMalformed},
		{"index out of range", "v 0 0 0\nf 1 2 3\n", ErrMalformed},
		{"index zero", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n", ErrMalformed},
		{"two-vertex face", "v 0 0 0\nv 1 0 0\nf 1 2\n", ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadOBJ(strings.NewReader(tt.src), "t.obj")
			if !errors.Is(err, tt.want) {
				t.Errorf("ReadOBJ = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestWriteOBJAppliesTransform(t *testing.T) {
	tri := &engine.Geometry{
		Name:      "tri",
		Positions: []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Indices:   []uint32{0, 1, 2},
		Color:     color.RGBA{0, 0x80, 0xff, 0xff},
	}
	scene := engine.NewTransform(mgl64.Translate3D(10, 0, 0), tri)

	var buf bytes.Buffer
	if err := WriteOBJ(&buf, scene); err != nil {
		t.Fatalf("WriteOBJ: %v", err)
	}
	back, err := ReadOBJ(&buf, "tri.obj")
	if err != nil {
		t.Fatalf("ReadOBJ: %v", err)
	}
	geoms := geometries(t, back)
	if len(geoms) != 1 {
		t.Fatalf("geometries = %d, want 1", len(geoms))
	}
	if geoms[0].Color != tri.Color {
		t.Errorf("color = %v, want %v", geoms[0].Color, tri.Color)
	}
	b := engine.ComputeBounds(back)
	if !near(b.Min, mgl64.Vec3{10, 0, 0}) || !near(b.Max, mgl64.Vec3{11, 1, 0}) {
		t.Errorf("bounds = %v..%v, want translated by 10 on X", b.Min, b.Max)
	}
}

func encodePNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestReadImageQuad(t *testing.T) {
	red := color.RGBA{0xff, 0, 0, 0xff}
	scene, err := ReadImage(bytes.NewReader(encodePNG(t, 200, 100, red)), "red.png")
	if err != nil {
		t.Fatalf("ReadImage: %v", err)
	}

	b := engine.ComputeBounds(scene)
	if !near(b.Min, mgl64.Vec3{-1, 0, -0.5}) || !near(b.Max, mgl64.Vec3{1, 0, 0.5}) {
		t.Errorf("bounds = %v..%v, want a 2x1 quad in XZ", b.Min, b.Max)
	}
	geoms := geometries(t, scene)
	if len(geoms) != 32*16 {
		t.Errorf("cells = %d, want %d", len(geoms), 32*16)
	}
	for _, g := range geoms {
		if g.Color != red {
			t.Fatalf("cell %s color = %v, want %v", g.Name, g.Color, red)
		}
	}
}

func TestReadImageGarbage(t *testing.T) {
	if _, err := ReadImage(strings.NewReader("not an image"), "x.png"); !errors.Is(err, ErrMalformed) {
		t.Errorf("ReadImage = %v, want ErrMalformed", err)
	}
}

func TestCellGrid(t *testing.T) {
	tests := []struct {
		w, h       int
		cols, rows int
	}{
		{200, 100, 32, 16},
		{10, 5, 10, 5},
		{100, 300, 11, 32},
		{1000, 1, 32, 1},
		{1, 1000, 1, 32},
		{1, 1, 1, 1},
	}
	for _, tt := range tests {
		cols, rows := cellGrid(tt.w, tt.h)
		if cols != tt.cols || rows != tt.rows {
			t.Errorf("cellGrid(%d, %d) = %d, %d, want %d, %d", tt.w, tt.h, cols, rows, tt.cols, tt.rows)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("VSG_FILE_PATH", strings.Join([]string{"/a", "", "/b"}, string(os.PathListSeparator)))
	t.Setenv("VSG_FILE_CACHE", "/tmp/cache")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Cache != "/tmp/cache" {
		t.Errorf("Cache = %q", cfg.Cache)
	}
	got := cfg.SearchPaths()
	if len(got) != 2 || got[0] != "/a" || got[1] != "/b" {
		t.Errorf("SearchPaths = %q, want [/a /b]", got)
	}
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadSearchPath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "tri.obj"), []byte("v 0 0 0\nv 1 0 0\nv 0 0 1\nf 1 2 3\n"))

	cfg := Config{Paths: dir}
	scene, err := Load("tri.obj", cfg)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if n := len(geometries(t, scene)); n != 1 {
		t.Errorf("geometries = %d, want 1", n)
	}

	if _, err := Load("missing.obj", cfg); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load(missing) = %v, want ErrNotFound", err)
	}

	writeFile(t, filepath.Join(dir, "scene.xyz"), []byte("?"))
	if _, err := Load("scene.xyz", cfg); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Load(xyz) = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadUsesCache(t *testing.T) {
	dir := t.TempDir()
	cache := filepath.Join(t.TempDir(), "cache")
	src := filepath.Join(dir, "blue.png")
	writeFile(t, src, encodePNG(t, 4, 4, color.RGBA{0, 0, 0xff, 0xff}))

	cfg := Config{Cache: cache}
	first, err := Load(src, cfg)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if n := len(geometries(t, first)); n != 16 {
		t.Fatalf("cells = %d, want 16", n)
	}

	entries, err := filepath.Glob(filepath.Join(cache, "*.obj"))
	if err != nil || len(entries) != 1 {
		t.Fatalf("cache entries = %v (%v), want one OBJ", entries, err)
	}

	// A second load must come from the cache entry.
	writeFile(t, entries[0], []byte("o marker\nv 0 0 0\nv 1 0 0\nv 0 0 1\nf 1 2 3\n"))
	second, err := Load(src, cfg)
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	geoms := geometries(t, second)
	if len(geoms) != 1 || geoms[0].Name != "marker" {
		t.Errorf("second load did not use the cache: %d geometries", len(geoms))
	}
}

func TestExtensions(t *testing.T) {
	exts := Extensions()
	for _, want := range []string{".obj", ".png", ".webp", ".bmp", ".tiff"} {
		if !slices.Contains(exts, want) {
			t.Errorf("Extensions() = %v, missing %s", exts, want)
		}
	}
	if ReaderFor(".OBJ") == nil {
		t.Error("ReaderFor is case sensitive")
	}
}

func TestLoaderReusesScenes(t *testing.T) {
	dir := t.TempDir()
	tri := filepath.Join(dir, "tri.obj")
	writeFile(t, tri, []byte("v 0 0 0\nv 1 0 0\nv 0 0 1\nf 1 2 3\n"))

	l := NewLoader(Config{Paths: dir}, 1)
	first, err := l.Load("tri.obj")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	again, err := l.Load("tri.obj")
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if first != again {
		t.Error("unchanged file loaded twice")
	}

	// A changed file is read again.
	writeFile(t, tri, []byte("v 0 0 0\nv 2 0 0\nv 0 0 2\nv 2 0 2\nf 1 2 3\nf 2 4 3\n"))
	changed, err := l.Load(tri)
	if err != nil {
		t.Fatalf("Load changed: %v", err)
	}
	if changed == first {
		t.Error("changed file served from memory")
	}
	if l.Len() != 1 {
		t.Errorf("Len = %d, want 1", l.Len())
	}

	if _, err := l.Load("missing.obj"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load(missing) = %v, want ErrNotFound", err)
	}
}
