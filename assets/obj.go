package assets

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/ggview/engine"
)

// objGroup collects the triangles of one "o" or "g" section as indices
// into the file-wide vertex list.
type objGroup struct {
	name  string
	tris  []int
	color color.RGBA
}

type objParser struct {
	name      string
	positions []mgl32.Vec3
	colors    []color.RGBA
	hasColor  []bool
	groups    []*objGroup
}

// ReadOBJ reads a Wavefront OBJ mesh. Texture coordinates, normals,
// materials and line elements are ignored.
func ReadOBJ(r io.Reader, name string) (engine.Node, error) {
	p := &objParser{name: name}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	line := 0
	for sc.Scan() {
		line++
		if err := p.parseLine(sc.Text()); err != nil {
			return nil, fmt.Errorf("%w: %s:%d: %v", ErrMalformed, name, line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, name, err)
	}

	root := engine.NewGroup(name)
	for _, g := range p.groups {
		if geom := p.geometry(g); geom != nil {
			root.Children = append(root.Children, geom)
		}
	}
	if len(root.Children) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyScene, name)
	}
	Logger().Debug("assets: obj loaded", "name", name, "vertices", len(p.positions), "geometries", len(root.Children))
	return root, nil
}

func (p *objParser) parseLine(s string) error {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[:i]
	}
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil
	}
	switch fields[0] {
	case "v":
		return p.vertex(fields[1:])
	case "f":
		return p.face(fields[1:])
	case "o", "g":
		p.begin(strings.Join(fields[1:], " "))
	}
	return nil
}

func (p *objParser) vertex(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("vertex needs 3 coordinates, got %d", len(args))
	}
	vals := make([]float64, 0, 6)
	for _, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Errorf("vertex: %w", err)
		}
		vals = append(vals, v)
	}
	p.positions = append(p.positions, mgl32.Vec3{float32(vals[0]), float32(vals[1]), float32(vals[2])})

	// "v x y z r g b"; a lone fourth value is the homogeneous w.
	var c color.RGBA
	hasColor := len(vals) >= 6
	if hasColor {
		c = color.RGBA{unitByte(vals[3]), unitByte(vals[4]), unitByte(vals[5]), 0xff}
	}
	p.colors = append(p.colors, c)
	p.hasColor = append(p.hasColor, hasColor)
	return nil
}

func unitByte(v float64) uint8 {
	return uint8(math.Round(mgl64.Clamp(v, 0, 1) * 255))
}

func (p *objParser) face(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("face needs 3 vertices, got %d", len(args))
	}
	idx := make([]int, len(args))
	for i, a := range args {
		ref, _, _ := strings.Cut(a, "/")
		n, err := strconv.Atoi(ref)
		if err != nil {
			return fmt.Errorf("face: %w", err)
		}
		switch {
		case n > 0:
			n--
		case n < 0:
			n += len(p.positions)
		default:
			return fmt.Errorf("face: vertex index 0")
		}
		if n < 0 || n >= len(p.positions) {
			return fmt.Errorf("face: vertex %s out of range", ref)
		}
		idx[i] = n
	}

	g := p.current()
	for k := 1; k+1 < len(idx); k++ {
		g.tris = append(g.tris, idx[0], idx[k], idx[k+1])
	}
	return nil
}

// begin starts a named section. An empty current section is renamed
// instead.
func (p *objParser) begin(name string) {
	if name == "" {
		name = p.name
	}
	if n := len(p.groups); n > 0 && len(p.groups[n-1].tris) == 0 {
		p.groups[n-1].name = name
		return
	}
	p.groups = append(p.groups, &objGroup{name: name})
}

func (p *objParser) current() *objGroup {
	if len(p.groups) == 0 {
		p.groups = append(p.groups, &objGroup{name: p.name})
	}
	return p.groups[len(p.groups)-1]
}

// geometry compacts g's vertices into a standalone geometry, or returns
// nil for a section without faces. The first colored vertex sets the
// geometry color.
func (p *objParser) geometry(g *objGroup) *engine.Geometry {
	if len(g.tris) == 0 {
		return nil
	}
	geom := &engine.Geometry{Name: g.name, Indices: make([]uint32, len(g.tris))}
	remap := make(map[int]uint32)
	colored := false
	for i, v := range g.tris {
		local, ok := remap[v]
		if !ok {
			local = uint32(len(geom.Positions))
			remap[v] = local
			geom.Positions = append(geom.Positions, p.positions[v])
			if !colored && p.hasColor[v] {
				geom.Color = p.colors[v]
				colored = true
			}
		}
		geom.Indices[i] = local
	}
	return geom
}

// WriteOBJ writes every geometry under scene as an OBJ object with
// world-space vertices. Colored geometries use the "v x y z r g b" form.
func WriteOBJ(w io.Writer, scene engine.Node) error {
	bw := bufio.NewWriter(w)
	base := 1
	n := 0
	engine.Walk(scene, func(g *engine.Geometry, world mgl64.Mat4) {
		n++
		name := g.Name
		if name == "" {
			name = fmt.Sprintf("geometry%d", n)
		}
		fmt.Fprintf(bw, "o %s\n", name)
		for _, pos := range g.Positions {
			v := world.Mul4x1(mgl64.Vec4{float64(pos[0]), float64(pos[1]), float64(pos[2]), 1})
			bw.WriteString("v " + formatFloat(v[0]) + " " + formatFloat(v[1]) + " " + formatFloat(v[2]))
			if g.Color.A != 0 {
				fmt.Fprintf(bw, " %s %s %s",
					formatFloat(float64(g.Color.R)/255),
					formatFloat(float64(g.Color.G)/255),
					formatFloat(float64(g.Color.B)/255))
			}
			bw.WriteByte('\n')
		}
		for i := 0; i+2 < len(g.Indices); i += 3 {
			fmt.Fprintf(bw, "f %d %d %d\n",
				base+int(g.Indices[i]), base+int(g.Indices[i+1]), base+int(g.Indices[i+2]))
		}
		base += len(g.Positions)
	})
	return bw.Flush()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 7, 64)
}
