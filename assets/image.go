package assets

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"io"

	"github.com/go-gl/mathgl/mgl32"
	_ "golang.org/x/image/bmp"  // register BMP
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP

	"github.com/gogpu/ggview/engine"
)

// MaxImageCells is the number of cells along the longer side of an image
// quad.
const MaxImageCells = 32

// ReadImage decodes a raster image and returns it as a quad in the XZ
// plane centred on the origin: one unit high, as wide as the image aspect
// ratio, facing -Y. The quad is split into cells colored with the average
// of the pixels they cover.
func ReadImage(r io.Reader, name string) (engine.Node, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, name, err)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: %s: empty image", ErrEmptyScene, name)
	}
	Logger().Debug("assets: image decoded", "name", name, "format", format, "width", b.Dx(), "height", b.Dy())
	return ImageQuad(img, name), nil
}

// ImageQuad builds the cell quad for img. See ReadImage.
func ImageQuad(img image.Image, name string) *engine.Group {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	cols, rows := cellGrid(w, h)

	width := float32(w) / float32(h)
	x0, z0 := -width/2, float32(0.5)

	root := engine.NewGroup(name)
	for row := 0; row < rows; row++ {
		py0, py1 := b.Min.Y+row*h/rows, b.Min.Y+(row+1)*h/rows
		top := z0 - float32(row)/float32(rows)
		bottom := z0 - float32(row+1)/float32(rows)
		for col := 0; col < cols; col++ {
			px0, px1 := b.Min.X+col*w/cols, b.Min.X+(col+1)*w/cols
			left := x0 + width*float32(col)/float32(cols)
			right := x0 + width*float32(col+1)/float32(cols)
			root.Children = append(root.Children, &engine.Geometry{
				Name: fmt.Sprintf("%s[%d,%d]", name, row, col),
				Positions: []mgl32.Vec3{
					{left, 0, bottom},
					{right, 0, bottom},
					{right, 0, top},
					{left, 0, top},
				},
				Indices: []uint32{0, 1, 2, 0, 2, 3},
				Color:   average(img, image.Rect(px0, py0, px1, py1)),
			})
		}
	}
	return root
}

// cellGrid returns the cell columns and rows for a w×h image, keeping
// cells roughly square and never smaller than a pixel.
func cellGrid(w, h int) (cols, rows int) {
	if w >= h {
		cols = min(w, MaxImageCells)
		rows = max(1, min(h, (cols*h+w/2)/w))
		return cols, rows
	}
	rows = min(h, MaxImageCells)
	cols = max(1, min(w, (rows*w+h/2)/h))
	return cols, rows
}

// average returns the opaque mean color of r, sampling at most 16×16
// pixels.
func average(img image.Image, r image.Rectangle) color.RGBA {
	sx := max(1, r.Dx()/16)
	sy := max(1, r.Dy()/16)
	var sr, sg, sb, n uint64
	for y := r.Min.Y; y < r.Max.Y; y += sy {
		for x := r.Min.X; x < r.Max.X; x += sx {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			sr += uint64(cr)
			sg += uint64(cg)
			sb += uint64(cb)
			n++
		}
	}
	if n == 0 {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{uint8(sr / n >> 8), uint8(sg / n >> 8), uint8(sb / n >> 8), 0xff}
}
