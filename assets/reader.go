package assets

import (
	"io"
	"slices"
	"sort"
	"strings"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/ggview/engine"
)

// Reader decodes one file format into a scene graph. name is the file's
// base name; readers use it to label nodes.
type Reader interface {
	Read(r io.Reader, name string) (engine.Node, error)
}

// ReaderFunc adapts a function to Reader.
type ReaderFunc func(r io.Reader, name string) (engine.Node, error)

// Read calls f.
func (f ReaderFunc) Read(r io.Reader, name string) (engine.Node, error) { return f(r, name) }

var readers = gpucontext.NewRegistry[Reader]()

// imageExts lists the extensions handled by the image reader. Converted
// images are cached.
var imageExts = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

func init() {
	RegisterReader(".obj", func() Reader { return ReaderFunc(ReadOBJ) })
	for _, ext := range imageExts {
		RegisterReader(ext, func() Reader { return ReaderFunc(ReadImage) })
	}
}

// RegisterReader registers a reader factory for a file extension such as
// ".obj". Registering an extension again replaces the earlier reader.
func RegisterReader(ext string, factory func() Reader) {
	readers.Register(strings.ToLower(ext), factory)
}

// ReaderFor returns a reader for ext, or nil.
func ReaderFor(ext string) Reader {
	return readers.Get(strings.ToLower(ext))
}

// Extensions returns the registered extensions, sorted.
func Extensions() []string {
	exts := readers.Available()
	sort.Strings(exts)
	return exts
}

func isImageExt(ext string) bool {
	return slices.Contains(imageExts, strings.ToLower(ext))
}
