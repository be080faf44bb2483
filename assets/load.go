package assets

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/ggview/engine"
)

// Load finds name on the search path and reads it with the reader
// registered for its extension. Image scenes go through the cache when
// cfg.Cache is set; a cache failure is logged and does not fail the load.
func Load(name string, cfg Config) (engine.Node, error) {
	path, err := cfg.Find(name)
	if err != nil {
		return nil, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	reader := ReaderFor(ext)
	if reader == nil {
		return nil, fmt.Errorf("%w: %q (%s)", ErrUnsupportedFormat, ext, path)
	}
	base := filepath.Base(path)

	var cachePath string
	if cfg.Cache != "" && isImageExt(ext) {
		cachePath, err = cacheFile(cfg.Cache, path)
		if err != nil {
			Logger().Warn("assets: cache disabled for file", "path", path, "err", err)
		} else if isFile(cachePath) {
			scene, err := readFile(cachePath, base, ReaderFunc(ReadOBJ))
			if err == nil {
				Logger().Debug("assets: cache hit", "path", path, "cache", cachePath)
				return scene, nil
			}
			Logger().Warn("assets: ignoring unreadable cache file", "cache", cachePath, "err", err)
		}
	}

	scene, err := readFile(path, base, reader)
	if err != nil {
		return nil, err
	}
	if cachePath != "" {
		if err := writeCache(cachePath, scene); err != nil {
			Logger().Warn("assets: cache write failed", "cache", cachePath, "err", err)
		} else {
			Logger().Debug("assets: cached", "path", path, "cache", cachePath)
		}
	}
	return scene, nil
}

func readFile(path, name string, r Reader) (engine.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", path, err)
	}
	defer f.Close()
	scene, err := r.Read(bufio.NewReader(f), name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return scene, nil
}

// cacheFile names the cache entry for src after its base name, size and
// modification time, so an edited source misses the cache.
func cacheFile(dir, src string) (string, error) {
	st, err := os.Stat(src)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s-%x-%x.obj", filepath.Base(src), st.Size(), st.ModTime().UnixNano())
	return filepath.Join(dir, name), nil
}

// writeCache writes scene to path through a temporary file in the same
// directory.
func writeCache(path string, scene engine.Node) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".ggview-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if err := WriteOBJ(tmp, scene); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
