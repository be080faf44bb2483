package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config controls where files are found and cached.
type Config struct {
	// Paths is a list of directories separated by the OS path-list
	// separator.
	Paths string `env:"VSG_FILE_PATH"`

	// Cache is the directory converted files are written to. Empty disables
	// caching.
	Cache string `env:"VSG_FILE_CACHE"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("assets: parse environment: %w", err)
	}
	return cfg, nil
}

// SearchPaths returns the non-empty entries of Paths.
func (c Config) SearchPaths() []string {
	var dirs []string
	for _, d := range filepath.SplitList(c.Paths) {
		if d != "" {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// Find resolves name to an existing regular file. Absolute names and names
// that exist relative to the working directory are returned unchanged;
// otherwise each search path is tried in order.
func (c Config) Find(name string) (string, error) {
	if isFile(name) {
		return name, nil
	}
	if !filepath.IsAbs(name) {
		for _, dir := range c.SearchPaths() {
			p := filepath.Join(dir, name)
			if isFile(p) {
				return p, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, name)
}

func isFile(p string) bool {
	st, err := os.Stat(p)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			Logger().Debug("assets: stat failed", "path", p, "err", err)
		}
		return false
	}
	return st.Mode().IsRegular()
}
