package assets

import (
	"fmt"
	"os"

	"github.com/gogpu/ggview/engine"
	"github.com/gogpu/ggview/internal/cache"
)

// DefaultLoaderCapacity is the number of scenes a Loader keeps in memory
// when NewLoader is given a capacity below one.
const DefaultLoaderCapacity = 8

// sceneKey identifies one version of a file.
type sceneKey struct {
	path    string
	size    int64
	modTime int64
}

// Loader loads scenes like Load and keeps the most recently loaded ones in
// memory. Loading an unchanged file again returns the same root node, so
// views opened on the same file share one scene graph.
type Loader struct {
	cfg    Config
	scenes *cache.LRU[sceneKey, engine.Node]
}

// NewLoader returns a loader resolving names with cfg.
func NewLoader(cfg Config, capacity int) *Loader {
	if capacity < 1 {
		capacity = DefaultLoaderCapacity
	}
	return &Loader{
		cfg: cfg,
		scenes: cache.New(capacity, func(k sceneKey, _ engine.Node) {
			Logger().Debug("assets: scene evicted", "path", k.path)
		}),
	}
}

// Config returns the configuration the loader resolves names with.
func (l *Loader) Config() Config { return l.cfg }

// Load returns the scene stored in name.
func (l *Loader) Load(name string) (engine.Node, error) {
	path, err := l.cfg.Find(name)
	if err != nil {
		return nil, err
	}
	st, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("assets: stat %s: %w", path, err)
	}
	key := sceneKey{path: path, size: st.Size(), modTime: st.ModTime().UnixNano()}
	if scene, ok := l.scenes.Get(key); ok {
		Logger().Debug("assets: scene reused", "path", path)
		return scene, nil
	}

	scene, err := Load(path, l.cfg)
	if err != nil {
		return nil, err
	}
	l.scenes.Set(key, scene)
	return scene, nil
}

// Len returns the number of scenes held in memory.
func (l *Loader) Len() int { return l.scenes.Len() }
