package scenes

import (
	"fmt"

	"github.com/automoto/duodash/assets"
	"github.com/automoto/duodash/logging"
	"github.com/automoto/duodash/tuning"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Scene is what the game loop drives.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// closer is implemented by scenes that hold resources to release when they
// are replaced.
type closer interface {
	Close()
}

// MainMenuName is the name of build index 0.
const MainMenuName = "Main Menu"

// Registry maps build indices to scenes: 0 is the main menu, 1..n are the
// levels in load order.
type Registry struct {
	changer SceneChanger
	levels  []*assets.Level
	watcher *tuning.Watcher

	active  int
	current Scene
}

// NewRegistry creates a registry over levels. watcher may be nil.
func NewRegistry(sc SceneChanger, levels []*assets.Level, watcher *tuning.Watcher) *Registry {
	return &Registry{changer: sc, levels: levels, watcher: watcher, active: -1}
}

// Count is the number of scenes, the main menu included.
func (r *Registry) Count() int {
	return len(r.levels) + 1
}

// Name returns the name of scene index, or "" when out of range.
func (r *Registry) Name(index int) string {
	switch {
	case index == 0:
		return MainMenuName
	case index > 0 && index <= len(r.levels):
		return r.levels[index-1].Name
	}
	return ""
}

// Active is the build index of the loaded scene, -1 before the first load.
func (r *Registry) Active() int {
	return r.active
}

// LoadIndex replaces the current scene with scene index.
func (r *Registry) LoadIndex(index int) error {
	if index < 0 || index >= r.Count() {
		return fmt.Errorf("scene index %d out of range [0, %d)", index, r.Count())
	}

	var next Scene
	if index == 0 {
		next = NewMenuScene(r)
	} else {
		next = NewWorldScene(r, index, r.levels[index-1])
	}

	if c, ok := r.current.(closer); ok {
		c.Close()
	}
	r.current = next
	r.active = index
	r.changer.ChangeScene(next)

	logging.L().Named("scenes").Info("scene loaded",
		zap.Int("index", index),
		zap.String("name", r.Name(index)))
	return nil
}

// LoadName loads the scene called name.
func (r *Registry) LoadName(name string) error {
	if name == MainMenuName {
		return r.LoadIndex(0)
	}
	i := assets.LevelIndex(r.levels, name)
	if i < 0 {
		return fmt.Errorf("no scene named %q", name)
	}
	return r.LoadIndex(i + 1)
}

// Reload loads the active scene again from scratch.
func (r *Registry) Reload() error {
	if r.active < 0 {
		return fmt.Errorf("no scene loaded")
	}
	return r.LoadIndex(r.active)
}

// load runs LoadIndex from a UI callback, where an error can only be logged.
func (r *Registry) load(index int) {
	if err := r.LoadIndex(index); err != nil {
		logging.L().Named("scenes").Warn("scene load failed", zap.Int("index", index), zap.Error(err))
	}
}
