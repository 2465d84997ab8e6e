package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"github.com/automoto/duodash/assets"
	"github.com/automoto/duodash/config"
	"github.com/automoto/duodash/fonts"
	"github.com/automoto/duodash/logging"
	"github.com/automoto/duodash/scenes"
	"github.com/automoto/duodash/systems"
	"github.com/automoto/duodash/tuning"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(scenes.Scene)
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func parseFlags() {
	flag.BoolVar(&config.Debug.Enabled, "debug", false, "verbose logging, collider outlines and the probe gizmo")
	flag.BoolVar(&config.Debug.SkipMenu, "skipmenu", false, "start in a level instead of the main menu")
	flag.IntVar(&config.Debug.LevelIndex, "level", 0, "level loaded by -skipmenu, 0 for the first")
	flag.StringVar(&config.Debug.TuningPath, "tuning", "", "YAML file overriding player, physics and camera values")
	flag.BoolVar(&config.Debug.WatchTuning, "watch", false, "reload the -tuning file when it changes")
	flag.StringVar(&config.Debug.LogPath, "log", "", "rolling log file (stderr only when empty)")
	flag.Parse()
	config.Debug.ShowProbe = config.Debug.Enabled
}

// loadTuning applies the tuning file, if any, and returns a watcher on it
// when -watch is set. Failures leave the compiled-in defaults in place.
func loadTuning(log *zap.Logger) *tuning.Watcher {
	path := config.Debug.TuningPath
	if path == "" {
		return nil
	}
	doc, err := tuning.Load(path)
	if err != nil {
		log.Warn("tuning not applied", zap.String("path", path), zap.Error(err))
	} else {
		config.ApplyTuning(doc)
		log.Info("tuning applied", zap.String("path", path))
	}
	if !config.Debug.WatchTuning {
		return nil
	}
	w, err := tuning.NewWatcher(path)
	if err != nil {
		log.Warn("tuning watch disabled", zap.String("path", path), zap.Error(err))
		return nil
	}
	return w
}

func run() error {
	parseFlags()

	logger, err := logging.Init(config.Debug.LogPath, config.Debug.Enabled)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logging.Sync()
	log := logger.Named("main")

	if err := fonts.LoadDefaults(); err != nil {
		return fmt.Errorf("load fonts: %w", err)
	}

	loaded, err := assets.NewLevelLoader().LoadLevels()
	if err != nil {
		return fmt.Errorf("load levels: %w", err)
	}
	levels := make([]*assets.Level, len(loaded))
	for i := range loaded {
		levels[i] = &loaded[i]
	}
	log.Info("levels loaded", zap.Int("count", len(levels)))

	watcher := loadTuning(log)
	if watcher != nil {
		defer watcher.Close()
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(config.C.AppName); err != nil {
		log.Warn("settings will not be saved", zap.Error(err))
	}
	systems.LoadActiveSettings()

	g := &Game{}
	registry := scenes.NewRegistry(g, levels, watcher)
	start := 0
	if config.Debug.SkipMenu {
		start = config.Debug.LevelIndex + 1
	}
	if err := registry.LoadIndex(start); err != nil {
		return err
	}

	return ebiten.RunGame(g)
}

func main() {
	if err := run(); err != nil {
		logging.L().Error("fatal", zap.Error(err))
		logging.Sync()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
