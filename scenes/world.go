package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/duodash/assets"
	"github.com/automoto/duodash/components"
	cfg "github.com/automoto/duodash/config"
	"github.com/automoto/duodash/logging"
	"github.com/automoto/duodash/systems"
	"github.com/automoto/duodash/systems/factory"
	"github.com/automoto/duodash/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// WorldScene plays one level with both players.
type WorldScene struct {
	ecs      *ecs.ECS
	registry *Registry
	index    int
	level    *assets.Level
	pauseUI  *ui.PauseMenu
	once     sync.Once
	closed   bool
}

func NewWorldScene(r *Registry, index int, level *assets.Level) *WorldScene {
	return &WorldScene{registry: r, index: index, level: level}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	if ws.closed {
		return
	}
	ws.ecs.Update()

	pause := systems.GetOrCreatePause(ws.ecs)
	if pause.IsPaused && !pause.OptionsOpen {
		input := systems.GetOrCreateInput(ws.ecs)
		if systems.GetAction(input, cfg.ActionMenuSelect).JustPressed {
			systems.Resume(ws.ecs)
		}
	}
	ws.pauseUI.Sync(pause.IsPaused, pause.OptionsOpen, systems.PauseHint(ws.ecs))
	if pause.IsPaused {
		ws.pauseUI.Update()
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
	if systems.GetOrCreatePause(ws.ecs).IsPaused {
		ws.pauseUI.Draw(screen)
	}
}

// Close releases every player's active ability before the world is dropped.
func (ws *WorldScene) Close() {
	if ws.closed || ws.ecs == nil {
		ws.closed = true
		return
	}
	systems.TeardownPlayers(ws.ecs)
	ws.closed = true
	logging.L().Named("scenes").Debug("world closed", zap.String("level", ws.level.Name))
}

func (ws *WorldScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateMultiPlayerInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.NewUpdateTuning(ws.registry.watcher))
	ecs.AddSystem(systems.UpdateDebugToggles)

	// Game systems wrapped with pause checks
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateTriggers))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCameras))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ecs.AddRenderer(cfg.Default, systems.DrawDivider)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPauseOverlay)

	ws.ecs = ecs
	systems.SetTimeScale(ecs, 1)
	settings := systems.GetOrCreateSettings(ecs)

	// Level colliders first so the players' controllers find the space.
	factory.CreateLevel(ecs, ws.level, ws.index)
	for i := 0; i < cfg.PlayerCount; i++ {
		player := factory.CreatePlayer(ecs, i, ws.level.Spawn(i))
		systems.AttachController(ecs, player)
	}
	factory.CreateCameras(ecs, settings.SplitScreen)

	ws.pauseUI = ui.NewPauseMenu(
		func() components.SettingsData { return *systems.GetOrCreateSettings(ecs) },
		func(fn func(*components.SettingsData)) { systems.UpdateSettings(ecs, fn) },
		func() { systems.CloseOptions(ecs) },
	)
	ws.pauseUI.OnResume = func() { systems.Resume(ecs) }
	ws.pauseUI.OnRestart = func() {
		systems.SetTimeScale(ecs, 1)
		if err := ws.registry.Reload(); err != nil {
			logging.L().Named("scenes").Warn("restart failed", zap.Error(err))
		}
	}
	ws.pauseUI.OnHome = func() {
		systems.SetTimeScale(ecs, 1)
		if err := ws.registry.LoadName(MainMenuName); err != nil {
			logging.L().Named("scenes").Warn("home failed", zap.Error(err))
		}
	}
	ws.pauseUI.OnOpenOptions = func() { systems.OpenOptions(ecs) }
}
