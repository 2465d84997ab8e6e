package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/automoto/duodash/components"
	cfg "github.com/automoto/duodash/config"
	"github.com/automoto/duodash/logging"
	"github.com/automoto/duodash/systems"
	"github.com/automoto/duodash/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the main menu
type MenuScene struct {
	ecs      *ecs.ECS
	registry *Registry
	menu     *ui.MainMenu
	once     sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(r *Registry) *MenuScene {
	return &MenuScene{registry: r}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	ms.menu.Update()

	input := systems.GetOrCreateInput(ms.ecs)
	switch {
	case ms.menu.OptionsOpen():
		if systems.GetAction(input, cfg.ActionMenuBack).JustPressed {
			ms.menu.HideOptions()
		}
	case systems.GetAction(input, cfg.ActionMenuSelect).JustPressed:
		ms.menu.Play()
	case systems.GetAction(input, cfg.ActionMenuBack).JustPressed:
		ms.menu.Quit()
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
	ms.menu.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.UpdateMenu)
	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)

	ms.menu = ui.NewMainMenu(ms.play, quit,
		func() components.SettingsData { return *systems.GetOrCreateSettings(ms.ecs) },
		func(fn func(*components.SettingsData)) { systems.UpdateSettings(ms.ecs, fn) },
	)
}

func (ms *MenuScene) play() {
	systems.SetTimeScale(ms.ecs, 1)
	ms.registry.load(1)
}

func quit() {
	logging.L().Named("scenes").Info("quit")
	logging.Sync()
	os.Exit(0)
}
