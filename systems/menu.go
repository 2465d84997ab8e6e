package systems

import (
	"github.com/automoto/duodash/components"
	cfg "github.com/automoto/duodash/config"
	"github.com/automoto/duodash/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

const (
	titlePulseSeconds = 1.2
	titlePulseLow     = 0.55
)

// UpdateMenu pulses the title between dim and full brightness.
func UpdateMenu(ecs *ecs.ECS) {
	menu := GetOrCreateMenu(ecs)
	a, done := menu.Pulse.Update(float32(1.0 / cfg.TPS))
	menu.Alpha = float64(a)
	if !done {
		return
	}
	menu.Rising = !menu.Rising
	from, to := float32(1), float32(titlePulseLow)
	if menu.Rising {
		from, to = to, from
	}
	menu.Pulse = gween.New(from, to, titlePulseSeconds, ease.InOutSine)
}

// DrawMenu draws the backdrop, title and control hints behind the menu
// buttons.
func DrawMenu(ecs *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(ecs)
	screen.Fill(cfg.Menu.BackgroundColor)

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	titleFont := fonts.Title.Get()
	title := cfg.Menu.Title
	titleW := text.BoundString(titleFont, title).Dx()
	text.Draw(screen, title, titleFont, (width-titleW)/2, titleY(height), fade(cfg.Menu.TitleColor, menu.Alpha))

	hintFont := fonts.Small.Get()
	hint := cfg.Menu.Subtitle
	hintW := text.BoundString(hintFont, hint).Dx()
	text.Draw(screen, hint, hintFont, (width-hintW)/2, height-12, cfg.White)
}

// GetOrCreateMenu returns the menu singleton with its pulse started.
func GetOrCreateMenu(ecs *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			Pulse: gween.New(1, titlePulseLow, titlePulseSeconds, ease.InOutSine),
			Alpha: 1,
		})
	}

	ent, _ := components.Menu.First(ecs.World)
	return components.Menu.Get(ent)
}

// titleY keeps the title clear of the centred button column.
func titleY(height int) int {
	return height/2 - 2*cfg.Button.Height - 40
}
