package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/duodash/components"
	cfg "github.com/automoto/duodash/config"
	"github.com/automoto/duodash/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebugToggles flips the ground probe gizmo on ToggleProbe and saves
// the choice.
func UpdateDebugToggles(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)
	if !GetAction(input, cfg.ActionToggleProbe).JustPressed {
		return
	}
	UpdateSettings(ecs, func(s *components.SettingsData) {
		s.ShowProbe = !s.ShowProbe
	})
}

// DrawDebug prints controller state for each player along the bottom edge
// when debug mode is on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Enabled {
		return
	}
	face := fonts.Small.Get()
	b := screen.Bounds()

	var lines []string
	split := GetOrCreateSplitScreen(ecs)
	lines = append(lines, fmt.Sprintf("split=%v dist=%.1f tps=%.0f", split.IsSplit, split.Distance, ebiten.ActualTPS()))

	for _, e := range Players(ecs) {
		player := components.Player.Get(e)
		ctrl := player.Controller
		if ctrl == nil {
			continue
		}
		v := components.Physics.Get(e).Velocity
		lines = append(lines, fmt.Sprintf("%s grounded=%v facing=%+.0f v=(%.1f, %.1f) active=%s locks=%v",
			player.Name, ctrl.Grounded(), ctrl.Facing(), v.X, v.Y, ctrl.Active(), ctrl.Locks()))
	}

	y := b.Max.Y - 4 - 10*(len(lines)-1)
	text.Draw(screen, strings.Join(lines, "\n"), face, b.Min.X+4, y, cfg.White)
}
