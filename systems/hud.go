package systems

import (
	"fmt"

	"github.com/automoto/duodash/ability"
	"github.com/automoto/duodash/components"
	cfg "github.com/automoto/duodash/config"
	"github.com/automoto/duodash/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var hudLabels = map[ability.Kind]string{
	ability.Dash:      "DASH",
	ability.Invisible: "INVIS",
}

// DrawHUD shows each player's ability bars and hit count: player 1 in the
// top-left corner, player 2 in the top-right.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	b := screen.Bounds()
	face := fonts.Small.Get()
	lineHeight := cfg.HUD.BarHeight + 12

	for _, e := range Players(ecs) {
		player := components.Player.Get(e)
		ctrl := player.Controller
		if ctrl == nil {
			continue
		}

		x := float64(b.Min.X) + cfg.HUD.Margin
		if player.Index == 1 {
			x = float64(b.Max.X) - cfg.HUD.Margin - cfg.HUD.BarWidth
		}
		y := float64(b.Min.Y) + cfg.HUD.Margin

		text.Draw(screen, fmt.Sprintf("P%d  hits %d", player.Index+1, player.Hits), face, int(x), int(y)+8, cfg.HUD.TextColor)
		y += 12

		for _, k := range []ability.Kind{ability.Dash, ability.Invisible} {
			if !ctrl.Has(k) {
				continue
			}
			text.Draw(screen, hudLabels[k], face, int(x), int(y)+8, cfg.HUD.TextColor)
			drawAbilityBar(screen, x, y+10, ctrl, k)
			y += lineHeight
		}
	}
}

func drawAbilityBar(screen *ebiten.Image, x, y float64, ctrl *ability.Controller, k ability.Kind) {
	w, h := float32(cfg.HUD.BarWidth), float32(cfg.HUD.BarHeight)
	vector.FillRect(screen, float32(x), float32(y), w, h, cfg.HUD.BarBgColor, false)

	fill := AbilityFill(ctrl, k)
	c := cfg.HUD.BusyColor
	if ctrl.Phase(k) == ability.Ready {
		c = cfg.HUD.ReadyColor
	}
	vector.FillRect(screen, float32(x), float32(y), w*float32(fill), h, c, false)
}

// AbilityFill is how full the HUD bar of k is: draining while active,
// refilling during cooldown, full when ready.
func AbilityFill(ctrl *ability.Controller, k ability.Kind) float64 {
	active, cooldown := ctrl.Window(k)
	left := ctrl.Remaining(k)
	switch ctrl.Phase(k) {
	case ability.Active:
		return ratio(left, active)
	case ability.Cooldown:
		return 1 - ratio(left, cooldown)
	}
	if !ctrl.Has(k) {
		return 0
	}
	return 1
}

func ratio(v, total float64) float64 {
	if total <= 0 {
		return 0
	}
	r := v / total
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
