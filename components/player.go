package components

import (
	"github.com/automoto/duodash/ability"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Index      int
	Name       string
	Controller *ability.Controller

	// Enemy objects overlapped last tick, for enter-only trigger events.
	Touching map[*donburi.Entry]struct{}

	SpawnX, SpawnY float64
	Hits           int // enemy contacts, shown on the HUD
}

var Player = donburi.NewComponentType[PlayerData]()
