package components

import (
	"github.com/automoto/duodash/assets"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *assets.Level
	LevelIndex   int
}

var Level = donburi.NewComponentType[LevelData]()
