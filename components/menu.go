package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MenuData animates the main menu title.
type MenuData struct {
	Pulse  *gween.Tween
	Rising bool
	Alpha  float64
}

var Menu = donburi.NewComponentType[MenuData]()
