package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state. The pause panel itself is an ebitenui
// widget tree owned by the scene.
type PauseData struct {
	IsPaused    bool
	OptionsOpen bool
}

var Pause = donburi.NewComponentType[PauseData]()

// TimeData carries the global time scale: 0 while paused, 1 in play.
type TimeData struct {
	Scale float64
}

var Time = donburi.NewComponentType[TimeData]()
