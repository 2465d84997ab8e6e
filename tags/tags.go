package tags

import "github.com/yohamta/donburi"

var (
	Player  = donburi.NewTag().SetName("Player")
	Ground  = donburi.NewTag().SetName("Ground")
	Wall    = donburi.NewTag().SetName("Wall")
	Through = donburi.NewTag().SetName("Through")
	Enemy   = donburi.NewTag().SetName("Enemy")
	Ghost   = donburi.NewTag().SetName("Ghost")
)

// Resolv tags for physics collision
const (
	ResolvSolid   = "solid"
	ResolvGround  = "ground"
	ResolvThrough = "Through"
	ResolvEnemy   = "Enemy"
	ResolvPlayer  = "Player"
)
