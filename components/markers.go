package components

import "github.com/yohamta/donburi"

// EnemyData marks a trigger volume that reports contact to players.
type EnemyData struct {
	Name string
}

var Enemy = donburi.NewComponentType[EnemyData]()
