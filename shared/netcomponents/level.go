package netcomponents

import "github.com/yohamta/donburi"

// NetLevelData is the level's HUD state, synced once per tick.
type NetLevelData struct {
	Name        string
	Score       int
	SecondsLeft int
	Health      int
	MaxHealth   int
	Form        int
	Outcome     int
}

var NetLevel = donburi.NewComponentType[NetLevelData]()
