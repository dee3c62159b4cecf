package components

import (
	"github.com/automoto/stretch/config"
	"github.com/automoto/stretch/physics"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Form config.Form
	// Bounce is set when the player lands with a BounceLanding.
	Bounce *physics.BounceLanding
}

// Bouncing reports whether the player is mid bounce and may not jump.
func (p *PlayerData) Bouncing() bool {
	return p.Bounce != nil && p.Bounce.Bouncing()
}

type EnemyData struct {
	Speed float64
}

var Player = donburi.NewComponentType[PlayerData]()
var Enemy = donburi.NewComponentType[EnemyData]()
