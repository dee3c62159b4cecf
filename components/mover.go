package components

import (
	"github.com/automoto/stretch/physics"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MoverData drives a block between Origin and Origin+Travel. The tween
// yields progress from 0 to 1 and back.
type MoverData struct {
	Origin physics.Vector
	Travel physics.Vector
	Tween  *gween.Sequence
}

var Mover = donburi.NewComponentType[MoverData]()
