package components

import (
	"github.com/automoto/stretch/physics"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its trigger zone in the resolv space.
type ObjectData struct {
	*resolv.Object
}

// AreaData is a box for entities with no collider, such as gems and labels.
type AreaData struct {
	Box   physics.AABB
	Label string
}

var Object = donburi.NewComponentType[ObjectData]()
var Area = donburi.NewComponentType[AreaData]()
var Space = donburi.NewComponentType[resolv.Space]()
