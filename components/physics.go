package components

import (
	"github.com/automoto/stretch/physics"
	"github.com/yohamta/donburi"
)

type BodyData struct {
	*physics.Body
}

type BlockData struct {
	*physics.Block
}

var Body = donburi.NewComponentType[BodyData]()
var Block = donburi.NewComponentType[BlockData]()

// Collider returns the physics collider attached to the entry, if any.
func Collider(e *donburi.Entry) (physics.Collider, bool) {
	if e.HasComponent(Body) {
		return Body.Get(e).Body, true
	}
	if e.HasComponent(Block) {
		return Block.Get(e).Block, true
	}
	return nil, false
}

// Bounds returns the entry's box from whichever component carries one.
func Bounds(e *donburi.Entry) (physics.AABB, bool) {
	if c, ok := Collider(e); ok {
		return c.Bounds(), true
	}
	if e.HasComponent(Area) {
		return Area.Get(e).Box, true
	}
	return physics.AABB{}, false
}
