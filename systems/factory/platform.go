package factory

import (
	"github.com/automoto/stretch/archetypes"
	"github.com/automoto/stretch/components"
	"github.com/automoto/stretch/physics"
	"github.com/automoto/stretch/shared/leveldata"
	"github.com/automoto/stretch/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const defaultLegDuration = 2

func CreateSolid(ecs *ecs.ECS, s leveldata.Spawn) *donburi.Entry {
	solid := archetypes.Solid.Spawn(ecs)
	components.Block.SetValue(solid, components.BlockData{Block: physics.NewBlock(s.X, s.Y, s.W, s.H)})
	register(ecs, solid)
	return solid
}

// CreatePlatform spawns a block that travels to its destination and back,
// driven by a *gween.Sequence yielding progress along the path.
func CreatePlatform(ecs *ecs.ECS, s leveldata.Spawn) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	components.Block.SetValue(platform, components.BlockData{Block: physics.NewBlock(s.X, s.Y, s.W, s.H)})

	leg := float32(s.Duration)
	if leg <= 0 {
		leg = defaultLegDuration
	}
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, 1, leg, ease.InOutSine),
		gween.New(1, 0, leg, ease.InOutSine),
	)
	components.Mover.SetValue(platform, components.MoverData{
		Origin: physics.Vector{X: s.X, Y: s.Y},
		Travel: physics.Vector{X: s.TravelX, Y: s.TravelY},
		Tween:  tw,
	})
	register(ecs, platform)
	return platform
}

func CreateHazard(ecs *ecs.ECS, space *resolv.Space, s leveldata.Spawn) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(ecs)
	components.Block.SetValue(hazard, components.BlockData{Block: physics.NewBlock(s.X, s.Y, s.W, s.H)})
	trigger(space, hazard, s.X, s.Y, s.W, s.H, tags.ResolvHazard)
	register(ecs, hazard)
	return hazard
}

func CreateFinish(ecs *ecs.ECS, space *resolv.Space, s leveldata.Spawn) *donburi.Entry {
	finish := archetypes.Finish.Spawn(ecs)
	// The portal is walked into, never stood on.
	portal := physics.NewBlock(s.X, s.Y, s.W, s.H)
	portal.SetSolid(false)
	components.Block.SetValue(finish, components.BlockData{Block: portal})
	trigger(space, finish, s.X, s.Y, s.W, s.H, tags.ResolvFinish)
	register(ecs, finish)
	return finish
}

func CreateGem(ecs *ecs.ECS, space *resolv.Space, s leveldata.Spawn) *donburi.Entry {
	gem := archetypes.Gem.Spawn(ecs)
	components.Area.SetValue(gem, components.AreaData{Box: physics.AABB{X: s.X, Y: s.Y, W: s.W, H: s.H}})
	trigger(space, gem, s.X, s.Y, s.W, s.H, tags.ResolvGem)
	return gem
}

func CreateDecor(ecs *ecs.ECS, s leveldata.Spawn) *donburi.Entry {
	decor := archetypes.Decor.Spawn(ecs)
	components.Area.SetValue(decor, components.AreaData{
		Box:   physics.AABB{X: s.X, Y: s.Y, W: s.W, H: s.H},
		Label: s.Name,
	})
	return decor
}
