package archetypes

import (
	"github.com/automoto/stretch/components"
	cfg "github.com/automoto/stretch/config"
	"github.com/automoto/stretch/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Solid = newArchetype(
		tags.Solid,
		components.Block,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Block,
		components.Mover,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Block,
		components.Object,
	)
	Finish = newArchetype(
		tags.Finish,
		components.Block,
		components.Object,
	)
	Gem = newArchetype(
		tags.Gem,
		components.Area,
		components.Object,
	)
	Decor = newArchetype(
		tags.Decor,
		components.Area,
	)
	Crate = newArchetype(
		tags.Crate,
		components.Body,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Health,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Body,
		components.Health,
	)
	Space = newArchetype(
		components.Space,
	)
	LevelState = newArchetype(
		components.LevelState,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
