// Package level builds a playable world from parsed level data and steps it
// one tick at a time. Callers drive it with Input and read back an Outcome,
// the tick's events and immutable snapshots for rendering or network sync.
package level

import (
	"fmt"
	"log"

	"github.com/automoto/stretch/components"
	cfg "github.com/automoto/stretch/config"
	"github.com/automoto/stretch/physics"
	"github.com/automoto/stretch/shared/leveldata"
	"github.com/automoto/stretch/systems"
	"github.com/automoto/stretch/systems/factory"
	"github.com/automoto/stretch/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Cell size of the trigger space, in world units.
const spaceCell = 50

type (
	Input   = components.Input
	Outcome = components.Outcome
	Event   = components.Event
)

const (
	Continue = components.Continue
	Lost     = components.Lost
	Won      = components.Won
)

const (
	EventJump          = components.EventJump
	EventBounce        = components.EventBounce
	EventResize        = components.EventResize
	EventHurt          = components.EventHurt
	EventEnemyHurt     = components.EventEnemyHurt
	EventEnemyDefeated = components.EventEnemyDefeated
	EventGemCollected  = components.EventGemCollected
	EventLevelBeaten   = components.EventLevelBeaten
	EventLevelLost     = components.EventLevelLost
)

// BodyState is a copy of one entity's render state after a tick.
type BodyState struct {
	Entity donburi.Entity
	Kind   leveldata.Kind
	Box    physics.AABB
	Label  string
}

// HUD is the player-facing status after a tick.
type HUD struct {
	Health      int
	MaxHealth   int
	Score       int
	SecondsLeft int
	Form        cfg.Form
}

// Level owns one world. It is not safe for concurrent use.
type Level struct {
	name  string
	ecs   *ecs.ECS
	state *components.LevelStateData

	events []Event
}

// New builds a level. Spawns are created in file order, which fixes the
// order bodies are resolved in every tick.
func New(data *leveldata.LevelData) (*Level, error) {
	if _, ok := data.PlayerSpawn(); !ok {
		return nil, fmt.Errorf("level %q: %w", data.Name, leveldata.ErrNoPlayerSpawn)
	}

	e := ecs.NewECS(donburi.NewWorld())

	seconds := data.TimeLimit
	if seconds <= 0 {
		seconds = cfg.Level.DefaultTimeLimit
	}
	stateEntry := factory.CreateLevelState(e, data.Name, seconds)
	space := components.Space.Get(factory.CreateSpace(e, data.Width, data.Height, spaceCell, spaceCell))

	playerSpawned := false
	for _, s := range data.Spawns {
		switch s.Kind {
		case leveldata.KindSolid:
			factory.CreateSolid(e, s)
		case leveldata.KindPlatform:
			factory.CreatePlatform(e, s)
		case leveldata.KindHazard:
			factory.CreateHazard(e, space, s)
		case leveldata.KindFinish:
			factory.CreateFinish(e, space, s)
		case leveldata.KindGem:
			factory.CreateGem(e, space, s)
		case leveldata.KindDecor:
			factory.CreateDecor(e, s)
		case leveldata.KindCrate:
			factory.CreateCrate(e, s)
		case leveldata.KindEnemy:
			factory.CreateEnemy(e, s)
		case leveldata.KindPlayer:
			// Extra player spawns are ignored.
			if playerSpawned {
				continue
			}
			factory.CreatePlayer(e, space, s)
			playerSpawned = true
		}
	}

	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdatePlatforms)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateEnemies)
	e.AddSystem(systems.UpdateTriggers)
	e.AddSystem(systems.UpdateRules)
	e.AddSystem(systems.UpdateCleanup)

	l := &Level{
		name:  data.Name,
		ecs:   e,
		state: components.LevelState.Get(stateEntry),
	}
	log.Printf("[level] %s ready: %d colliders, %ds on the clock", l.name, len(l.state.Candidates), seconds)
	return l, nil
}

// Step runs one tick. Once the level is won or lost it stays that way and
// further steps do nothing.
func (l *Level) Step(in Input) Outcome {
	if l.state.Outcome != Continue {
		l.events = nil
		return l.state.Outcome
	}
	l.state.Events = l.state.Events[:0]
	l.state.Input = in

	l.ecs.Update()

	l.events = append(l.events[:0], l.state.Events...)
	return l.state.Outcome
}

// Events returns what happened during the last Step.
func (l *Level) Events() []Event {
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

func (l *Level) Outcome() Outcome { return l.state.Outcome }

func (l *Level) Name() string { return l.name }

// World exposes the underlying world for renderers and tests.
func (l *Level) World() donburi.World { return l.ecs.World }

var kindTags = []struct {
	tag  donburi.IComponentType
	kind leveldata.Kind
}{
	{tags.Player, leveldata.KindPlayer},
	{tags.Enemy, leveldata.KindEnemy},
	{tags.Crate, leveldata.KindCrate},
	{tags.Solid, leveldata.KindSolid},
	{tags.Platform, leveldata.KindPlatform},
	{tags.Hazard, leveldata.KindHazard},
	{tags.Gem, leveldata.KindGem},
	{tags.Finish, leveldata.KindFinish},
	{tags.Decor, leveldata.KindDecor},
}

func kindOf(e *donburi.Entry) leveldata.Kind {
	for _, kt := range kindTags {
		if e.HasComponent(kt.tag) {
			return kt.kind
		}
	}
	return leveldata.KindDecor
}

// Snapshot returns the boxes of every live entity: areas first, then
// blocks, then bodies, with the player last so it draws on top.
func (l *Level) Snapshot() []BodyState {
	var out []BodyState
	var player []BodyState
	add := func(e *donburi.Entry) {
		box, _ := components.Bounds(e)
		bs := BodyState{Entity: e.Entity(), Kind: kindOf(e), Box: box}
		if e.HasComponent(components.Area) {
			bs.Label = components.Area.Get(e).Label
		}
		if bs.Kind == leveldata.KindPlayer {
			player = append(player, bs)
			return
		}
		out = append(out, bs)
	}
	components.Area.Each(l.ecs.World, add)
	components.Block.Each(l.ecs.World, add)
	components.Body.Each(l.ecs.World, add)
	return append(out, player...)
}

// HUD returns the player's status. It is zero valued if the level has no
// player.
func (l *Level) HUD() HUD {
	h := HUD{Score: l.state.Score, SecondsLeft: l.state.SecondsLeft}
	pe, ok := components.Player.First(l.ecs.World)
	if !ok {
		return h
	}
	health := components.Health.Get(pe)
	h.Health, h.MaxHealth = health.Current, health.Max
	h.Form = components.Player.Get(pe).Form
	return h
}

// Player returns a snapshot of the player's box, if one exists.
func (l *Level) Player() (physics.AABB, bool) {
	pe, ok := components.Player.First(l.ecs.World)
	if !ok {
		return physics.AABB{}, false
	}
	return components.Body.Get(pe).Bounds(), true
}
