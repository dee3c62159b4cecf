package factory

import (
	"github.com/automoto/stretch/archetypes"
	"github.com/automoto/stretch/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

func CreateLevelState(ecs *ecs.ECS, name string, secondsLeft int) *donburi.Entry {
	state := archetypes.LevelState.Spawn(ecs)
	components.LevelState.SetValue(state, components.LevelStateData{
		Name:        name,
		SecondsLeft: secondsLeft,
	})
	return state
}

// register appends the entry's collider to the ordered candidate list.
func register(ecs *ecs.ECS, e *donburi.Entry) {
	c, ok := components.Collider(e)
	if !ok {
		return
	}
	state := components.LevelState.MustFirst(ecs.World)
	ls := components.LevelState.Get(state)
	ls.Candidates = append(ls.Candidates, c)
	ls.Entities = append(ls.Entities, e.Entity())
}

// trigger creates a resolv object over box and adds it to the space.
func trigger(space *resolv.Space, e *donburi.Entry, x, y, w, h float64, tag string) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = e
	space.Add(obj)
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	return obj
}
