package systems

import (
	"github.com/automoto/stretch/components"
	"github.com/automoto/stretch/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCleanup removes retired entities from the candidate list, the
// trigger space and the world. It runs after every rule so no system sees
// the list change mid pass.
func UpdateCleanup(ecs *ecs.ECS) {
	var retired []*donburi.Entry
	tags.Retired.Each(ecs.World, func(e *donburi.Entry) {
		retired = append(retired, e)
	})
	if len(retired) == 0 {
		return
	}

	state := levelState(ecs)
	space := components.Space.Get(components.Space.MustFirst(ecs.World))

	gone := make(map[donburi.Entity]bool, len(retired))
	for _, e := range retired {
		gone[e.Entity()] = true
		if e.HasComponent(components.Object) {
			space.Remove(components.Object.Get(e).Object)
		}
	}

	n := 0
	for i, ent := range state.Entities {
		if gone[ent] {
			continue
		}
		state.Candidates[n] = state.Candidates[i]
		state.Entities[n] = ent
		n++
	}
	clear(state.Candidates[n:])
	state.Candidates = state.Candidates[:n]
	state.Entities = state.Entities[:n]

	for _, e := range retired {
		ecs.World.Remove(e.Entity())
	}
}
