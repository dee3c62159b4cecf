package systems

import (
	"github.com/automoto/stretch/components"
	"github.com/automoto/stretch/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func levelState(ecs *ecs.ECS) *components.LevelStateData {
	return components.LevelState.Get(components.LevelState.MustFirst(ecs.World))
}

// retire marks e for removal at the end of the tick.
func retire(e *donburi.Entry) {
	if !e.HasComponent(tags.Retired) {
		e.AddComponent(tags.Retired)
	}
}
