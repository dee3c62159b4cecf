package systems

import (
	"github.com/automoto/stretch/components"
	"github.com/automoto/stretch/physics"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics runs one resolver pass over the ordered candidate list.
func UpdatePhysics(ecs *ecs.ECS) {
	state := levelState(ecs)
	physics.Step(state.Candidates)

	if e, ok := components.Player.First(ecs.World); ok {
		if components.Body.Get(e).LastContact() == physics.ContactBounced {
			state.Emit(components.EventBounce)
		}
	}
}
