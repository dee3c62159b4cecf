package systems

import (
	"github.com/automoto/stretch/components"
	cfg "github.com/automoto/stretch/config"
	"github.com/automoto/stretch/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatforms advances every moving platform's tween and carries the
// bodies resting on it.
func UpdatePlatforms(ecs *ecs.ECS) {
	state := levelState(ecs)
	dt := 1 / float32(cfg.Level.TicksPerSecond)

	components.Mover.Each(ecs.World, func(e *donburi.Entry) {
		m := components.Mover.Get(e)
		block := components.Block.Get(e).Block

		t, _, done := m.Tween.Update(dt)
		if done {
			m.Tween.Reset()
		}

		before := block.Bounds()
		block.MoveTo(m.Origin.X+m.Travel.X*float64(t), m.Origin.Y+m.Travel.Y*float64(t))
		after := block.Bounds()
		carry(state.Candidates, before, after.X-before.X, after.Y-before.Y)
	})
}

func carry(candidates []physics.Collider, deck physics.AABB, dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	for _, c := range candidates {
		b, ok := c.(*physics.Body)
		if !ok || !b.Supported() {
			continue
		}
		box := b.Bounds()
		if box.Bottom() != deck.Y || box.Right() < deck.X || deck.Right() < box.X {
			continue
		}
		p := b.Position()
		b.SetPosition(p.X+dx, p.Y+dy)
	}
}
