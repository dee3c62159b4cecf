package systems

import (
	"github.com/automoto/stretch/components"
	cfg "github.com/automoto/stretch/config"
	"github.com/automoto/stretch/physics"
	"github.com/automoto/stretch/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTriggers moves the player's probe in the resolv space and applies
// hazards, gem pickups and the finish check.
func UpdateTriggers(ecs *ecs.ECS) {
	state := levelState(ecs)
	pe, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	b := components.Body.Get(pe).Body
	health := components.Health.Get(pe)
	box := b.Bounds()

	// Grown by one unit so touching edges reach neighbouring cells.
	probe := components.Object.Get(pe).Object
	probe.X, probe.Y = box.X-1, box.Y-1
	probe.W, probe.H = box.W+2, box.H+2
	probe.Update()

	if hazards := touching(probe, box, tags.ResolvHazard); len(hazards) > 0 {
		hb, _ := components.Bounds(hazards[0])
		health.Damage(cfg.Player.HazardDamage)
		bumpPlayer(b, hb)
		state.Emit(components.EventHurt)
	}

	for _, gem := range touching(probe, box, tags.ResolvGem) {
		if gem.HasComponent(tags.Retired) {
			continue
		}
		retire(gem)
		state.Score += cfg.Scoring.Gem
		health.Heal(cfg.Scoring.GemHeal)
		state.Emit(components.EventGemCollected)
	}

	state.AtFinish = len(touching(probe, box, tags.ResolvFinish)) > 0
}

// touching returns the entries behind objects with tag whose boxes overlap
// box. Cell neighbours that do not actually overlap are dropped.
func touching(probe *resolv.Object, box physics.AABB, tag string) []*donburi.Entry {
	col := probe.Check(0, 0, tag)
	if col == nil {
		return nil
	}
	var out []*donburi.Entry
	for _, o := range col.Objects {
		e, ok := o.Data.(*donburi.Entry)
		if !ok || !e.Valid() {
			continue
		}
		if zone, ok := components.Bounds(e); ok && box.Overlaps(zone) {
			out = append(out, e)
		}
	}
	return out
}
