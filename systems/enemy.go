package systems

import (
	"github.com/automoto/stretch/components"
	cfg "github.com/automoto/stretch/config"
	"github.com/automoto/stretch/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies resolves stomps and contact damage against the player and
// steers enemies toward a player inside their detection zone.
func UpdateEnemies(ecs *ecs.ECS) {
	state := levelState(ecs)
	pe, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	pb := components.Body.Get(pe).Body
	player := components.Player.Get(pe)
	playerHealth := components.Health.Get(pe)

	var defeated []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(tags.Retired) {
			return
		}
		eb := components.Body.Get(e).Body
		health := components.Health.Get(e)
		ebox := eb.Bounds()
		pbox := pb.Bounds()
		zones := ZonesFor(ebox)

		switch {
		case pbox.Overlaps(zones.Vulnerable):
			health.Damage(cfg.Player.FormSize(player.Form).StompDamage)
			bumpPlayer(pb, ebox)
			bumpEnemy(eb, pbox)
			state.Emit(components.EventEnemyHurt)
			if health.Depleted() {
				defeated = append(defeated, e)
				return
			}
		case pbox.Overlaps(zones.Damage):
			playerHealth.Damage(cfg.Enemy.ContactDamage)
			bumpPlayer(pb, ebox)
			bumpEnemy(eb, pbox)
			state.Emit(components.EventHurt)
		}

		speed := components.Enemy.Get(e).Speed
		switch {
		case !pbox.Overlaps(zones.Detection):
			eb.SetVelocityX(0)
		case pbox.CenterX() < ebox.CenterX():
			eb.SetVelocityX(-speed)
		default:
			eb.SetVelocityX(speed)
		}
	})

	for _, e := range defeated {
		components.Body.Get(e).SetVelocityX(0)
		retire(e)
		state.Score += cfg.Scoring.EnemyDefeated
		state.Emit(components.EventEnemyDefeated)
	}
}
