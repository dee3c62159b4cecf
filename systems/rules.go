package systems

import (
	"github.com/automoto/stretch/components"
	cfg "github.com/automoto/stretch/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRules applies fall damage, counts the clock down and decides the
// tick's outcome. Losing is checked before winning.
func UpdateRules(ecs *ecs.ECS) {
	state := levelState(ecs)
	pe, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	b := components.Body.Get(pe).Body
	health := components.Health.Get(pe)

	if b.Velocity().Y > cfg.Player.FallDamageSpeed {
		health.Damage(cfg.Player.FallDamage)
	}

	state.Ticks++
	if state.Ticks%cfg.Level.TicksPerSecond == 0 && state.SecondsLeft > 0 {
		state.SecondsLeft--
	}

	switch {
	case health.Depleted():
		state.Outcome = components.Lost
		state.Emit(components.EventLevelLost)
	case state.AtFinish:
		state.Score += health.Current*cfg.Scoring.HealthBonus + state.SecondsLeft*cfg.Scoring.TimeBonus
		state.Outcome = components.Won
		state.Emit(components.EventLevelBeaten)
	}
}
