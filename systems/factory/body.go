package factory

import (
	"github.com/automoto/stretch/archetypes"
	"github.com/automoto/stretch/components"
	cfg "github.com/automoto/stretch/config"
	"github.com/automoto/stretch/physics"
	"github.com/automoto/stretch/shared/leveldata"
	"github.com/automoto/stretch/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

func CreateCrate(ecs *ecs.ECS, s leveldata.Spawn) *donburi.Entry {
	crate := archetypes.Crate.Spawn(ecs)
	b := physics.NewBody(s.X, s.Y,
		orDefault(s.W, cfg.Physics.CrateWidth),
		orDefault(s.H, cfg.Physics.CrateHeight),
		orDefault(s.Mass, cfg.Physics.CrateMass))
	b.SetGravity(orDefault(s.Gravity, cfg.Physics.Gravity))
	components.Body.SetValue(crate, components.BodyData{Body: b})
	register(ecs, crate)
	return crate
}

// CreatePlayer spawns the player in its normal form with the spawn's bottom
// centre as anchor.
func CreatePlayer(ecs *ecs.ECS, space *resolv.Space, s leveldata.Spawn) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	form := cfg.Player.Normal
	x, y := s.X, s.Y
	if s.W > 0 && s.H > 0 {
		x = s.X + s.W/2 - form.Width/2
		y = s.Y + s.H - form.Height
	}
	b := physics.NewBody(x, y, form.Width, form.Height, form.Mass)
	b.SetGravity(orDefault(s.Gravity, cfg.Physics.Gravity))

	data := components.PlayerData{Form: cfg.FormNormal}
	if s.Bounce {
		data.Bounce = physics.NewBounceLanding()
		b.SetLanding(data.Bounce)
	}
	components.Player.SetValue(player, data)
	components.Body.SetValue(player, components.BodyData{Body: b})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.MaxHealth,
	})

	trigger(space, player, x, y, form.Width, form.Height, tags.ResolvPlayer)
	register(ecs, player)
	return player
}

func CreateEnemy(ecs *ecs.ECS, s leveldata.Spawn) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	b := physics.NewBody(s.X, s.Y,
		orDefault(s.W, cfg.Enemy.Width),
		orDefault(s.H, cfg.Enemy.Height),
		orDefault(s.Mass, cfg.Enemy.Mass))
	b.SetGravity(orDefault(s.Gravity, cfg.Enemy.Gravity))
	components.Body.SetValue(enemy, components.BodyData{Body: b})

	health := cfg.Enemy.Health
	if s.Health > 0 {
		health = s.Health
	}
	components.Health.SetValue(enemy, components.HealthData{Current: health, Max: health})
	components.Enemy.SetValue(enemy, components.EnemyData{Speed: orDefault(s.Speed, cfg.Enemy.Speed)})

	register(ecs, enemy)
	return enemy
}
