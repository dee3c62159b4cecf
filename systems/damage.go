package systems

import (
	cfg "github.com/automoto/stretch/config"
	"github.com/automoto/stretch/physics"
)

// bumpPlayer knocks the player away from the box that hurt it.
func bumpPlayer(b *physics.Body, from physics.AABB) {
	box := b.Bounds()
	if box.Below(from) {
		b.SetVelocityY(cfg.Player.BumpDown)
	} else {
		b.SetVelocityY(cfg.Player.BumpUp)
	}
	dx := cfg.Player.BumpImpulse
	if box.ToLeft(from) {
		dx = -dx
	}
	b.AddImpulse(physics.Vector{X: dx}, cfg.Player.BumpDecay)
}

// bumpEnemy knocks an enemy away from the player, hopping it when it sits
// above the player.
func bumpEnemy(b *physics.Body, player physics.AABB) {
	box := b.Bounds()
	bump := physics.Vector{X: cfg.Enemy.BumpImpulse}
	if box.ToLeft(player) {
		bump.X = -bump.X
	}
	if box.Bottom() <= player.Y {
		bump.Y = cfg.Enemy.BumpUp
	}
	b.AddImpulse(bump, cfg.Enemy.BumpDecay)
}

// EnemyZones are the boxes an enemy reacts to, recomputed from its body.
type EnemyZones struct {
	Detection  physics.AABB
	Damage     physics.AABB
	Vulnerable physics.AABB
}

func ZonesFor(box physics.AABB) EnemyZones {
	vw := box.W - cfg.Enemy.VulnerableInset
	return EnemyZones{
		Detection: box.Centered(box.W+cfg.Enemy.DetectionPadding, box.H+cfg.Enemy.DetectionPadding),
		Damage:    box.Centered(box.W+cfg.Enemy.DamagePadding, box.H).Offset(0, cfg.Enemy.DamageOffsetY),
		Vulnerable: physics.AABB{
			X: box.CenterX() - vw/2,
			Y: box.Y - cfg.Enemy.VulnerableHeight/2,
			W: vw,
			H: cfg.Enemy.VulnerableHeight,
		},
	}
}
