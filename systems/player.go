package systems

import (
	"github.com/automoto/stretch/components"
	cfg "github.com/automoto/stretch/config"
	"github.com/automoto/stretch/physics"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns the tick's input into velocity, jumps and size changes.
func UpdatePlayer(ecs *ecs.ECS) {
	state := levelState(ecs)
	e, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}

	in := state.Input
	b := components.Body.Get(e).Body
	player := components.Player.Get(e)

	switch {
	case in.Left && !in.Right:
		b.SetVelocityX(-cfg.Player.MoveSpeed)
	case in.Right && !in.Left:
		b.SetVelocityX(cfg.Player.MoveSpeed)
	default:
		b.SetVelocityX(0)
	}

	if in.Jump && b.Supported() && !player.Bouncing() {
		b.AddVelocity(physics.Vector{Y: cfg.Player.JumpSpeed})
		state.Emit(components.EventJump)
	}

	if in.Grow {
		to, checked := growTarget(player.Form)
		if changeForm(state.Candidates, b, player, to, checked) {
			state.Emit(components.EventResize)
		}
	}
	if in.Shrink {
		to, checked := shrinkTarget(player.Form)
		if changeForm(state.Candidates, b, player, to, checked) {
			state.Emit(components.EventResize)
		}
	}
}

// growTarget returns the form Grow leads to and whether it needs free space.
// Any form but big grows straight to big; big returns to normal.
func growTarget(f cfg.Form) (cfg.Form, bool) {
	if f == cfg.FormBig {
		return cfg.FormNormal, false
	}
	return cfg.FormBig, true
}

// shrinkTarget returns the form Shrink leads to and whether it needs free space.
// Any form but small shrinks straight to small; small returns to normal.
func shrinkTarget(f cfg.Form) (cfg.Form, bool) {
	if f == cfg.FormSmall {
		return cfg.FormNormal, true
	}
	return cfg.FormSmall, false
}

func changeForm(candidates []physics.Collider, b *physics.Body, player *components.PlayerData, to cfg.Form, checked bool) bool {
	size := cfg.Player.FormSize(to)
	if checked && !hasRoom(candidates, b, size.Width, size.Height) {
		return false
	}
	b.Resize(size.Width, size.Height)
	b.SetMass(size.Mass)
	player.Form = to
	return true
}

// hasRoom reports whether a w x h box anchored at b's bottom centre, lifted
// one unit off the floor, is clear of every other solid.
func hasRoom(candidates []physics.Collider, b *physics.Body, w, h float64) bool {
	box := b.Bounds()
	probe := physics.AABB{X: box.CenterX() - w/2, Y: box.Bottom() - h - 1, W: w, H: h}
	for _, c := range candidates {
		if c == physics.Collider(b) || !c.Solid() {
			continue
		}
		if probe.Overlaps(c.Bounds()) {
			return false
		}
	}
	return true
}
