package systems

import (
	"math"
	"testing"

	"github.com/automoto/stretch/components"
	cfg "github.com/automoto/stretch/config"
	"github.com/automoto/stretch/physics"
	"github.com/automoto/stretch/shared/leveldata"
	"github.com/automoto/stretch/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS(t *testing.T) (*ecs.ECS, *resolv.Space) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateLevelState(e, "test", 300)
	space := components.Space.Get(factory.CreateSpace(e, 4000, 2000, 50, 50))
	return e, space
}

func spawnPlayer(e *ecs.ECS, space *resolv.Space, x, y float64) *donburi.Entry {
	return factory.CreatePlayer(e, space, leveldata.Spawn{Kind: leveldata.KindPlayer, X: x, Y: y})
}

func TestFormTargets(t *testing.T) {
	tests := []struct {
		name        string
		from        cfg.Form
		grow        bool
		want        cfg.Form
		wantChecked bool
	}{
		{"grow from normal", cfg.FormNormal, true, cfg.FormBig, true},
		{"grow from big", cfg.FormBig, true, cfg.FormNormal, false},
		{"grow from small", cfg.FormSmall, true, cfg.FormBig, true},
		{"shrink from normal", cfg.FormNormal, false, cfg.FormSmall, false},
		{"shrink from small", cfg.FormSmall, false, cfg.FormNormal, true},
		{"shrink from big", cfg.FormBig, false, cfg.FormSmall, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := shrinkTarget
			if tt.grow {
				target = growTarget
			}
			got, checked := target(tt.from)
			if got != tt.want || checked != tt.wantChecked {
				t.Errorf("got %v (checked %v), want %v (checked %v)", got, checked, tt.want, tt.wantChecked)
			}
		})
	}
}

func TestGrowNeedsRoom(t *testing.T) {
	e, space := newTestECS(t)
	factory.CreateSolid(e, leveldata.Spawn{X: 0, Y: 1000, W: 3000, H: 100})
	ceiling := factory.CreateSolid(e, leveldata.Spawn{X: 0, Y: 700, W: 3000, H: 50})
	pe := spawnPlayer(e, space, 500, 1000-169)

	state := levelState(e)
	state.Input = components.Input{Grow: true}
	UpdatePlayer(e)

	if got := components.Player.Get(pe).Form; got != cfg.FormNormal {
		t.Fatalf("grew under a low ceiling, form = %v", got)
	}

	components.Block.Get(ceiling).MoveTo(0, 100)
	UpdatePlayer(e)

	b := components.Body.Get(pe).Body
	if got := components.Player.Get(pe).Form; got != cfg.FormBig {
		t.Fatalf("form = %v, want big", got)
	}
	if w, h := b.Size(); w != cfg.Player.Big.Width || h != cfg.Player.Big.Height {
		t.Errorf("size = %vx%v", w, h)
	}
	if b.Mass() != cfg.Player.Big.Mass {
		t.Errorf("mass = %v", b.Mass())
	}
	if b.Bounds().Bottom() != 1000 {
		t.Errorf("feet moved to %v", b.Bounds().Bottom())
	}
}

func TestMovementInput(t *testing.T) {
	tests := []struct {
		name string
		in   components.Input
		want float64
	}{
		{"left", components.Input{Left: true}, -5},
		{"right", components.Input{Right: true}, 5},
		{"both", components.Input{Left: true, Right: true}, 0},
		{"none", components.Input{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, space := newTestECS(t)
			pe := spawnPlayer(e, space, 500, 500)
			levelState(e).Input = tt.in

			UpdatePlayer(e)

			if got := components.Body.Get(pe).Velocity().X; got != tt.want {
				t.Errorf("vx = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestZonesFor(t *testing.T) {
	z := ZonesFor(physics.AABB{X: 1000, Y: 820, W: 180, H: 180})

	if z.Detection.W != 780 || z.Detection.H != 780 || z.Detection.CenterX() != 1090 {
		t.Errorf("detection = %+v", z.Detection)
	}
	if z.Damage.W != 200 || z.Damage.Y != 830 {
		t.Errorf("damage = %+v", z.Damage)
	}
	if z.Vulnerable.W != 160 || z.Vulnerable.Y != 810 || z.Vulnerable.H != 20 {
		t.Errorf("vulnerable = %+v", z.Vulnerable)
	}
}

func TestHazardHurtsAndBumps(t *testing.T) {
	e, space := newTestECS(t)
	factory.CreateHazard(e, space, leveldata.Spawn{X: 500, Y: 950, W: 150, H: 50})
	pe := spawnPlayer(e, space, 450, 950-169)

	UpdateTriggers(e)

	if got := components.Health.Get(pe).Current; got != cfg.Player.Health-cfg.Player.HazardDamage {
		t.Errorf("health = %d", got)
	}
	b := components.Body.Get(pe).Body
	if b.Velocity().Y != cfg.Player.BumpUp {
		t.Errorf("vy = %v, want %v", b.Velocity().Y, cfg.Player.BumpUp)
	}
	if b.Impulse().X != -cfg.Player.BumpImpulse {
		t.Errorf("impulse = %+v", b.Impulse())
	}
}

func TestGemCollectedAndRemovedAfterTick(t *testing.T) {
	e, space := newTestECS(t)
	gem := factory.CreateGem(e, space, leveldata.Spawn{X: 700, Y: 900, W: 60, H: 60})
	pe := spawnPlayer(e, space, 600, 960-169)
	components.Health.Get(pe).Current = 190

	UpdateTriggers(e)

	state := levelState(e)
	if state.Score != cfg.Scoring.Gem {
		t.Errorf("score = %d", state.Score)
	}
	if got := components.Health.Get(pe).Current; got != cfg.Player.MaxHealth {
		t.Errorf("health = %d, want capped at %d", got, cfg.Player.MaxHealth)
	}
	if !e.World.Valid(gem.Entity()) {
		t.Fatal("gem removed before cleanup")
	}

	UpdateCleanup(e)

	if e.World.Valid(gem.Entity()) {
		t.Error("gem still in the world after cleanup")
	}
	UpdateTriggers(e)
	if state.Score != cfg.Scoring.Gem {
		t.Errorf("gem collected twice, score = %d", state.Score)
	}
}

func TestStompDefeatsEnemy(t *testing.T) {
	e, space := newTestECS(t)
	enemy := factory.CreateEnemy(e, leveldata.Spawn{X: 1000, Y: 820, W: 180, H: 180, Health: 80})
	spawnPlayer(e, space, 980, 820-169)

	state := levelState(e)
	before := len(state.Candidates)

	UpdateEnemies(e)

	if state.Score != cfg.Scoring.EnemyDefeated {
		t.Errorf("score = %d", state.Score)
	}
	if len(state.Candidates) != before {
		t.Fatal("candidate list changed before cleanup")
	}

	UpdateCleanup(e)

	if e.World.Valid(enemy.Entity()) {
		t.Error("enemy not removed")
	}
	if len(state.Candidates) != before-1 || len(state.Entities) != len(state.Candidates) {
		t.Errorf("candidates = %d, entities = %d, want %d", len(state.Candidates), len(state.Entities), before-1)
	}
}

func TestBumpEnemy(t *testing.T) {
	player := physics.AABB{X: 500, Y: 500, W: 225, H: 169}
	tests := []struct {
		name string
		x, y float64
		want physics.Vector
	}{
		{"above and left", 300, 300, physics.Vector{X: -cfg.Enemy.BumpImpulse, Y: cfg.Enemy.BumpUp}},
		{"beside on the right", 800, 500, physics.Vector{X: cfg.Enemy.BumpImpulse}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := physics.NewBody(tt.x, tt.y, 180, 180, 1)
			bumpEnemy(b, player)

			if got := b.Impulse(); !got.Equals(tt.want) {
				t.Errorf("impulse = %+v, want %+v", got, tt.want)
			}
			if got := b.Velocity().Y; got != 0 {
				t.Errorf("vy = %v, want 0", got)
			}
		})
	}
}

func TestEnemyContactAndChase(t *testing.T) {
	e, space := newTestECS(t)
	enemy := factory.CreateEnemy(e, leveldata.Spawn{X: 1000, Y: 820, W: 180, H: 180})
	pe := spawnPlayer(e, space, 800, 831)

	UpdateEnemies(e)

	if got := components.Health.Get(pe).Current; got != cfg.Player.Health-cfg.Enemy.ContactDamage {
		t.Errorf("player health = %d", got)
	}
	if got := components.Body.Get(enemy).Velocity().X; got != -cfg.Enemy.Speed {
		t.Errorf("enemy vx = %v, want chase left", got)
	}

	components.Body.Get(pe).SetPosition(3000, 831)
	UpdateEnemies(e)
	if got := components.Body.Get(enemy).Velocity().X; got != 0 {
		t.Errorf("enemy vx = %v, want idle", got)
	}
}

func TestRulesOutcome(t *testing.T) {
	tests := []struct {
		name      string
		health    int
		atFinish  bool
		want      components.Outcome
		wantScore int
	}{
		{"playing", 100, false, components.Continue, 0},
		{"dead", 0, false, components.Lost, 0},
		{"dead at the finish", -5, true, components.Lost, 0},
		{"finished", 150, true, components.Won, 150*3 + 300*2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, space := newTestECS(t)
			pe := spawnPlayer(e, space, 100, 100)
			components.Health.Get(pe).Current = tt.health
			state := levelState(e)
			state.AtFinish = tt.atFinish

			UpdateRules(e)

			if state.Outcome != tt.want {
				t.Errorf("outcome = %v, want %v", state.Outcome, tt.want)
			}
			if state.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", state.Score, tt.wantScore)
			}
		})
	}
}

func TestClockStopsAtZero(t *testing.T) {
	e, space := newTestECS(t)
	spawnPlayer(e, space, 100, 100)
	state := levelState(e)
	state.SecondsLeft = 1

	for i := 0; i < 3*cfg.Level.TicksPerSecond; i++ {
		UpdateRules(e)
	}

	if state.SecondsLeft != 0 {
		t.Errorf("seconds left = %d", state.SecondsLeft)
	}
}

func TestFallDamage(t *testing.T) {
	e, space := newTestECS(t)
	pe := spawnPlayer(e, space, 100, 100)
	components.Body.Get(pe).SetVelocityY(cfg.Player.FallDamageSpeed + 1)

	UpdateRules(e)

	if got := components.Health.Get(pe).Current; got != cfg.Player.Health-cfg.Player.FallDamage {
		t.Errorf("health = %d", got)
	}
}

func TestPlatformCarriesRider(t *testing.T) {
	e, _ := newTestECS(t)
	platform := factory.CreatePlatform(e, leveldata.Spawn{X: 1000, Y: 800, W: 300, H: 40, TravelX: 600, Duration: 1})
	crate := factory.CreateCrate(e, leveldata.Spawn{X: 1050, Y: 650, W: 150, H: 150})

	UpdatePhysics(e)
	b := components.Body.Get(crate).Body
	if !b.Supported() {
		t.Fatal("crate not resting on the platform")
	}

	UpdatePlatforms(e)

	dx := components.Block.Get(platform).Bounds().X - 1000
	if dx <= 0 {
		t.Fatalf("platform did not move, dx = %v", dx)
	}
	if got := b.Position().X - 1050; math.Abs(got-dx) > 1e-9 {
		t.Errorf("crate moved %v, platform moved %v", got, dx)
	}
}
