package physics

import (
	"math"
	"testing"
)

func weightless(x, y, w, h, mass float64) *Body {
	b := NewBody(x, y, w, h, mass)
	b.SetGravity(0)
	return b
}

func TestPushTransfersHalfVelocity(t *testing.T) {
	a := weightless(0, 0, 100, 100, 1)
	a.SetVelocity(5, 0)
	b := weightless(60, 0, 100, 100, 1)

	frame := []Collider{a, b}
	a.Step(frame)

	if got := b.Position().X; got != 101 {
		t.Fatalf("pushed body x = %v, want 101", got)
	}
	if got := a.Position().X; got != 5 {
		t.Fatalf("pusher x = %v, want 5", got)
	}

	b.Step(frame)
	if got := b.Impulse(); !got.Equals(Vector{X: 2.5}) {
		t.Fatalf("pushed body impulse = %+v, want {2.5 0}", got)
	}
	if got := a.Position().X; got != 0 {
		t.Fatalf("pusher was not separated, x = %v", got)
	}
}

func TestMomentumNeverDropsBelowMass(t *testing.T) {
	light := weightless(0, 0, 100, 100, 1)
	light.SetVelocity(5, 0)
	heavy := weightless(60, 0, 100, 100, 2)

	frame := []Collider{light, heavy}
	Step(frame)

	for _, b := range []*Body{light, heavy} {
		if b.Momentum() < b.Mass() {
			t.Errorf("momentum %v below mass %v", b.Momentum(), b.Mass())
		}
	}
	if light.Momentum() != 2 {
		t.Errorf("pusher momentum = %v, want heavy body's 2", light.Momentum())
	}
}

func TestChainBlockedByWall(t *testing.T) {
	wall := NewBlock(0, 0, 100, 100)
	middle := weightless(95, 0, 100, 100, 1)
	heavy := weightless(140, 0, 200, 100, 2)
	heavy.SetVelocity(-5, 0)

	Step([]Collider{wall, middle, heavy})

	if !middle.Blocked() {
		t.Fatal("middle body should be blocked by the wall")
	}
	if got := middle.Position().X; got != 101 {
		t.Errorf("middle x = %v, want 101", got)
	}
	if got := heavy.Position().X; got != 202 {
		t.Errorf("heavy x = %v, want 202", got)
	}
	if got := heavy.TotalVelocity().X; got != 0 {
		t.Errorf("heavy total x = %v, want 0", got)
	}
	if middle.Bounds().Overlaps(wall.Bounds()) || middle.Bounds().Overlaps(heavy.Bounds()) {
		t.Error("bodies still overlap after the pass")
	}
}

func TestWallStopsWalker(t *testing.T) {
	wall := NewBlock(102, 0, 50, 100)
	walker := weightless(0, 0, 100, 100, 1)
	walker.SetVelocity(5, 0)
	frame := []Collider{wall, walker}

	walker.Step(frame)
	walker.Step(frame)

	if got := walker.Position().X; got != 1 {
		t.Errorf("walker x = %v, want 1", got)
	}
	if !walker.Blocked() {
		t.Error("walker not flagged as blocked")
	}
	if got := walker.TotalVelocity().X; got != 0 {
		t.Errorf("total x = %v, want 0", got)
	}
}

func TestCeilingStopsRise(t *testing.T) {
	ceiling := NewBlock(0, 0, 200, 50)
	b := weightless(50, 45, 50, 50, 1)
	b.SetVelocity(0, -5)

	b.Step([]Collider{ceiling, b})

	if got := b.Position().Y; got != 50 {
		t.Errorf("y = %v, want 50", got)
	}
	if got := b.Velocity().Y; got != 0 {
		t.Errorf("vy = %v, want 0", got)
	}
}

func TestNonSolidCandidatesIgnored(t *testing.T) {
	ghost := NewBlock(0, 200, 1000, 50)
	ghost.SetSolid(false)
	b := NewBody(10, 100, 100, 100, 1)

	b.Step([]Collider{ghost, b})

	if b.Supported() {
		t.Error("body stood on a non-solid block")
	}
	if got := b.Velocity().Y; got != DefaultGravity {
		t.Errorf("vy = %v, want %v", got, DefaultGravity)
	}
}

func TestLanding(t *testing.T) {
	floor := NewBlock(0, 200, 1000, 50)
	tests := []struct {
		name      string
		vy        float64
		supported bool
	}{
		{"lands from 10 above", 25, true},
		{"lands at the edge of the band", 70, true},
		{"tunnels past the band", 71, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBody(10, 90, 100, 100, 1)
			b.SetVelocity(0, tt.vy)
			b.Step([]Collider{floor, b})

			if b.Supported() != tt.supported {
				t.Fatalf("supported = %v, want %v", b.Supported(), tt.supported)
			}
			if !tt.supported {
				return
			}
			if b.Velocity().Y != 0 {
				t.Errorf("vy = %v, want 0", b.Velocity().Y)
			}
			if b.Position().Y != 100 {
				t.Errorf("y = %v, want surface top minus height", b.Position().Y)
			}
			if b.LastContact() != ContactLanded {
				t.Errorf("contact = %v", b.LastContact())
			}
		})
	}
}

func TestRisingBodyIsNotSupported(t *testing.T) {
	floor := NewBlock(0, 200, 1000, 50)
	b := NewBody(10, 100, 100, 100, 1)
	b.SetVelocity(0, -20)

	b.Step([]Collider{floor, b})

	if b.Supported() {
		t.Error("rising body reported supported")
	}
}

func TestImpulseGovernor(t *testing.T) {
	b := weightless(0, 0, 10, 10, 1)
	b.AddImpulse(Vector{X: 1000}, 0.5)

	b.Step([]Collider{b})

	m := b.Impulse().Magnitude()
	if m > MaxImpulse {
		t.Errorf("impulse %v above cap", m)
	}
	if m == 0 {
		t.Error("governor zeroed the impulse")
	}
	if want := 999.5 * math.Pow(governorScale, 4); math.Abs(m-want) > 1e-9 {
		t.Errorf("impulse = %v, want %v", m, want)
	}
}

func TestAddImpulseOverwritesDecayRate(t *testing.T) {
	b := NewBody(0, 0, 10, 10, 1)
	b.AddImpulse(Vector{X: 3}, 0.3)
	b.AddImpulse(Vector{X: 1, Y: 2}, 0.5)

	if got := b.Impulse(); !got.Equals(Vector{X: 4, Y: 2}) {
		t.Errorf("impulse = %+v", got)
	}
	if b.impulse.DecayRate != 0.5 {
		t.Errorf("decay rate = %v, want 0.5", b.impulse.DecayRate)
	}
}

func TestResizeKeepsBottomCentre(t *testing.T) {
	b := NewBody(100, 0, 225, 169, 1)
	before := b.Bounds()

	b.Resize(500, 376)

	after := b.Bounds()
	if after.CenterX() != before.CenterX() || after.Bottom() != before.Bottom() {
		t.Errorf("anchor moved: before %+v after %+v", before, after)
	}
}

func TestStepSkipsBlocks(t *testing.T) {
	block := NewBlock(0, 500, 100, 100)
	b := NewBody(0, 0, 10, 10, 1)

	Step([]Collider{block, b})

	if got := block.Bounds(); got.X != 0 || got.Y != 500 {
		t.Errorf("block moved to %+v", got)
	}
	if b.Velocity().Y != DefaultGravity {
		t.Errorf("body was not stepped")
	}
}

func TestContactFromBelowKeepsMomentum(t *testing.T) {
	top := weightless(0, 0, 100, 100, 1)
	under := weightless(0, 50, 100, 100, 5)
	under.total = Vector{Y: -4}
	under.momentum = 5
	under.supported = true

	top.Step([]Collider{top, under})

	if got := top.Momentum(); got != 1 {
		t.Errorf("momentum = %v, want 1", got)
	}
	if got := top.Impulse(); !got.Equals(Vector{Y: -2}) {
		t.Errorf("impulse = %+v, want {0 -2}", got)
	}
}
