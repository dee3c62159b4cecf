package physics

import "testing"

func TestLandingPanicsWithoutSurface(t *testing.T) {
	strategies := map[string]LandingStrategy{
		"snap":   SnapLanding{},
		"bounce": NewBounceLanding(),
	}
	for name, s := range strategies {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic")
				}
			}()
			s.Land(NewBody(0, 0, 10, 10, 1), nil)
		})
	}
}

func TestBounceLanding(t *testing.T) {
	floor := NewBlock(0, 200, 1000, 50)
	bounce := NewBounceLanding()
	b := NewBody(10, 90, 100, 100, 1)
	b.SetLanding(bounce)
	b.SetVelocity(0, 30)

	b.Step([]Collider{floor, b})

	if b.LastContact() != ContactBounced {
		t.Fatalf("contact = %v, want bounced", b.LastContact())
	}
	if got := b.Velocity().Y; got != -15 {
		t.Errorf("vy = %v, want -15", got)
	}
	if got := b.Position().Y; got != 100 {
		t.Errorf("y = %v, want 100", got)
	}
	if !bounce.Bouncing() {
		t.Error("expected bouncing")
	}
}

func TestBounceLandingSettles(t *testing.T) {
	floor := NewBlock(0, 200, 1000, 50)
	tests := []struct {
		name    string
		vy      float64
		bounces int
		want    Contact
	}{
		{"slow fall lands", 18, 0, ContactLanded},
		{"fast fall bounces", 40, 2, ContactBounced},
		{"bounce budget spent", 40, 4, ContactLanded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewBounceLanding()
			l.bounces = tt.bounces
			b := NewBody(10, 100, 100, 100, 1)
			b.SetVelocity(0, tt.vy)

			if got := l.Land(b, floor); got != tt.want {
				t.Fatalf("contact = %v, want %v", got, tt.want)
			}
			if tt.want == ContactLanded && (l.Bouncing() || b.Velocity().Y != 0) {
				t.Errorf("did not settle: bouncing=%v vy=%v", l.Bouncing(), b.Velocity().Y)
			}
		})
	}
}
