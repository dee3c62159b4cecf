package physics

import "testing"

func TestImpulseDecay(t *testing.T) {
	i := NewImpulse(5, -3, 2)

	steps := []Vector{{X: 3, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 0}}
	for n, want := range steps {
		i.Decay()
		if !i.Vector.Equals(want) {
			t.Fatalf("after decay %d got %+v, want %+v", n+1, i.Vector, want)
		}
	}
}

func TestImpulseDecayNeverFlipsSign(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		rate float64
	}{
		{"positive", 7.3, 0.5},
		{"negative", -7.3, 0.5},
		{"rate larger than value", 0.2, 3},
		{"exact multiple", 2, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := NewImpulse(tt.v, 0, tt.rate)
			prev := tt.v
			for n := 0; n < 100 && i.X != 0; n++ {
				i.Decay()
				if (prev > 0 && i.X < 0) || (prev < 0 && i.X > 0) {
					t.Fatalf("sign flipped: %v -> %v", prev, i.X)
				}
				if abs(i.X) > abs(prev) {
					t.Fatalf("magnitude grew: %v -> %v", prev, i.X)
				}
				prev = i.X
			}
			if i.X != 0 {
				t.Fatalf("did not reach zero, stuck at %v", i.X)
			}
		})
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
