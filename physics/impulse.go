package physics

import "math"

// Impulse is a velocity contribution that bleeds off by DecayRate on each
// axis every time Decay is called.
type Impulse struct {
	Vector
	DecayRate float64
}

func NewImpulse(x, y, decayRate float64) *Impulse {
	return &Impulse{Vector: Vector{X: x, Y: y}, DecayRate: decayRate}
}

// Decay moves each axis toward zero by DecayRate without crossing it.
// An axis closer to zero than DecayRate snaps to exactly zero.
func (i *Impulse) Decay() {
	if i.X == 0 && i.Y == 0 {
		return
	}
	i.X = decayAxis(i.X, i.DecayRate)
	i.Y = decayAxis(i.Y, i.DecayRate)
}

func decayAxis(v, rate float64) float64 {
	if math.Abs(v)-rate < 0 {
		return 0
	}
	if v > 0 {
		return v - rate
	}
	return v + rate
}
