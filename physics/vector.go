// Package physics is the kinematic and collision core: axis-aligned boxes,
// decaying impulses, and bodies that push, block and land on each other.
//
// The package keeps no spatial index. Every frame each body is resolved
// against the full ordered candidate list it is handed, and mutations made
// while resolving one body are visible to the bodies resolved after it.
package physics

import "math"

// Vector is a mutable 2D vector. The in-place operations return the receiver
// so they can be chained.
type Vector struct {
	X, Y float64
}

func (v *Vector) Set(x, y float64) *Vector {
	v.X, v.Y = x, y
	return v
}

func (v *Vector) Add(o Vector) *Vector {
	v.X += o.X
	v.Y += o.Y
	return v
}

func (v *Vector) Scale(f float64) *Vector {
	v.X *= f
	v.Y *= f
	return v
}

// Magnitude returns the Euclidean length.
func (v Vector) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vector) Equals(o Vector) bool {
	return v.X == o.X && v.Y == o.Y
}

func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
