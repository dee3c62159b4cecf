package physics

// SupportTolerance is how far a body's bottom may sink past a surface top
// and still be considered standing on it.
const SupportTolerance = 60

// AABB is an axis-aligned box anchored at its top-left corner. Y grows
// downward. Width and height are assumed non-negative.
type AABB struct {
	X, Y, W, H float64
}

// Centered returns a box of size w x h sharing b's centre.
func (b AABB) Centered(w, h float64) AABB {
	return AABB{X: b.CenterX() - w/2, Y: b.CenterY() - h/2, W: w, H: h}
}

// Offset returns b translated by dx, dy.
func (b AABB) Offset(dx, dy float64) AABB {
	b.X += dx
	b.Y += dy
	return b
}

func (b AABB) Right() float64   { return b.X + b.W }
func (b AABB) Bottom() float64  { return b.Y + b.H }
func (b AABB) CenterX() float64 { return b.X + b.W/2 }
func (b AABB) CenterY() float64 { return b.Y + b.H/2 }

// Overlaps reports whether the boxes intersect. Shared edges count.
func (b AABB) Overlaps(o AABB) bool {
	return !(b.Right() < o.X || o.Right() < b.X || b.Bottom() < o.Y || o.Bottom() < b.Y)
}

// Below reports whether b reaches further down than o while starting no
// further right than o's right edge.
func (b AABB) Below(o AABB) bool {
	return b.Bottom() > o.Bottom() && b.X <= o.Right()
}

// LeftHit reports whether o is striking b's left side.
func (b AABB) LeftHit(o AABB) bool {
	h := o.Right() >= b.X && b.CenterX() >= o.Right() && o.X <= b.X
	return h && b.sharesRows(o)
}

// RightHit reports whether o is striking b's right side.
func (b AABB) RightHit(o AABB) bool {
	h := o.X <= b.Right() && b.CenterX() <= o.X && o.Right() >= b.Right()
	return h && b.sharesRows(o)
}

func (b AABB) sharesRows(o AABB) bool {
	return (o.Bottom() <= b.Bottom() && b.Y < o.Bottom()) || (o.Y >= b.Y && b.Bottom() > o.Y)
}

// BottomSupported reports whether b is resting on o: horizontal spans touch
// and b's bottom lies within SupportTolerance below o's top.
func (b AABB) BottomSupported(o AABB) bool {
	return !(b.Right() < o.X || o.Right() < b.X || b.Bottom() < o.Y || o.Y < b.Bottom()-SupportTolerance)
}

// ToLeft reports whether b starts left of o.
func (b AABB) ToLeft(o AABB) bool {
	return b.X < o.X
}
