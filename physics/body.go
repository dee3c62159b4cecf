package physics

// DefaultGravity is the per-frame downward acceleration bodies start with.
const DefaultGravity = 0.5

// Body is a box that moves under its own velocity, gravity and impulses
// picked up from other bodies.
type Body struct {
	pos   Vector
	vel   Vector
	total Vector

	impulse *Impulse

	w, h     float64
	mass     float64
	momentum float64
	gravity  float64

	solid     bool
	supported bool
	blocked   bool

	landing LandingStrategy
	contact Contact
}

// NewBody returns a solid body with SnapLanding and DefaultGravity.
// Mass must be positive.
func NewBody(x, y, w, h, mass float64) *Body {
	return &Body{
		pos:      Vector{X: x, Y: y},
		w:        w,
		h:        h,
		mass:     mass,
		momentum: mass,
		gravity:  DefaultGravity,
		solid:    true,
		landing:  SnapLanding{},
	}
}

func (b *Body) Bounds() AABB {
	return AABB{X: b.pos.X, Y: b.pos.Y, W: b.w, H: b.h}
}

func (b *Body) Solid() bool { return b.solid }

func (b *Body) Position() Vector      { return b.pos }
func (b *Body) Velocity() Vector      { return b.vel }
func (b *Body) TotalVelocity() Vector { return b.total }
func (b *Body) Size() (w, h float64)  { return b.w, b.h }
func (b *Body) Mass() float64         { return b.mass }
func (b *Body) Momentum() float64     { return b.momentum }
func (b *Body) Gravity() float64      { return b.gravity }

// Supported reports whether the last fall pass found a surface under the body.
func (b *Body) Supported() bool { return b.supported }

// Blocked reports whether the body was pushed out of an immovable obstacle
// during its last step.
func (b *Body) Blocked() bool { return b.blocked }

// LastContact is the result of the landing strategy during the last step.
func (b *Body) LastContact() Contact { return b.contact }

func (b *Body) Landing() LandingStrategy { return b.landing }

// Impulse returns the current impulse, or the zero vector if none was ever added.
func (b *Body) Impulse() Vector {
	if b.impulse == nil {
		return Vector{}
	}
	return b.impulse.Vector
}

func (b *Body) SetPosition(x, y float64) { b.pos.Set(x, y) }
func (b *Body) SetVelocity(x, y float64) { b.vel.Set(x, y) }
func (b *Body) SetVelocityX(x float64)   { b.vel.X = x }
func (b *Body) SetVelocityY(y float64)   { b.vel.Y = y }
func (b *Body) AddVelocity(v Vector)     { b.vel.Add(v) }
func (b *Body) SetGravity(g float64)     { b.gravity = g }
func (b *Body) SetSolid(solid bool)      { b.solid = solid }

// SetMass changes the mass. Momentum follows on the next step.
func (b *Body) SetMass(m float64) { b.mass = m }

func (b *Body) SetLanding(l LandingStrategy) {
	if l == nil {
		l = SnapLanding{}
	}
	b.landing = l
}

// AddImpulse accumulates v into the body's impulse and replaces its decay rate.
func (b *Body) AddImpulse(v Vector, decayRate float64) {
	if b.impulse == nil {
		b.impulse = NewImpulse(v.X, v.Y, decayRate)
		return
	}
	b.impulse.Add(v)
	b.impulse.DecayRate = decayRate
}

// Resize changes the body's size keeping its bottom centre in place.
func (b *Body) Resize(w, h float64) {
	box := b.Bounds()
	b.pos.Set(box.CenterX()-w/2, box.Bottom()-h)
	b.w, b.h = w, h
}

func (b *Body) snapOnto(surface Collider) {
	b.pos.Y = surface.Bounds().Y - b.h
}
