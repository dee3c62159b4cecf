package physics

// Contact describes what happened when a body touched down this frame.
type Contact int

const (
	ContactNone Contact = iota
	ContactLanded
	ContactBounced
)

func (c Contact) String() string {
	switch c {
	case ContactLanded:
		return "landed"
	case ContactBounced:
		return "bounced"
	default:
		return "none"
	}
}

// LandingStrategy decides how a body settles onto the surface supporting it.
// Land is called once per frame while the body is supported and not rising.
type LandingStrategy interface {
	Land(b *Body, surface Collider) Contact
}

// SnapLanding stops vertical motion and rests the body on the surface top.
type SnapLanding struct{}

func (SnapLanding) Land(b *Body, surface Collider) Contact {
	mustSurface(surface)
	b.vel.Y = 0
	b.snapOnto(surface)
	return ContactLanded
}

const (
	DefaultBounceThreshold = 19
	DefaultMaxBounces      = 3
)

// BounceLanding rebounds a fast-falling body at half its speed, up to
// MaxBounces times in a row, before settling like SnapLanding.
type BounceLanding struct {
	Threshold  float64
	MaxBounces int

	bounces int
}

func NewBounceLanding() *BounceLanding {
	return &BounceLanding{Threshold: DefaultBounceThreshold, MaxBounces: DefaultMaxBounces}
}

func (l *BounceLanding) Land(b *Body, surface Collider) Contact {
	mustSurface(surface)
	if b.vel.Y < l.Threshold || l.bounces > l.MaxBounces {
		l.bounces = 0
		b.vel.Y = 0
		b.snapOnto(surface)
		return ContactLanded
	}
	b.vel.Y = -b.vel.Y / 2
	b.snapOnto(surface)
	l.bounces++
	return ContactBounced
}

// Bouncing reports whether the body is mid bounce sequence.
func (l *BounceLanding) Bouncing() bool {
	return l.bounces > 0
}

func mustSurface(surface Collider) {
	if surface == nil {
		panic("physics: landing without a supporting surface")
	}
}
