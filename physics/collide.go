package physics

const (
	// MaxImpulse caps the impulse a body may carry after collisions.
	MaxImpulse = 20

	collisionDecay = 0.5
	governorScale  = 0.3
	transferRatio  = 0.5
)

// collide separates b from every overlapping solid candidate and gathers the
// velocity other bodies hand to it.
func (b *Body) collide(candidates []Collider) {
	if !b.solid {
		return
	}

	var cv Vector
	for _, c := range candidates {
		if c == Collider(b) || !c.Solid() || !b.Bounds().Overlaps(c.Bounds()) {
			continue
		}

		other, ok := c.(*Body)
		if !ok {
			b.collideStatic(c.Bounds())
			continue
		}

		self := b.Bounds()
		ob := other.Bounds()
		switch {
		case ob.Below(self):
			// Landing on another body hands down its upward motion only;
			// momentum never moves through this contact.
			if other.total.Y < 0 {
				cv = other.total
			}
			cv.Scale(transferRatio)
			if !other.supported && ob.Y >= self.Bottom() {
				other.pos.Y = self.Bottom() + 1
			}

		case self.LeftHit(ob):
			if other.blocked {
				b.pos.X = ob.Right() + 1
				b.total.X = 0
				continue
			}
			other.pos.X = self.X - ob.W - 1
			if other.momentum < b.momentum {
				continue
			}
			b.momentum = other.momentum
			if other.total.X > 0 {
				cv.Add(other.total)
			}
			cv.Scale(transferRatio)

		case self.RightHit(ob):
			if other.blocked {
				b.pos.X = ob.X - b.w - 1
				b.total.X = 0
				continue
			}
			other.pos.X = self.Right() + 1
			if other.momentum < b.momentum {
				continue
			}
			b.momentum = other.momentum
			if other.total.X < 0 {
				cv.Add(other.total)
			}
			cv.Scale(transferRatio)
		}
	}

	b.AddImpulse(cv, collisionDecay)
	for b.impulse.Magnitude() > MaxImpulse {
		b.impulse.Scale(governorScale)
	}
}

// collideStatic pushes b out of an obstacle that never moves in response.
func (b *Body) collideStatic(wall AABB) {
	self := b.Bounds()
	switch {
	case wall.RightHit(self):
		b.pos.X = wall.Right() + 1
		if b.total.X < 0 {
			b.total.X = 0
		}
	case wall.LeftHit(self):
		b.pos.X = wall.X - b.w - 1
		if b.total.X > 0 {
			b.total.X = 0
		}
	case self.Below(wall):
		b.pos.Y = wall.Bottom()
		if b.vel.Y < 0 {
			b.vel.Y = 0
		}
		if b.total.Y < 0 {
			b.total.Y = 0
		}
	default:
		return
	}
	b.blocked = true
}
