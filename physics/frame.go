package physics

// Step advances b by one frame against the ordered candidate list. The list
// may contain b itself.
func (b *Body) Step(candidates []Collider) {
	b.blocked = false
	b.momentum = b.mass
	b.contact = ContactNone

	b.total = b.vel
	if b.impulse != nil {
		b.total.Add(b.impulse.Vector)
		b.impulse.Decay()
	}

	b.collide(candidates)
	b.pos.Add(b.total)
	b.fall(candidates)
}

// Step advances every body in candidates, in list order, against the whole
// list. Blocks are left where they are.
func Step(candidates []Collider) {
	for _, c := range candidates {
		if b, ok := c.(*Body); ok {
			b.Step(candidates)
		}
	}
}
