package physics

// fall lands b on the first solid candidate supporting it, or accelerates
// it downward when nothing does. A rising body is never supported.
func (b *Body) fall(candidates []Collider) {
	if b.vel.Y >= 0 {
		box := b.Bounds()
		for _, c := range candidates {
			if c == Collider(b) || !c.Solid() {
				continue
			}
			if box.BottomSupported(c.Bounds()) {
				b.supported = true
				b.contact = b.landing.Land(b, c)
				return
			}
		}
	}
	b.supported = false
	b.vel.Y += b.gravity
}
