package physics

// Collider is anything a body can be resolved against.
type Collider interface {
	Bounds() AABB
	Solid() bool
}

// Block is an obstacle the resolver never moves. Movers outside the
// package may reposition it between frames.
type Block struct {
	box   AABB
	solid bool
}

func NewBlock(x, y, w, h float64) *Block {
	return &Block{box: AABB{X: x, Y: y, W: w, H: h}, solid: true}
}

func (b *Block) Bounds() AABB { return b.box }
func (b *Block) Solid() bool  { return b.solid }

func (b *Block) SetSolid(solid bool) { b.solid = solid }

func (b *Block) MoveTo(x, y float64) {
	b.box.X, b.box.Y = x, y
}
