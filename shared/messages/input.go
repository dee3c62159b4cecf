package messages

// PilotInput is sent by the pilot client every frame. Grow and Shrink are
// set only on the frame the key is released.
type PilotInput struct {
	Sequence uint32
	Left     bool
	Right    bool
	Jump     bool
	Grow     bool
	Shrink   bool
}
