package scenes

import (
	"github.com/automoto/stretch/level"
	"github.com/automoto/stretch/shared/messages"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// ReadInput samples the keyboard. Size changes fire when E or Q is released.
func ReadInput() level.Input {
	return level.Input{
		Left:   anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right:  anyPressed(ebiten.KeyD, ebiten.KeyArrowRight),
		Jump:   anyPressed(ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp),
		Grow:   inpututil.IsKeyJustReleased(ebiten.KeyE),
		Shrink: inpututil.IsKeyJustReleased(ebiten.KeyQ),
	}
}

func toMessage(in level.Input) messages.PilotInput {
	return messages.PilotInput{
		Left:   in.Left,
		Right:  in.Right,
		Jump:   in.Jump,
		Grow:   in.Grow,
		Shrink: in.Shrink,
	}
}

func confirmPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

func backPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
