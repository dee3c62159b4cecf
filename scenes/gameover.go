package scenes

import (
	"fmt"

	cfg "github.com/automoto/stretch/config"
	"github.com/automoto/stretch/level"
	"github.com/hajimehoshi/ebiten/v2"
)

// Result is how a local run ended.
type Result struct {
	Index    int
	Level    string
	Outcome  level.Outcome
	Score    int
	Best     int
	Improved bool
}

// next returns the level to play after r, or -1 for the menu.
func (r *Result) next(levels int) int {
	if r.Outcome != level.Won {
		return r.Index
	}
	if r.Index+1 >= levels {
		return -1
	}
	return r.Index + 1
}

func (r *Result) lines() []string {
	title := "Out of luck"
	if r.Outcome == level.Won {
		title = "Level complete"
	}
	lines := []string{title, fmt.Sprintf("%s   score %d", r.Level, r.Score)}
	switch {
	case r.Improved:
		lines = append(lines, "New best!")
	case r.Best > 0:
		lines = append(lines, fmt.Sprintf("best %d", r.Best))
	}
	return append(lines, "Enter to continue, Esc for the menu")
}

// GameOverScene shows a Result until the player moves on.
type GameOverScene struct {
	env    *Env
	result *Result
}

func NewResultScene(env *Env, result *Result) *GameOverScene {
	return &GameOverScene{env: env, result: result}
}

func (gs *GameOverScene) Update() {
	switch {
	case backPressed():
		gs.env.Changer.ChangeScene(NewMenuScene(gs.env))
	case confirmPressed():
		next := gs.result.next(len(gs.env.Levels))
		if next < 0 {
			gs.env.Changer.ChangeScene(NewMenuScene(gs.env))
			return
		}
		gs.env.Changer.ChangeScene(NewPlatformerScene(gs.env, next))
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Render.Background)
	drawCentered(screen, gs.result.lines(), cfg.C.Height/3)
}
