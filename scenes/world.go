package scenes

import (
	"log"
	"sync"

	"github.com/automoto/stretch/level"
	"github.com/hajimehoshi/ebiten/v2"
)

// PlatformerScene plays one level locally.
type PlatformerScene struct {
	env   *Env
	index int
	level *level.Level
	cam   camera
	once  sync.Once
}

func NewPlatformerScene(env *Env, index int) *PlatformerScene {
	return &PlatformerScene{env: env, index: index}
}

func (ps *PlatformerScene) configure() {
	lvl, err := level.New(ps.env.Levels[ps.index])
	if err != nil {
		log.Printf("[level] %v", err)
		return
	}
	ps.level = lvl
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	if ps.level == nil || backPressed() {
		ps.env.Changer.ChangeScene(NewMenuScene(ps.env))
		return
	}

	outcome := ps.level.Step(ReadInput())
	ps.env.Sound.Play(ps.level.Events())
	if outcome == level.Continue {
		return
	}

	score := ps.level.HUD().Score
	result := &Result{
		Index:   ps.index,
		Level:   ps.level.Name(),
		Outcome: outcome,
		Score:   score,
		Best:    ps.env.best(ps.level.Name()),
	}
	if outcome == level.Won && ps.env.Store != nil {
		best, improved, err := ps.env.Store.RecordScore(ps.level.Name(), score)
		if err != nil {
			log.Printf("Warning: Failed to record score: %v", err)
		}
		result.Best, result.Improved = best, improved
	}
	ps.env.Changer.ChangeScene(NewResultScene(ps.env, result))
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	if ps.level == nil {
		return
	}
	if box, ok := ps.level.Player(); ok {
		ps.cam.follow(box)
	}

	snap := ps.level.Snapshot()
	items := make([]drawable, len(snap))
	for i, bs := range snap {
		items[i] = drawable{Kind: bs.Kind, Box: bs.Box, Label: bs.Label}
	}
	drawWorld(screen, items, ps.cam)

	hud := ps.level.HUD()
	drawHUD(screen, hudView{
		Level:       ps.level.Name(),
		Health:      hud.Health,
		MaxHealth:   hud.MaxHealth,
		Score:       hud.Score,
		SecondsLeft: hud.SecondsLeft,
		Form:        hud.Form,
	})
}

// NewLevelScene starts the level called name, or the menu when there is no
// such level.
func NewLevelScene(env *Env, name string) Scene {
	i := env.levelIndex(name)
	if i < 0 {
		log.Printf("[level] no level named %q", name)
		return NewMenuScene(env)
	}
	return NewPlatformerScene(env, i)
}
