package scenes

import (
	"github.com/automoto/stretch/shared/leveldata"
	"github.com/automoto/stretch/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Env is what every scene shares. Store and Sound may be nil.
type Env struct {
	Changer SceneChanger
	Levels  []*leveldata.LevelData
	Store   *systems.Store
	Sound   *Sound
	Name    string // player name sent when joining a server
}

func (e *Env) best(level string) int {
	if e.Store == nil {
		return 0
	}
	best, _ := e.Store.BestScore(level)
	return best
}

// levelIndex returns the index of the level called name, or -1.
func (e *Env) levelIndex(name string) int {
	for i, l := range e.Levels {
		if l.Name == name {
			return i
		}
	}
	return -1
}
