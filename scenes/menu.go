package scenes

import (
	"sync"

	cfg "github.com/automoto/stretch/config"
	"github.com/automoto/stretch/network"
	"github.com/automoto/stretch/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// MenuScene lists the levels and offers to watch a server.
type MenuScene struct {
	env  *Env
	menu *ui.MenuUI
	once sync.Once
}

func NewMenuScene(env *Env) *MenuScene {
	return &MenuScene{env: env}
}

func (ms *MenuScene) configure() {
	entries := make([]ui.LevelEntry, len(ms.env.Levels))
	for i, l := range ms.env.Levels {
		entries[i] = ui.LevelEntry{Name: l.Name, Best: ms.env.best(l.Name)}
	}
	ms.menu = ui.NewMenuUI(entries, cfg.Audio.Muted, ms.play, ms.connect, ms.toggleSound)
}

func (ms *MenuScene) play(index int) {
	ms.env.Changer.ChangeScene(NewPlatformerScene(ms.env, index))
}

func (ms *MenuScene) connect(address string) {
	client := network.NewClient()
	client.Connect(address, cfg.C.Version, ms.env.Name)
	ms.env.Changer.ChangeScene(NewNetworkedScene(ms.env, client))
}

func (ms *MenuScene) toggleSound() bool {
	cfg.Audio.Muted = !cfg.Audio.Muted
	if ms.env.Store != nil {
		ms.env.Store.SaveCurrentSettings()
	}
	return cfg.Audio.Muted
}

// SetStatus shows a message under the connect panel, such as why a
// connection ended.
func (ms *MenuScene) SetStatus(msg string) {
	ms.once.Do(ms.configure)
	ms.menu.SetStatus(msg)
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.menu.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	if ms.menu == nil {
		return
	}
	ms.menu.UI.Draw(screen)
}
