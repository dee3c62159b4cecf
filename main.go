package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/stretch/assets"
	"github.com/automoto/stretch/config"
	"github.com/automoto/stretch/fonts"
	"github.com/automoto/stretch/network"
	"github.com/automoto/stretch/scenes"
	"github.com/automoto/stretch/shared/protocol"
	"github.com/automoto/stretch/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene

	tuningPath string
	tuning     *config.TuningWatcher
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func (g *Game) Update() error {
	g.reloadTuning()
	g.scene.Update()
	return nil
}

// reloadTuning applies tuning file edits on the game thread.
func (g *Game) reloadTuning() {
	if g.tuning == nil {
		return
	}
	for {
		select {
		case _, ok := <-g.tuning.Events:
			if !ok {
				g.tuning = nil
				return
			}
			if err := config.LoadTuning(g.tuningPath); err != nil {
				log.Printf("[config] keeping previous tuning: %v", err)
				continue
			}
			log.Printf("[config] reloaded %s", g.tuningPath)
		case err, ok := <-g.tuning.Errors:
			if !ok {
				g.tuning = nil
				return
			}
			log.Printf("[config] watch error: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	levelName := flag.String("level", "", "Start straight into the named level")
	connect := flag.String("connect", "", "Watch or pilot the server at host:port")
	name := flag.String("name", "player", "Name sent when joining a server")
	tuning := flag.String("tuning", "", "YAML file overriding gameplay tuning, reloaded on change")
	flag.Parse()

	// Register network components for client-side deserialization
	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register network components: %v", err)
	}
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{tuningPath: *tuning}
	if *tuning != "" {
		if err := config.LoadTuning(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		w, err := config.NewTuningWatcher(*tuning)
		if err != nil {
			log.Printf("Warning: tuning hot reload disabled: %v", err)
		} else {
			g.tuning = w
			defer w.Close()
		}
	}

	// Initialize persistence and load saved settings
	store, err := systems.OpenStore("stretch")
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	} else if saved, err := store.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}

	env := &scenes.Env{
		Changer: g,
		Levels:  assets.MustLoadLevels(),
		Store:   store,
		Sound:   scenes.NewSound(audio.NewContext(config.Audio.SampleRate)),
		Name:    *name,
	}

	switch {
	case *connect != "":
		client := network.NewClient()
		client.Connect(*connect, config.C.Version, *name)
		g.scene = scenes.NewNetworkedScene(env, client)
	case *levelName != "":
		g.scene = scenes.NewLevelScene(env, *levelName)
	default:
		g.scene = scenes.NewMenuScene(env)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
