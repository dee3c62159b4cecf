package scenes

import (
	"log"

	"github.com/automoto/stretch/assets"
	cfg "github.com/automoto/stretch/config"
	"github.com/automoto/stretch/level"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

var eventSFX = map[level.Event]string{
	level.EventJump:          assets.SFXJump,
	level.EventBounce:        assets.SFXBounce,
	level.EventResize:        assets.SFXResize,
	level.EventHurt:          assets.SFXHurt,
	level.EventEnemyHurt:     assets.SFXEnemyHurt,
	level.EventEnemyDefeated: assets.SFXEnemyDefeated,
	level.EventGemCollected:  assets.SFXGem,
	level.EventLevelBeaten:   assets.SFXLevelBeaten,
	level.EventLevelLost:     assets.SFXLevelLost,
}

// Sound plays one effect per gameplay event at the configured volume.
type Sound struct {
	loader *assets.AudioLoader
}

func NewSound(ctx *audio.Context) *Sound {
	loader := assets.NewAudioLoader(ctx)
	for _, name := range assets.AllSFX {
		if err := loader.PreloadSFX(name); err != nil {
			log.Printf("[audio] %v", err)
		}
	}
	return &Sound{loader: loader}
}

// Play starts the effects for events. A nil Sound is silent.
func (s *Sound) Play(events []level.Event) {
	if s == nil || cfg.Audio.Muted {
		return
	}
	for _, e := range events {
		name, ok := eventSFX[e]
		if !ok {
			continue
		}
		player, err := s.loader.LoadSFX(name)
		if err != nil {
			log.Printf("[audio] %v", err)
			continue
		}
		player.SetVolume(cfg.Audio.SFXVolume)
		player.Play()
	}
}
