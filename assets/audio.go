package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"path"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed all:audio
var audioFS embed.FS

// Sound effect files, one per gameplay event.
const (
	SFXJump          = "jump.wav"
	SFXBounce        = "bounce.wav"
	SFXResize        = "resize.wav"
	SFXHurt          = "hurt.wav"
	SFXEnemyHurt     = "enemy_hurt.wav"
	SFXEnemyDefeated = "enemy_defeated.wav"
	SFXGem           = "gem.wav"
	SFXLevelBeaten   = "level_beaten.wav"
	SFXLevelLost     = "level_lost.wav"
)

// AllSFX lists every embedded sound effect.
var AllSFX = []string{
	SFXJump, SFXBounce, SFXResize, SFXHurt, SFXEnemyHurt,
	SFXEnemyDefeated, SFXGem, SFXLevelBeaten, SFXLevelLost,
}

// AudioLoader decodes embedded sound effects once and hands out players.
type AudioLoader struct {
	sfxCache map[string][]byte
	context  *audio.Context
}

func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

// PreloadSFX decodes a sound effect into the cache without creating a player.
func (l *AudioLoader) PreloadSFX(name string) error {
	if _, ok := l.sfxCache[name]; ok {
		return nil
	}
	data, err := audioFS.ReadFile(path.Join("audio", name))
	if err != nil {
		return fmt.Errorf("read sfx %s: %w", name, err)
	}
	stream, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode sfx %s: %w", name, err)
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return fmt.Errorf("read decoded sfx %s: %w", name, err)
	}
	l.sfxCache[name] = decoded
	return nil
}

// LoadSFX returns a fresh player for a sound effect.
func (l *AudioLoader) LoadSFX(name string) (*audio.Player, error) {
	if err := l.PreloadSFX(name); err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[name]), nil
}
