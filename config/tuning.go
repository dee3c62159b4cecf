package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// tuningDoc mirrors the globals that may be overridden from a YAML file.
type tuningDoc struct {
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Physics PhysicsConfig `yaml:"physics"`
	Scoring ScoringConfig `yaml:"scoring"`
	Level   LevelConfig   `yaml:"level"`
	Audio   AudioConfig   `yaml:"audio"`
	Render  RenderConfig  `yaml:"render"`
}

// LoadTuning overlays the YAML file at path onto the global configuration.
// Keys missing from the file keep their current values.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read tuning %s: %w", path, err)
	}
	if err := ApplyTuning(data); err != nil {
		return fmt.Errorf("config: load tuning %s: %w", path, err)
	}
	return nil
}

// ApplyTuning overlays a YAML document onto the global configuration. On
// error the globals are left untouched.
func ApplyTuning(data []byte) error {
	doc := tuningDoc{
		Player:  Player,
		Enemy:   Enemy,
		Physics: Physics,
		Scoring: Scoring,
		Level:   Level,
		Audio:   Audio,
		Render:  Render,
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc.Level.TicksPerSecond <= 0 {
		return fmt.Errorf("ticks_per_second must be positive, got %d", doc.Level.TicksPerSecond)
	}

	Player = doc.Player
	Enemy = doc.Enemy
	Physics = doc.Physics
	Scoring = doc.Scoring
	Level = doc.Level
	Audio = doc.Audio
	Render = doc.Render
	return nil
}
