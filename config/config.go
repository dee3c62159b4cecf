package config

import "image/color"

// Form is one of the player's three sizes.
type Form int

const (
	FormNormal Form = iota
	FormSmall
	FormBig
)

func (f Form) String() string {
	switch f {
	case FormSmall:
		return "small"
	case FormBig:
		return "big"
	default:
		return "normal"
	}
}

// FormConfig contains the size and weight of one player form
type FormConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Mass        float64 `yaml:"mass"`
	StompDamage int     `yaml:"stomp_damage"` // damage dealt when landing on an enemy's head
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed float64 `yaml:"move_speed"`
	JumpSpeed float64 `yaml:"jump_speed"` // negative is up

	// Health
	Health    int `yaml:"health"`
	MaxHealth int `yaml:"max_health"`

	// Forms
	Normal FormConfig `yaml:"normal"`
	Small  FormConfig `yaml:"small"`
	Big    FormConfig `yaml:"big"`

	// Knock back when hurt
	BumpImpulse float64 `yaml:"bump_impulse"`
	BumpDecay   float64 `yaml:"bump_decay"`
	BumpUp      float64 `yaml:"bump_up"`   // vertical speed when hurt from above
	BumpDown    float64 `yaml:"bump_down"` // vertical speed when hurt from below

	// Damage taken
	HazardDamage    int     `yaml:"hazard_damage"`
	FallDamage      int     `yaml:"fall_damage"`
	FallDamageSpeed float64 `yaml:"fall_damage_speed"` // downward speed past which fall damage applies every tick
}

// FormSize returns the configuration for the given form
func (p PlayerConfig) FormSize(f Form) FormConfig {
	switch f {
	case FormSmall:
		return p.Small
	case FormBig:
		return p.Big
	default:
		return p.Normal
	}
}

// EnemyConfig contains enemy configuration
type EnemyConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Mass    float64 `yaml:"mass"`
	Health  int     `yaml:"health"`
	Speed   float64 `yaml:"speed"`
	Gravity float64 `yaml:"gravity"`

	// Zones, all derived from the enemy's box every tick
	DetectionPadding float64 `yaml:"detection_padding"` // added to both axes, centred
	DamagePadding    float64 `yaml:"damage_padding"`    // added to width, centred
	DamageOffsetY    float64 `yaml:"damage_offset_y"`
	VulnerableInset  float64 `yaml:"vulnerable_inset"` // removed from width
	VulnerableHeight float64 `yaml:"vulnerable_height"`

	ContactDamage int     `yaml:"contact_damage"`
	BumpImpulse   float64 `yaml:"bump_impulse"`
	BumpDecay     float64 `yaml:"bump_decay"`
	BumpUp        float64 `yaml:"bump_up"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	CrateMass   float64 `yaml:"crate_mass"`
	CrateWidth  float64 `yaml:"crate_width"`
	CrateHeight float64 `yaml:"crate_height"`
}

// ScoringConfig contains score and reward values
type ScoringConfig struct {
	EnemyDefeated int `yaml:"enemy_defeated"`
	Gem           int `yaml:"gem"`
	GemHeal       int `yaml:"gem_heal"`
	HealthBonus   int `yaml:"health_bonus"` // per point of health left on finish
	TimeBonus     int `yaml:"time_bonus"`   // per second left on finish
}

// LevelConfig contains level timing values
type LevelConfig struct {
	Dir              string `yaml:"dir"`
	DefaultTimeLimit int    `yaml:"default_time_limit"` // seconds
	TicksPerSecond   int    `yaml:"ticks_per_second"`
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int     `yaml:"sample_rate"`
	SFXVolume  float64 `yaml:"sfx_volume"`
	Muted      bool    `yaml:"muted"`
}

// RenderConfig contains colors and camera values for the client
type RenderConfig struct {
	Background color.RGBA `yaml:"-"`
	// Scale shrinks world units onto the screen
	Scale        float64 `yaml:"scale"`
	CameraLeadY  float64 `yaml:"camera_lead_y"`
	ShowHitboxes bool    `yaml:"show_hitboxes"`
}

// Config holds general game configuration
type Config struct {
	Width   int
	Height  int
	Title   string
	Version string // sent when joining a server
}

// Global configuration instances
var (
	C       Config
	Player  PlayerConfig
	Enemy   EnemyConfig
	Physics PhysicsConfig
	Scoring ScoringConfig
	Level   LevelConfig
	Audio   AudioConfig
	Render  RenderConfig
)

func init() {
	C = Config{
		Width:   1280,
		Height:  720,
		Title:   "Stretch",
		Version: "0.1.0",
	}

	Player = PlayerConfig{
		MoveSpeed: 5,
		JumpSpeed: -20,
		Health:    200,
		MaxHealth: 200,

		Normal: FormConfig{Width: 225, Height: 169, Mass: 1, StompDamage: 80},
		Small:  FormConfig{Width: 100, Height: 75, Mass: 0.5, StompDamage: 20},
		Big:    FormConfig{Width: 500, Height: 376, Mass: 2, StompDamage: 240},

		BumpImpulse: 3,
		BumpDecay:   0.3,
		BumpUp:      -10,
		BumpDown:    3,

		HazardDamage:    10,
		FallDamage:      20,
		FallDamageSpeed: 300,
	}

	Enemy = EnemyConfig{
		Width:   180,
		Height:  180,
		Mass:    1,
		Health:  200,
		Speed:   3,
		Gravity: 0.5,

		DetectionPadding: 600,
		DamagePadding:    20,
		DamageOffsetY:    10,
		VulnerableInset:  20,
		VulnerableHeight: 20,

		ContactDamage: 10,
		BumpImpulse:   3,
		BumpDecay:     0.3,
		BumpUp:        -10,
	}

	Physics = PhysicsConfig{
		Gravity:     0.5,
		CrateMass:   1,
		CrateWidth:  150,
		CrateHeight: 150,
	}

	Scoring = ScoringConfig{
		EnemyDefeated: 320,
		Gem:           80,
		GemHeal:       40,
		HealthBonus:   3,
		TimeBonus:     2,
	}

	Level = LevelConfig{
		Dir:              "levels",
		DefaultTimeLimit: 300,
		TicksPerSecond:   60,
	}

	Audio = AudioConfig{
		SampleRate: 44100,
		SFXVolume:  0.6,
	}

	Render = RenderConfig{
		Background:  color.RGBA{R: 20, G: 24, B: 40, A: 255},
		Scale:       0.5,
		CameraLeadY: 120,
	}
}
