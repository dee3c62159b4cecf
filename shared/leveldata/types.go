// Package leveldata provides TMX level parsing shared between client and server.
// It has no dependencies on ebitengine, donburi or resolv. Pure data only.
package leveldata

import "errors"

// ErrNoPlayerSpawn is returned when a level has no object in its Player group.
var ErrNoPlayerSpawn = errors.New("leveldata: level has no player spawn")

// Kind says what a spawn becomes when the level is built.
type Kind int

const (
	KindSolid Kind = iota
	KindDecor
	KindHazard
	KindGem
	KindFinish
	KindCrate
	KindEnemy
	KindPlayer
	KindPlatform
)

var kindNames = map[Kind]string{
	KindSolid:    "solid",
	KindDecor:    "decor",
	KindHazard:   "hazard",
	KindGem:      "gem",
	KindFinish:   "finish",
	KindCrate:    "crate",
	KindEnemy:    "enemy",
	KindPlayer:   "player",
	KindPlatform: "platform",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// groupKinds maps TMX object group names to spawn kinds.
var groupKinds = map[string]Kind{
	"Solids":    KindSolid,
	"Decor":     KindDecor,
	"Hazards":   KindHazard,
	"Gems":      KindGem,
	"Finish":    KindFinish,
	"Crates":    KindCrate,
	"Enemies":   KindEnemy,
	"Player":    KindPlayer,
	"Platforms": KindPlatform,
}

// Spawn is one placed object. Zero numeric properties mean "use the default".
type Spawn struct {
	Kind Kind
	Name string
	X, Y float64
	W, H float64

	Mass    float64
	Gravity float64
	Health  int
	Speed   float64
	Bounce  bool

	// Moving platforms travel from (X, Y) to (X+TravelX, Y+TravelY) and back.
	TravelX  float64
	TravelY  float64
	Duration float64 // seconds per leg
}

// LevelData holds everything parsed from one TMX level.
type LevelData struct {
	Name      string
	Width     int
	Height    int
	TimeLimit int // seconds, 0 = default

	// Spawns keeps file order: group by group, object by object. The level
	// resolves bodies in this order.
	Spawns []Spawn
}

// PlayerSpawn returns the first player spawn.
func (d *LevelData) PlayerSpawn() (Spawn, bool) {
	for _, s := range d.Spawns {
		if s.Kind == KindPlayer {
			return s, true
		}
	}
	return Spawn{}, false
}

// Count returns how many spawns have the given kind.
func (d *LevelData) Count(k Kind) int {
	n := 0
	for _, s := range d.Spawns {
		if s.Kind == k {
			n++
		}
	}
	return n
}
