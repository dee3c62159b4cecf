package components

import (
	"github.com/automoto/stretch/physics"
	"github.com/yohamta/donburi"
)

// Input is the player's intent for one tick. Grow and Shrink are edge
// triggered: set them only on the tick the key is released.
type Input struct {
	Left   bool
	Right  bool
	Jump   bool
	Grow   bool
	Shrink bool
}

// Outcome is the result of one tick.
type Outcome int

const (
	Continue Outcome = iota
	Lost
	Won
)

func (o Outcome) String() string {
	switch o {
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "continue"
	}
}

// Event is something the client may want to play a sound for.
type Event int

const (
	EventJump Event = iota
	EventBounce
	EventResize
	EventHurt
	EventEnemyHurt
	EventEnemyDefeated
	EventGemCollected
	EventLevelBeaten
	EventLevelLost
)

// LevelStateData is the per-level singleton every system reads and writes.
type LevelStateData struct {
	Name string

	// Candidates is the ordered list the physics pass resolves against.
	// Entities holds the owning entity for each candidate at the same index.
	Candidates []physics.Collider
	Entities   []donburi.Entity

	Input   Input
	Events  []Event
	Outcome Outcome

	Score       int
	SecondsLeft int
	Ticks       int
	AtFinish    bool
}

// Emit records an event for this tick.
func (s *LevelStateData) Emit(e Event) {
	s.Events = append(s.Events, e)
}

var LevelState = donburi.NewComponentType[LevelStateData]()
