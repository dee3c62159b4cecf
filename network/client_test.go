package network

import (
	"testing"

	"github.com/automoto/stretch/shared/messages"
)

func TestDrainChan(t *testing.T) {
	ch := make(chan messages.LevelEvents, 4)
	ch <- messages.LevelEvents{Tick: 1}
	ch <- messages.LevelEvents{Tick: 2}

	got := drainChan(ch)
	if len(got) != 2 || got[0].Tick != 1 || got[1].Tick != 2 {
		t.Fatalf("drained %+v", got)
	}
	if again := drainChan(ch); len(again) != 0 {
		t.Errorf("second drain returned %+v", again)
	}
}

func TestNewClientDisconnected(t *testing.T) {
	c := NewClient()
	if c.State() != StateDisconnected {
		t.Errorf("state = %v", c.State())
	}
	if c.LatestSnapshot() != nil {
		t.Error("snapshot on a fresh client")
	}
	if err := c.SendInput(messages.PilotInput{Left: true}); err == nil {
		t.Error("sent input without a connection")
	}
}
