package core

import (
	"log"

	"github.com/automoto/stretch/level"
	"github.com/automoto/stretch/shared/netcomponents"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/yohamta/donburi"
)

// mirror copies level snapshots into the synced world. Every level entity
// gets one networked entity, created on first sight and removed once the
// level entity is gone.
type mirror struct {
	world  donburi.World
	bodies map[donburi.Entity]donburi.Entity // level entity -> synced entity
	hud    donburi.Entity
	hasHUD bool
	seen   map[donburi.Entity]bool
}

func newMirror(world donburi.World) *mirror {
	return &mirror{
		world:  world,
		bodies: make(map[donburi.Entity]donburi.Entity),
		seen:   make(map[donburi.Entity]bool),
	}
}

// reset drops every synced entity, used when a new level starts.
func (m *mirror) reset() {
	for _, ent := range m.bodies {
		if m.world.Valid(ent) {
			m.world.Remove(ent)
		}
	}
	clear(m.bodies)
	if m.hasHUD && m.world.Valid(m.hud) {
		m.world.Remove(m.hud)
	}
	m.hasHUD = false
}

func (m *mirror) sync(lvl *level.Level) {
	clear(m.seen)
	for _, bs := range lvl.Snapshot() {
		m.seen[bs.Entity] = true
		ent, ok := m.bodies[bs.Entity]
		if !ok {
			ent = m.world.Create(netcomponents.NetBody)
			if err := srvsync.NetworkSync(m.world, &ent, srvsync.WithInterp(netcomponents.NetBody)); err != nil {
				log.Printf("[server] network sync for %v: %v", bs.Kind, err)
			}
			m.bodies[bs.Entity] = ent
		}
		netcomponents.NetBody.SetValue(m.world.Entry(ent), netcomponents.NetBodyData{
			Kind:  int(bs.Kind),
			X:     bs.Box.X,
			Y:     bs.Box.Y,
			W:     bs.Box.W,
			H:     bs.Box.H,
			Label: bs.Label,
		})
	}

	for src, ent := range m.bodies {
		if m.seen[src] {
			continue
		}
		if m.world.Valid(ent) {
			m.world.Remove(ent)
		}
		delete(m.bodies, src)
	}

	if !m.hasHUD {
		m.hud = m.world.Create(netcomponents.NetLevel)
		m.hasHUD = true
		if err := srvsync.NetworkSync(m.world, &m.hud, netcomponents.NetLevel); err != nil {
			log.Printf("[server] network sync for level state: %v", err)
		}
	}
	hud := lvl.HUD()
	netcomponents.NetLevel.SetValue(m.world.Entry(m.hud), netcomponents.NetLevelData{
		Name:        lvl.Name(),
		Score:       hud.Score,
		SecondsLeft: hud.SecondsLeft,
		Health:      hud.Health,
		MaxHealth:   hud.MaxHealth,
		Form:        int(hud.Form),
		Outcome:     int(lvl.Outcome()),
	})
}

// size returns how many level entities are mirrored.
func (m *mirror) size() int {
	return len(m.bodies)
}
