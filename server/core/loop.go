package core

import (
	"log"
	"sync"
	"time"

	"github.com/leap-fish/necs/esync/srvsync"
)

// GameLoop drives the server at a fixed tick rate: every tick steps the
// running level and pushes the synced world to clients.
type GameLoop struct {
	server   *Server
	tickRate int
	budget   time.Duration
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		budget:   time.Second / time.Duration(tickRate),
		stopChan: make(chan struct{}),
	}
}

// Run blocks until Stop is called.
func (g *GameLoop) Run() {
	ticker := time.NewTicker(g.budget)
	defer ticker.Stop()

	log.Printf("[server] game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			log.Println("[server] game loop stopped")
			return
		case <-ticker.C:
			start := time.Now()
			g.tick()
			if took := time.Since(start); took > g.budget {
				log.Printf("[server] tick took %v, budget %v", took, g.budget)
			}
		}
	}
}

// Stop ends Run. Safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

func (g *GameLoop) tick() {
	g.server.step()

	if err := srvsync.DoSync(); err != nil {
		log.Printf("[server] sync error: %v", err)
	}
}
