package core

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/automoto/stretch/level"
	"github.com/automoto/stretch/shared/leveldata"
	"github.com/automoto/stretch/shared/messages"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
)

// ErrNoLevels is returned when a server is started without any level.
var ErrNoLevels = errors.New("server: no levels to play")

// Options configures a Server.
type Options struct {
	TickRate int
	Name     string
	Version  string // required client version, empty accepts any
	Levels   []*leveldata.LevelData
}

// Server runs one level at a time. The first client to join pilots it and
// everyone else spectates through the synced world.
type Server struct {
	world     donburi.World
	loop      *GameLoop
	transport *transports.WsServerTransport
	opts      Options

	// Guarded by mu: router callbacks run on necs goroutines.
	mu      sync.Mutex
	clients []*router.NetworkClient
	pilot   *router.NetworkClient
	input   messages.PilotInput
	pending bool // a Grow or Shrink release waits for the next tick
	current string

	// Owned by the loop goroutine.
	levelIndex int
	level      *level.Level
	mirror     *mirror
	tick       int
}

// NewServer builds the first level and prepares the synced world.
func NewServer(opts Options) (*Server, error) {
	if len(opts.Levels) == 0 {
		return nil, ErrNoLevels
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}

	world := donburi.NewWorld()
	srvsync.UseEsync(world)

	s := &Server{
		world:  world,
		opts:   opts,
		mirror: newMirror(world),
	}
	if err := s.load(0); err != nil {
		return nil, err
	}
	s.loop = NewGameLoop(s, opts.TickRate)
	return s, nil
}

// Start runs the game loop and serves websocket clients on port. It blocks
// until the transport stops.
func (s *Server) Start(port uint) error {
	s.setupRouterCallbacks()
	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop halts the game loop. The listener stays up until the process exits.
func (s *Server) Stop() {
	s.loop.Stop()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		log.Printf("[server] client connected: %s", client.Id())
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.onDisconnect(client, err)
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		s.onJoin(client, req)
	})

	router.On(func(client *router.NetworkClient, in messages.PilotInput) {
		s.onPilotInput(client, in)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("[server] client error: %v", err)
	})
}

func (s *Server) onJoin(client *router.NetworkClient, req messages.JoinRequest) {
	if s.opts.Version != "" && req.Version != s.opts.Version {
		log.Printf("[server] rejected %s: version %q", req.Name, req.Version)
		s.send(client, messages.JoinRejected{
			Reason: fmt.Sprintf("server requires version %s", s.opts.Version),
		})
		return
	}

	s.mu.Lock()
	pilot := s.pilot == nil
	if pilot {
		s.pilot = client
	}
	s.clients = append(s.clients, client)
	name := s.current
	s.mu.Unlock()

	log.Printf("[server] %s joined (pilot: %v)", req.Name, pilot)
	s.send(client, messages.JoinAccepted{
		ServerName: s.opts.Name,
		TickRate:   s.opts.TickRate,
		Level:      name,
		Pilot:      pilot,
	})
}

func (s *Server) onDisconnect(client *router.NetworkClient, err error) {
	if err != nil {
		log.Printf("[server] client %s disconnected with error: %v", client.Id(), err)
	} else {
		log.Printf("[server] client %s disconnected", client.Id())
	}

	s.mu.Lock()
	for i, c := range s.clients {
		if c == client {
			s.clients = append(s.clients[:i], s.clients[i+1:]...)
			break
		}
	}
	var promoted *router.NetworkClient
	if s.pilot == client {
		s.pilot = nil
		s.clearInput()
		if len(s.clients) > 0 {
			promoted = s.clients[0]
			s.pilot = promoted
		}
	}
	s.mu.Unlock()

	if promoted != nil {
		log.Printf("[server] client %s is now the pilot", promoted.Id())
		s.send(promoted, messages.PilotAssigned{})
	}
}

func (s *Server) onPilotInput(client *router.NetworkClient, in messages.PilotInput) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if client != s.pilot {
		return
	}
	s.setInput(in)
}

// setInput stores the pilot's latest input. Size changes are edge triggered
// and would be lost if overwritten before the next tick, so they stick until
// consumed. Sequence 0 means no input since the pilot took over. Callers
// hold mu.
func (s *Server) setInput(in messages.PilotInput) {
	if s.input.Sequence != 0 && in.Sequence <= s.input.Sequence {
		return
	}
	if s.pending {
		in.Grow = in.Grow || s.input.Grow
		in.Shrink = in.Shrink || s.input.Shrink
	}
	s.input = in
	s.pending = in.Grow || in.Shrink
}

// clearInput forgets the old pilot's input. Callers hold mu.
func (s *Server) clearInput() {
	s.input = messages.PilotInput{}
	s.pending = false
}

// takeInput returns the input for this tick and clears the edge triggered
// flags.
func (s *Server) takeInput() level.Input {
	s.mu.Lock()
	defer s.mu.Unlock()
	in := level.Input{
		Left:   s.input.Left,
		Right:  s.input.Right,
		Jump:   s.input.Jump,
		Grow:   s.input.Grow,
		Shrink: s.input.Shrink,
	}
	s.input.Grow, s.input.Shrink = false, false
	s.pending = false
	return in
}

func (s *Server) send(client *router.NetworkClient, msg any) {
	if err := client.SendMessage(msg); err != nil {
		log.Printf("[server] send to %s: %v", client.Id(), err)
	}
}

func (s *Server) broadcast(msg any) {
	s.mu.Lock()
	clients := append([]*router.NetworkClient(nil), s.clients...)
	s.mu.Unlock()
	for _, c := range clients {
		s.send(c, msg)
	}
}

// load replaces the running level with the level at index i.
func (s *Server) load(i int) error {
	data := s.opts.Levels[i]
	lvl, err := level.New(data)
	if err != nil {
		return fmt.Errorf("load level %s: %w", data.Name, err)
	}
	s.levelIndex = i
	s.level = lvl
	s.mu.Lock()
	s.current = data.Name
	s.mu.Unlock()
	s.mirror.reset()
	s.mirror.sync(lvl)
	log.Printf("[server] playing %s", data.Name)
	return nil
}

// step advances the level one tick, mirrors it into the synced world and
// moves on once the level is decided: to the next level after a win, back
// to the start after a loss.
func (s *Server) step() {
	s.tick++
	outcome := s.level.Step(s.takeInput())
	s.mirror.sync(s.level)

	if events := s.level.Events(); len(events) > 0 {
		msg := messages.LevelEvents{Tick: s.tick, Events: make([]int, len(events))}
		for i, e := range events {
			msg.Events[i] = int(e)
		}
		s.broadcast(msg)
	}

	if outcome == level.Continue {
		return
	}

	next := s.levelIndex
	if outcome == level.Won {
		next = (s.levelIndex + 1) % len(s.opts.Levels)
	}
	finished := messages.LevelFinished{
		Level:   s.level.Name(),
		Outcome: int(outcome),
		Score:   s.level.HUD().Score,
		Next:    s.opts.Levels[next].Name,
	}
	log.Printf("[server] %s %v with score %d", finished.Level, outcome, finished.Score)
	if err := s.load(next); err != nil {
		log.Printf("[server] %v", err)
		return
	}
	s.broadcast(finished)
}

// World returns the synced world.
func (s *Server) World() donburi.World {
	return s.world
}

// PlayerCount returns the number of joined clients.
func (s *Server) PlayerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}
