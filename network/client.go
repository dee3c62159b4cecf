package network

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/automoto/stretch/shared/messages"
	"github.com/coder/websocket"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateJoinedGame
	StateError
)

// Client manages a WebSocket connection to a level server.
// All shared fields are protected by mu (router callbacks run on necs goroutines).
type Client struct {
	mu sync.RWMutex

	state      ClientState
	lastError  error
	serverName string
	tickRate   int
	level      string
	pilot      bool
	sequence   uint32
	conn       *websocket.Conn

	snapshotCh chan esync.WorldSnapshot // size-1 buffered; latest wins

	eventsCh   chan messages.LevelEvents
	finishedCh chan messages.LevelFinished
}

func NewClient() *Client {
	return &Client{
		state:      StateDisconnected,
		snapshotCh: make(chan esync.WorldSnapshot, 1),
		eventsCh:   make(chan messages.LevelEvents, 16),
		finishedCh: make(chan messages.LevelFinished, 4),
	}
}

// Connect dials the server in a background goroutine and initiates the join handshake.
func (c *Client) Connect(address, version, name string) {
	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.mu.Unlock()

	router.OnConnect(func(_ *router.NetworkClient) {
		log.Println("[client] connected to server")
		c.mu.Lock()
		c.state = StateConnected
		c.mu.Unlock()

		if err := c.SendMessage(messages.JoinRequest{Version: version, Name: name}); err != nil {
			c.setError(fmt.Errorf("failed to send join request: %w", err))
		}
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinAccepted) {
		log.Printf("[client] join accepted: server=%s level=%s pilot=%v",
			msg.ServerName, msg.Level, msg.Pilot)
		c.mu.Lock()
		c.serverName = msg.ServerName
		c.tickRate = msg.TickRate
		c.level = msg.Level
		c.pilot = msg.Pilot
		c.state = StateJoinedGame
		c.mu.Unlock()
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinRejected) {
		log.Printf("[client] join rejected: %s", msg.Reason)
		c.setError(fmt.Errorf("join rejected: %s", msg.Reason))
	})

	router.On(func(_ *router.NetworkClient, _ messages.PilotAssigned) {
		log.Println("[client] now piloting")
		c.mu.Lock()
		c.pilot = true
		c.mu.Unlock()
	})

	router.On(func(_ *router.NetworkClient, snapshot esync.WorldSnapshot) {
		select { // drain stale, push latest
		case <-c.snapshotCh:
		default:
		}
		c.snapshotCh <- snapshot
	})

	router.On(func(_ *router.NetworkClient, evt messages.LevelEvents) {
		select {
		case c.eventsCh <- evt:
		default:
		}
	})

	router.On(func(_ *router.NetworkClient, msg messages.LevelFinished) {
		c.mu.Lock()
		c.level = msg.Next
		c.mu.Unlock()
		select {
		case c.finishedCh <- msg:
		default:
		}
	})

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] disconnected: %v", err)
		c.mu.Lock()
		if c.state != StateError {
			c.state = StateDisconnected
		}
		c.conn = nil
		c.mu.Unlock()
	})

	router.OnError(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] error: %v", err)
	})

	go func() {
		transport := transports.NewWsClientTransport("ws://" + address)
		err := transport.Start(func(conn *websocket.Conn) {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
		})
		if err != nil {
			c.setError(fmt.Errorf("connection failed: %w", err))
		}
	}()
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.state = StateDisconnected
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}

	router.ResetRouter()
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

func (c *Client) Level() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.level
}

func (c *Client) ServerName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.serverName
}

func (c *Client) TickRate() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tickRate
}

// Pilot reports whether this client's input drives the level.
func (c *Client) Pilot() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pilot
}

// LatestSnapshot returns the most recent WorldSnapshot, or nil. Non-blocking.
func (c *Client) LatestSnapshot() *esync.WorldSnapshot {
	select {
	case snap := <-c.snapshotCh:
		return &snap
	default:
		return nil
	}
}

// SendInput stamps in with the next sequence number and sends it. Only the
// pilot's input is used by the server.
func (c *Client) SendInput(in messages.PilotInput) error {
	c.mu.Lock()
	c.sequence++
	in.Sequence = c.sequence
	c.mu.Unlock()
	return c.SendMessage(in)
}

func (c *Client) SendMessage(msg any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return fmt.Errorf("not connected")
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	return conn.Write(context.Background(), websocket.MessageBinary, payload)
}

func (c *Client) setError(err error) {
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}

// DrainEvents returns all pending level events, non-blocking.
func (c *Client) DrainEvents() []messages.LevelEvents {
	return drainChan(c.eventsCh)
}

// DrainFinished returns all pending level results, non-blocking.
func (c *Client) DrainFinished() []messages.LevelFinished {
	return drainChan(c.finishedCh)
}

func drainChan[T any](ch chan T) []T {
	var out []T
	for {
		select {
		case v := <-ch:
			out = append(out, v)
		default:
			return out
		}
	}
}
