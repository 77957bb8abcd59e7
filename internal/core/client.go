package core

import "sync"

// Client is one connected player as seen by the relay core. The transport
// layer feeds inbound commands into Commands and drains Events back out to
// the socket; the hub goroutine is the only other party touching either.
type Client struct {
	ID   string
	Room string // bound room code, empty while unjoined

	Commands chan *Command
	Events   chan *Event

	closeOnce sync.Once
}

// NewClient constructs a client with initialized channels. Events is buffered
// generously because state updates arrive at render-loop cadence.
func NewClient(id string) *Client {
	return &Client{
		ID:       id,
		Commands: make(chan *Command, 8),
		Events:   make(chan *Event, 32),
	}
}

// close seals the command channel. Exactly once, no matter how many close
// paths (read error, write error, explicit shutdown) race to get here.
func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.Commands)
	})
}
