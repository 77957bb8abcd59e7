package core

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/room-relay/internal/metrics"
)

// Hub is the serialization domain for the whole relay: one goroutine owns
// the connection registry and the room store, and every mutation reaches
// them as a message on one of the hub's channels. Connection handlers never
// touch the stores directly, and no socket I/O ever runs on the hub
// goroutine; fan-out is a non-blocking write into each recipient's event
// buffer, drained by that connection's own writer.
type Hub struct {
	registry *Registry
	store    *RoomStore
	log      *zerolog.Logger

	register chan *Client
	commands chan clientCommand
	stats    chan chan Stats
}

type clientCommand struct {
	client *Client
	cmd    *Command
}

// Stats is a point-in-time occupancy snapshot, answered on the hub goroutine
// so the two counts are mutually consistent.
type Stats struct {
	Connections int `json:"connections"`
	Rooms       int `json:"rooms"`
}

// NewHub creates a hub with empty stores. A nil logger disables logging.
func NewHub(logger *zerolog.Logger) *Hub {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Hub{
		registry: NewRegistry(),
		store:    NewRoomStore(NewCodeGenerator()),
		log:      logger,
		register: make(chan *Client),
		commands: make(chan clientCommand),
		stats:    make(chan chan Stats),
	}
}

// RegisterClient adds the client to the relay and starts pumping its command
// channel into the hub loop. The pump exits when the client's command channel
// is closed, which is also what triggers disconnect cleanup: cleanup runs
// exactly once per connection and only after every command the client managed
// to send has been processed.
func (h *Hub) RegisterClient(c *Client) {
	h.register <- c
	go func() {
		for cmd := range c.Commands {
			h.commands <- clientCommand{client: c, cmd: cmd}
		}
		h.commands <- clientCommand{client: c, cmd: nil}
	}()
}

// UnregisterClient disconnects the client from the relay. Idempotent: the
// close paths of the transport layer may all call it, only the first takes
// effect.
func (h *Hub) UnregisterClient(c *Client) {
	c.close()
}

// Stats asks the hub loop for an occupancy snapshot.
func (h *Hub) Stats(ctx context.Context) (Stats, error) {
	reply := make(chan Stats, 1)
	select {
	case h.stats <- reply:
	case <-ctx.Done():
		return Stats{}, ctx.Err()
	}
	select {
	case s := <-reply:
		return s, nil
	case <-ctx.Done():
		return Stats{}, ctx.Err()
	}
}

// Run processes hub messages until the context is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case c := <-h.register:
			h.handleRegister(c)
		case cc := <-h.commands:
			if cc.cmd == nil {
				h.handleDisconnect(cc.client)
				continue
			}
			h.handleCommand(cc.client, cc.cmd)
		case reply := <-h.stats:
			reply <- Stats{Connections: h.registry.Len(), Rooms: h.store.Len()}
		case <-ctx.Done():
			return
		}
	}
}

func (h *Hub) handleRegister(c *Client) {
	h.registry.Register(c)
	metrics.ConnectionsActive.Set(float64(h.registry.Len()))
	h.log.Debug().Str("player_id", c.ID).Msg("client registered")
}

func (h *Hub) handleDisconnect(c *Client) {
	if !h.registry.Unregister(c.ID) {
		return
	}

	code, deleted := h.store.Leave(c)
	if code != "" && !deleted {
		if room, ok := h.store.Get(code); ok {
			h.notifyDropped(room.broadcast(&Event{
				Kind:     EventPlayerLeft,
				RoomCode: code,
				PlayerID: c.ID,
			}, c.ID))
		}
	}

	close(c.Events)
	metrics.ConnectionsActive.Set(float64(h.registry.Len()))
	metrics.RoomsActive.Set(float64(h.store.Len()))
	h.log.Info().
		Str("player_id", c.ID).
		Str("room_code", code).
		Bool("room_deleted", deleted).
		Msg("client disconnected")
}

func (h *Hub) handleCommand(c *Client, cmd *Command) {
	switch cmd.Kind {
	case CommandCreateRoom:
		h.handleCreate(c)
	case CommandJoinRoom:
		h.handleJoin(c, cmd.RoomCode)
	case CommandLeaveRoom:
		h.handleLeave(c)
	case CommandUpdate:
		h.handleUpdate(c, cmd)
	default:
		h.send(c, errorEvent(ErrCodeBadRequest, "unknown command"))
	}
}

func (h *Hub) handleCreate(c *Client) {
	if c.Room != "" {
		h.send(c, errorEvent(ErrCodeAlreadyInRoom, "already in a room"))
		return
	}

	code, err := h.store.Create(c)
	if err != nil {
		h.log.Error().Err(err).Msg("room code allocation failed")
		h.send(c, errorEvent(ErrCodeCodeSpaceExhausted, "no room codes available, try again"))
		return
	}

	metrics.RoomsCreated.Inc()
	metrics.RoomsActive.Set(float64(h.store.Len()))
	h.log.Info().Str("player_id", c.ID).Str("room_code", code).Msg("room created")
	h.send(c, &Event{Kind: EventRoomCreated, RoomCode: code, PlayerID: c.ID})
}

func (h *Hub) handleJoin(c *Client, code string) {
	if code == "" {
		h.send(c, errorEvent(ErrCodeBadRequest, "roomCode is required"))
		return
	}
	if c.Room == code {
		// Re-joining the bound room is an idempotent confirmation.
		h.send(c, &Event{Kind: EventJoinSuccess, RoomCode: code, PlayerID: c.ID})
		return
	}
	if c.Room != "" {
		h.send(c, errorEvent(ErrCodeAlreadyInRoom, "already in a room"))
		return
	}

	if err := h.store.Join(c, code); err != nil {
		h.send(c, &Event{
			Kind:     EventJoinFailed,
			RoomCode: code,
			Error:    relayError(ErrCodeRoomNotFound, "Room not found"),
		})
		return
	}

	h.log.Info().Str("player_id", c.ID).Str("room_code", code).Msg("player joined room")
	h.send(c, &Event{Kind: EventJoinSuccess, RoomCode: code, PlayerID: c.ID})

	if room, ok := h.store.Get(code); ok {
		h.notifyDropped(room.broadcast(&Event{
			Kind:     EventPlayerJoined,
			RoomCode: code,
			PlayerID: c.ID,
		}, c.ID))
	}
}

func (h *Hub) handleLeave(c *Client) {
	if c.Room == "" {
		h.send(c, errorEvent(ErrCodeNotInRoom, "not in a room"))
		return
	}

	code, deleted := h.store.Leave(c)
	if !deleted {
		if room, ok := h.store.Get(code); ok {
			h.notifyDropped(room.broadcast(&Event{
				Kind:     EventPlayerLeft,
				RoomCode: code,
				PlayerID: c.ID,
			}, c.ID))
		}
	}

	metrics.RoomsActive.Set(float64(h.store.Len()))
	h.log.Info().Str("player_id", c.ID).Str("room_code", code).Msg("player left room")
	h.send(c, &Event{Kind: EventLeftRoom, RoomCode: code, PlayerID: c.ID})
}

func (h *Hub) handleUpdate(c *Client, cmd *Command) {
	if c.Room == "" {
		h.send(c, errorEvent(ErrCodeNotInRoom, "not in a room"))
		return
	}

	// Membership is read fresh here, never snapshotted earlier: anyone who
	// left between this update and the last must not receive it.
	room, ok := h.store.Get(c.Room)
	if !ok {
		h.send(c, errorEvent(ErrCodeNotInRoom, "not in a room"))
		return
	}

	metrics.UpdatesRelayed.Inc()
	h.notifyDropped(room.broadcast(&Event{
		Kind:     EventPlayerUpdate,
		RoomCode: room.Code,
		PlayerID: c.ID,
		Position: cmd.Position,
		Rotation: cmd.Rotation,
	}, c.ID))
}

// send delivers an event to a single client without blocking the hub loop.
func (h *Hub) send(c *Client, ev *Event) {
	select {
	case c.Events <- ev:
	default:
		h.notifyDropped(1)
	}
}

func (h *Hub) notifyDropped(n int) {
	if n > 0 {
		metrics.EventsDropped.Add(float64(n))
		h.log.Warn().Int("count", n).Msg("dropped events for slow consumers")
	}
}

func errorEvent(code, msg string) *Event {
	return &Event{Kind: EventError, Error: relayError(code, msg)}
}
