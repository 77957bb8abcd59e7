package core

import "encoding/json"

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandCreateRoom opens a new room with the client as its first member.
	CommandCreateRoom CommandKind = iota
	// CommandJoinRoom adds the client to an existing room by code.
	CommandJoinRoom
	// CommandLeaveRoom returns the client to the unjoined state.
	CommandLeaveRoom
	// CommandUpdate relays a state update to the client's room.
	CommandUpdate
)

// Command represents an action requested by a client. Position and rotation
// are carried verbatim; the relay never interprets them.
type Command struct {
	Kind     CommandKind
	RoomCode string
	Position json.RawMessage
	Rotation json.RawMessage
}
