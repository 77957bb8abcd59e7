package core

import "encoding/json"

// EventKind is a notification the relay emits to clients.
type EventKind int

const (
	// EventRoomCreated confirms room creation to the owner.
	EventRoomCreated EventKind = iota
	// EventJoinSuccess confirms a join to the joiner.
	EventJoinSuccess
	// EventJoinFailed tells the joiner the code matched no live room.
	EventJoinFailed
	// EventLeftRoom confirms an explicit leave to the leaver.
	EventLeftRoom
	// EventPlayerJoined tells existing members someone joined their room.
	EventPlayerJoined
	// EventPlayerLeft tells remaining members someone left their room.
	EventPlayerLeft
	// EventPlayerUpdate fans a state update out to the sender's room.
	EventPlayerUpdate
	// EventError reports a per-message error back to the offending client.
	EventError
)

// Event is sent to clients to describe what happened in the relay.
type Event struct {
	Kind     EventKind
	RoomCode string
	PlayerID string
	Position json.RawMessage
	Rotation json.RawMessage
	Error    *RelayError
}
