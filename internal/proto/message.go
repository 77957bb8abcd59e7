package proto

import "encoding/json"

// Message types accepted from clients.
const (
	TypeCreateRoom   = "createRoom"
	TypeJoinRoom     = "joinRoom"
	TypeLeaveRoom    = "leaveRoom"
	TypePlayerUpdate = "playerUpdate"
)

// Message types sent to clients.
const (
	TypeRoomCreated  = "roomCreated"
	TypeJoinSuccess  = "joinSuccess"
	TypeJoinFailed   = "joinFailed"
	TypeLeftRoom     = "leftRoom"
	TypePlayerJoined = "playerJoined"
	TypePlayerLeft   = "playerLeft"
	TypeError        = "error"
)

// Inbound is the envelope for messages coming from the client, one JSON
// object per frame. Position and rotation stay raw: the relay validates the
// envelope, never the payload.
type Inbound struct {
	Type     string          `json:"type"`
	RoomCode string          `json:"roomCode,omitempty"`
	Position json.RawMessage `json:"position,omitempty"`
	Rotation json.RawMessage `json:"rotation,omitempty"`
}

// Outbound is the envelope for messages sent to the client.
type Outbound struct {
	Type     string          `json:"type"`
	RoomCode string          `json:"roomCode,omitempty"`
	PlayerID string          `json:"playerId,omitempty"`
	Position json.RawMessage `json:"position,omitempty"`
	Rotation json.RawMessage `json:"rotation,omitempty"`
	Message  string          `json:"message,omitempty"`
}
