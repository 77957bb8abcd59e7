package http

import (
	"strings"

	"github.com/vovakirdan/room-relay/internal/core"
	"github.com/vovakirdan/room-relay/internal/proto"
)

// inboundToCommand validates the envelope structure and maps it onto a core
// command. A non-nil Outbound means the envelope was rejected and the caller
// should answer with it; the connection itself stays healthy either way.
func inboundToCommand(inbound proto.Inbound) (*core.Command, *proto.Outbound) {
	switch inbound.Type {
	case proto.TypeCreateRoom:
		return &core.Command{Kind: core.CommandCreateRoom}, nil
	case proto.TypeJoinRoom:
		// Codes are minted uppercase; be forgiving about what users type.
		code := strings.ToUpper(strings.TrimSpace(inbound.RoomCode))
		if code == "" {
			return nil, errorOutbound("roomCode is required")
		}
		return &core.Command{Kind: core.CommandJoinRoom, RoomCode: code}, nil
	case proto.TypeLeaveRoom:
		return &core.Command{Kind: core.CommandLeaveRoom}, nil
	case proto.TypePlayerUpdate:
		if len(inbound.Position) == 0 {
			return nil, errorOutbound("position is required")
		}
		return &core.Command{
			Kind:     core.CommandUpdate,
			Position: inbound.Position,
			Rotation: inbound.Rotation,
		}, nil
	case "":
		return nil, errorOutbound("type is required")
	default:
		return nil, errorOutbound("unknown message type")
	}
}

func errorOutbound(msg string) *proto.Outbound {
	return &proto.Outbound{Type: proto.TypeError, Message: msg}
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventRoomCreated:
		return proto.Outbound{Type: proto.TypeRoomCreated, RoomCode: event.RoomCode, PlayerID: event.PlayerID}
	case core.EventJoinSuccess:
		return proto.Outbound{Type: proto.TypeJoinSuccess, RoomCode: event.RoomCode, PlayerID: event.PlayerID}
	case core.EventJoinFailed:
		return proto.Outbound{Type: proto.TypeJoinFailed, Message: eventErrorMessage(event)}
	case core.EventLeftRoom:
		return proto.Outbound{Type: proto.TypeLeftRoom, RoomCode: event.RoomCode}
	case core.EventPlayerJoined:
		return proto.Outbound{Type: proto.TypePlayerJoined, PlayerID: event.PlayerID}
	case core.EventPlayerLeft:
		return proto.Outbound{Type: proto.TypePlayerLeft, PlayerID: event.PlayerID}
	case core.EventPlayerUpdate:
		return proto.Outbound{
			Type:     proto.TypePlayerUpdate,
			PlayerID: event.PlayerID,
			Position: event.Position,
			Rotation: event.Rotation,
		}
	case core.EventError:
		return proto.Outbound{Type: proto.TypeError, Message: eventErrorMessage(event)}
	default:
		return proto.Outbound{Type: proto.TypeError, Message: "unknown event"}
	}
}

func eventErrorMessage(event *core.Event) string {
	if event.Error == nil {
		return "unknown error"
	}
	return event.Error.Message
}
