package http

import (
	"encoding/json"
	"testing"

	"github.com/vovakirdan/room-relay/internal/core"
	"github.com/vovakirdan/room-relay/internal/proto"
)

func TestInboundToCommandValidation(t *testing.T) {
	cases := []struct {
		name     string
		inbound  proto.Inbound
		wantKind core.CommandKind
		wantErr  bool
	}{
		{name: "create", inbound: proto.Inbound{Type: proto.TypeCreateRoom}, wantKind: core.CommandCreateRoom},
		{name: "join", inbound: proto.Inbound{Type: proto.TypeJoinRoom, RoomCode: "AB12"}, wantKind: core.CommandJoinRoom},
		{name: "leave", inbound: proto.Inbound{Type: proto.TypeLeaveRoom}, wantKind: core.CommandLeaveRoom},
		{name: "update", inbound: proto.Inbound{Type: proto.TypePlayerUpdate, Position: json.RawMessage(`{"x":1}`)}, wantKind: core.CommandUpdate},
		{name: "join without code", inbound: proto.Inbound{Type: proto.TypeJoinRoom}, wantErr: true},
		{name: "update without position", inbound: proto.Inbound{Type: proto.TypePlayerUpdate}, wantErr: true},
		{name: "missing type", inbound: proto.Inbound{}, wantErr: true},
		{name: "unknown type", inbound: proto.Inbound{Type: "teleport"}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, errOut := inboundToCommand(tc.inbound)
			if tc.wantErr {
				if errOut == nil || errOut.Type != proto.TypeError || errOut.Message == "" {
					t.Fatalf("expected error outbound, got cmd=%+v err=%+v", cmd, errOut)
				}
				return
			}
			if errOut != nil {
				t.Fatalf("unexpected error outbound: %+v", errOut)
			}
			if cmd.Kind != tc.wantKind {
				t.Fatalf("unexpected kind %v", cmd.Kind)
			}
		})
	}
}

func TestInboundToCommandNormalizesCode(t *testing.T) {
	cmd, errOut := inboundToCommand(proto.Inbound{Type: proto.TypeJoinRoom, RoomCode: " ab12 "})
	if errOut != nil {
		t.Fatalf("unexpected error outbound: %+v", errOut)
	}
	if cmd.RoomCode != "AB12" {
		t.Fatalf("code not normalized: %q", cmd.RoomCode)
	}
}

func TestOutboundFromEventShapes(t *testing.T) {
	update := outboundFromEvent(&core.Event{
		Kind:     core.EventPlayerUpdate,
		PlayerID: "p2",
		Position: json.RawMessage(`{"x":1}`),
	})
	if update.Type != proto.TypePlayerUpdate || update.PlayerID != "p2" || string(update.Position) != `{"x":1}` {
		t.Fatalf("unexpected update outbound: %+v", update)
	}

	failed := outboundFromEvent(&core.Event{
		Kind:  core.EventJoinFailed,
		Error: &core.RelayError{Code: core.ErrCodeRoomNotFound, Message: "Room not found"},
	})
	if failed.Type != proto.TypeJoinFailed || failed.Message != "Room not found" {
		t.Fatalf("unexpected joinFailed outbound: %+v", failed)
	}
}
