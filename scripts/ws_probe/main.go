// Command ws_probe is a smoke client for a running relay: it creates a room
// on one socket, joins it from a second, relays one position update, and
// prints everything the server sends back.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/vovakirdan/room-relay/internal/proto"
)

func main() {
	if err := run(); err != nil {
		log.Printf("ws_probe: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:8080/ws", "WebSocket address")
	timeout := flag.Duration("timeout", 10*time.Second, "overall probe timeout")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	host, _, err := websocket.Dial(ctx, *addr, nil)
	if err != nil {
		return fmt.Errorf("dial host: %w", err)
	}
	defer host.Close(websocket.StatusNormalClosure, "bye")

	if err := wsjson.Write(ctx, host, proto.Inbound{Type: proto.TypeCreateRoom}); err != nil {
		return fmt.Errorf("send createRoom: %w", err)
	}

	created, err := read(ctx, host)
	if err != nil {
		return fmt.Errorf("read roomCreated: %w", err)
	}
	if created.Type != proto.TypeRoomCreated {
		return fmt.Errorf("expected roomCreated, got %q", created.Type)
	}
	log.Printf("host: room %s as player %s", created.RoomCode, created.PlayerID)

	guest, _, err := websocket.Dial(ctx, *addr, nil)
	if err != nil {
		return fmt.Errorf("dial guest: %w", err)
	}
	defer guest.Close(websocket.StatusNormalClosure, "bye")

	if err := wsjson.Write(ctx, guest, proto.Inbound{
		Type:     proto.TypeJoinRoom,
		RoomCode: created.RoomCode,
	}); err != nil {
		return fmt.Errorf("send joinRoom: %w", err)
	}

	joined, err := read(ctx, guest)
	if err != nil {
		return fmt.Errorf("read joinSuccess: %w", err)
	}
	if joined.Type != proto.TypeJoinSuccess {
		return fmt.Errorf("expected joinSuccess, got %q", joined.Type)
	}
	log.Printf("guest: joined %s as player %s", joined.RoomCode, joined.PlayerID)

	notice, err := read(ctx, host)
	if err != nil {
		return fmt.Errorf("read playerJoined: %w", err)
	}
	log.Printf("host: %s %s", notice.Type, notice.PlayerID)

	if err := wsjson.Write(ctx, guest, proto.Inbound{
		Type:     proto.TypePlayerUpdate,
		Position: json.RawMessage(`{"x":1,"y":0,"z":2}`),
	}); err != nil {
		return fmt.Errorf("send playerUpdate: %w", err)
	}

	update, err := read(ctx, host)
	if err != nil {
		return fmt.Errorf("read playerUpdate: %w", err)
	}
	log.Printf("host: %s from %s at %s", update.Type, update.PlayerID, update.Position)

	return nil
}

func read(ctx context.Context, conn *websocket.Conn) (proto.Outbound, error) {
	var out proto.Outbound
	err := wsjson.Read(ctx, conn, &out)
	return out, err
}
