package core

import (
	"context"
	"testing"
	"time"
)

func startHub(t *testing.T) *Hub {
	t.Helper()

	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	return hub
}

func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				t.Fatalf("event channel closed while waiting for kind %v", kind)
			}
			if ev != nil && ev.Kind == kind {
				return ev
			}
		case <-deadline:
			t.Fatalf("expected event kind %v not received", kind)
		}
	}
}

// mustNoEvent asserts that nothing arrives on ch within the grace window.
func mustNoEvent(t *testing.T, ch <-chan *Event) {
	t.Helper()

	select {
	case ev, ok := <-ch:
		if ok {
			t.Fatalf("expected no event, got kind %v", ev.Kind)
		}
	case <-time.After(150 * time.Millisecond):
	}
}

// waitStats polls the hub until the predicate holds or the deadline passes.
func waitStats(t *testing.T, hub *Hub, ok func(Stats) bool) Stats {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		stats, err := hub.Stats(ctx)
		cancel()
		if err != nil {
			t.Fatalf("stats: %v", err)
		}
		if ok(stats) {
			return stats
		}
		if time.Now().After(deadline) {
			t.Fatalf("stats condition not reached, last %+v", stats)
		}
		time.Sleep(10 * time.Millisecond)
	}
}
