package core

import (
	"errors"
	"testing"
)

func newTestStore() *RoomStore {
	return NewRoomStore(NewCodeGenerator())
}

func TestStoreCreateBindsOwner(t *testing.T) {
	store := newTestStore()
	owner := NewClient("p1")

	code, err := store.Create(owner)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(code) != CodeLength {
		t.Fatalf("unexpected code %q", code)
	}
	if owner.Room != code {
		t.Fatalf("owner not bound, got %q", owner.Room)
	}

	members := store.Members(code)
	if len(members) != 1 || members[0] != "p1" {
		t.Fatalf("unexpected members %v", members)
	}
	if store.IsEmpty(code) {
		t.Fatal("freshly created room reported empty")
	}
}

func TestStoreJoinUnknownCodeMutatesNothing(t *testing.T) {
	store := newTestStore()
	joiner := NewClient("p1")

	err := store.Join(joiner, "ZZ99")
	if !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
	if joiner.Room != "" {
		t.Fatalf("failed join bound the client to %q", joiner.Room)
	}
	if store.Len() != 0 {
		t.Fatalf("failed join created a room, store has %d", store.Len())
	}
}

func TestStoreJoinIsIdempotentForMembers(t *testing.T) {
	store := newTestStore()
	owner := NewClient("p1")
	joiner := NewClient("p2")

	code, err := store.Create(owner)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.Join(joiner, code); err != nil {
		t.Fatalf("join: %v", err)
	}
	if err := store.Join(joiner, code); err != nil {
		t.Fatalf("repeat join: %v", err)
	}
	if got := len(store.Members(code)); got != 2 {
		t.Fatalf("expected 2 members after repeat join, got %d", got)
	}
}

func TestStoreLeaveDeletesDrainedRoom(t *testing.T) {
	store := newTestStore()
	owner := NewClient("p1")
	joiner := NewClient("p2")

	code, err := store.Create(owner)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.Join(joiner, code); err != nil {
		t.Fatalf("join: %v", err)
	}

	left, deleted := store.Leave(joiner)
	if left != code || deleted {
		t.Fatalf("unexpected leave result %q deleted=%v", left, deleted)
	}
	if joiner.Room != "" {
		t.Fatalf("leave did not clear binding, got %q", joiner.Room)
	}

	left, deleted = store.Leave(owner)
	if left != code || !deleted {
		t.Fatalf("last leave should delete the room, got %q deleted=%v", left, deleted)
	}
	if !store.IsEmpty(code) || store.Len() != 0 {
		t.Fatal("drained room still live")
	}

	// The dead code is gone for good until reissued by the generator.
	if err := store.Join(NewClient("p3"), code); !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound against dead code, got %v", err)
	}
}

func TestStoreLeaveWithoutBindingIsNoop(t *testing.T) {
	store := newTestStore()
	drifter := NewClient("p1")

	code, deleted := store.Leave(drifter)
	if code != "" || deleted {
		t.Fatalf("unexpected leave result %q deleted=%v", code, deleted)
	}
}

func TestStoreNeverHoldsEmptyRoom(t *testing.T) {
	store := newTestStore()

	// Arbitrary churn; after every operation each live room has members.
	clients := []*Client{NewClient("p1"), NewClient("p2"), NewClient("p3")}
	codes := make([]string, 0, 4)

	check := func() {
		t.Helper()
		for _, code := range codes {
			if _, live := store.Get(code); live && len(store.Members(code)) == 0 {
				t.Fatalf("room %q is live with zero members", code)
			}
		}
	}

	for _, c := range clients {
		code, err := store.Create(c)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		codes = append(codes, code)
		check()
	}
	for _, c := range clients {
		store.Leave(c)
		check()
	}
	if store.Len() != 0 {
		t.Fatalf("expected empty store, have %d rooms", store.Len())
	}
}
