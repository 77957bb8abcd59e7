package core

// RoomStore owns the table of live rooms. Like the Registry it is confined
// to the hub goroutine, so every mutation is serialized by construction.
//
// Invariant: a room with zero members never exists in the table. The last
// member's departure deletes the room in the same operation, and its code
// immediately becomes reusable.
type RoomStore struct {
	rooms map[string]*Room
	gen   *CodeGenerator
}

// NewRoomStore constructs an empty store using gen for code allocation.
func NewRoomStore(gen *CodeGenerator) *RoomStore {
	return &RoomStore{
		rooms: make(map[string]*Room),
		gen:   gen,
	}
}

// Create allocates a fresh code, opens a room containing only owner, and
// binds the owner to it. Fails only on code-space exhaustion.
func (s *RoomStore) Create(owner *Client) (string, error) {
	code, err := s.gen.Generate(func(candidate string) bool {
		_, live := s.rooms[candidate]
		return live
	})
	if err != nil {
		return "", err
	}

	room := newRoom(code)
	room.add(owner)
	s.rooms[code] = room
	owner.Room = code
	return code, nil
}

// Join adds c to the room with the given code and binds the client to it.
// Joining a room the client is already a member of is a no-op success.
// When no such room exists it fails with ErrRoomNotFound and mutates nothing.
func (s *RoomStore) Join(c *Client, code string) error {
	room, ok := s.rooms[code]
	if !ok {
		return ErrRoomNotFound
	}
	room.add(c)
	c.Room = code
	return nil
}

// Leave removes c from its bound room and clears the binding. Draining the
// room to zero members deletes it atomically with the departure. No-op when
// the client is unbound. Reports the code left and whether the room died.
func (s *RoomStore) Leave(c *Client) (code string, deleted bool) {
	if c.Room == "" {
		return "", false
	}
	code = c.Room
	c.Room = ""

	room, ok := s.rooms[code]
	if !ok {
		return code, false
	}
	room.remove(c)
	if room.empty() {
		delete(s.rooms, code)
		return code, true
	}
	return code, false
}

// Get returns the live room with the given code, if any.
func (s *RoomStore) Get(code string) (*Room, bool) {
	room, ok := s.rooms[code]
	return room, ok
}

// Members returns the identities currently in the room, nil when the code
// matches no live room.
func (s *RoomStore) Members(code string) []string {
	room, ok := s.rooms[code]
	if !ok {
		return nil
	}
	return room.memberIDs()
}

// IsEmpty reports whether the code maps to no members. A live room always
// has at least one, so this is equivalent to "no such room".
func (s *RoomStore) IsEmpty(code string) bool {
	_, ok := s.rooms[code]
	return !ok
}

// Len returns the number of live rooms.
func (s *RoomStore) Len() int {
	return len(s.rooms)
}
