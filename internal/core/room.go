package core

// Room groups clients that receive each other's state updates. Membership is
// keyed by identity; the room never owns the connection, the registry does.
type Room struct {
	Code    string
	members map[string]*Client
}

func newRoom(code string) *Room {
	return &Room{
		Code:    code,
		members: make(map[string]*Client),
	}
}

// add inserts a client into the room. Returns true if newly added.
func (r *Room) add(c *Client) bool {
	if _, exists := r.members[c.ID]; exists {
		return false
	}
	r.members[c.ID] = c
	return true
}

// remove deletes a client from the room. Returns true if removed.
func (r *Room) remove(c *Client) bool {
	if _, exists := r.members[c.ID]; !exists {
		return false
	}
	delete(r.members, c.ID)
	return true
}

// empty returns true if no clients remain in the room.
func (r *Room) empty() bool {
	return len(r.members) == 0
}

// memberIDs returns the identities of all current members.
func (r *Room) memberIDs() []string {
	ids := make([]string, 0, len(r.members))
	for id := range r.members {
		ids = append(ids, id)
	}
	return ids
}

// broadcast sends the event to every member except the excluded identity.
// Sends never block: a recipient with a full event buffer loses that copy
// rather than stalling delivery to everyone else. Returns how many copies
// were dropped.
func (r *Room) broadcast(ev *Event, exclude string) int {
	dropped := 0
	for id, member := range r.members {
		if id == exclude {
			continue
		}
		select {
		case member.Events <- ev:
		default:
			dropped++
		}
	}
	return dropped
}
