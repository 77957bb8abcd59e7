package core

// Registry tracks every live connection by identity. It is confined to the
// hub goroutine; nothing else may touch it, which is why it carries no lock.
type Registry struct {
	clients map[string]*Client
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{clients: make(map[string]*Client)}
}

// Register adds the client under its identity.
func (r *Registry) Register(c *Client) {
	r.clients[c.ID] = c
}

// Unregister removes the identity and reports whether it was present.
// Calling it again for the same identity is a no-op.
func (r *Registry) Unregister(id string) bool {
	if _, ok := r.clients[id]; !ok {
		return false
	}
	delete(r.clients, id)
	return true
}

// Lookup returns the client bound to id, if any.
func (r *Registry) Lookup(id string) (*Client, bool) {
	c, ok := r.clients[id]
	return c, ok
}

// Len returns the number of live connections.
func (r *Registry) Len() int {
	return len(r.clients)
}
