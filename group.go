package sigslot

import "sync"

// Disconnector is the surface a Group needs from a connection handle. It is
// satisfied by *Connection of any signal type.
type Disconnector interface {
	Disconnect()
}

// Group collects connection handles, possibly from signals of different
// types, so one call severs them all. The zero value is ready to use.
//
// It is the scope-style counterpart to keeping individual handles: a
// component tracks every connection it makes in a Group and defers a single
// Disconnect for teardown.
type Group struct {
	mu    sync.Mutex
	conns []Disconnector
}

// Add tracks a connection handle for later disconnection.
func (g *Group) Add(c Disconnector) {
	g.mu.Lock()
	g.conns = append(g.conns, c)
	g.mu.Unlock()
}

// Track adds the connection to the group and returns it, so registration and
// tracking read as one expression:
//
//	conn := sigslot.Track(&group, signal.Connect(onChange))
func Track[T any](g *Group, c *Connection[T]) *Connection[T] {
	g.Add(c)
	return c
}

// Disconnect severs every tracked connection, most recently added first, and
// empties the group. Idempotent; the group can be reused afterwards.
func (g *Group) Disconnect() {
	g.mu.Lock()
	conns := g.conns
	g.conns = nil
	g.mu.Unlock()

	for i := len(conns) - 1; i >= 0; i-- {
		conns[i].Disconnect()
	}
}

// Len returns the number of handles currently tracked.
func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.conns)
}
