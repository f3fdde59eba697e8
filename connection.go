package sigslot

// Connection is the handle for a single slot registration. It is issued by a
// successful connect and controls that registration's lifetime. A Connection
// must not outlive the Signal that issued it.
//
// A Connection is not safe for concurrent use by multiple goroutines without
// external synchronization; the registry operations it forwards to are.
type Connection[T any] struct {
	sig *Signal[T]
	id  uint64
}

// Disconnect removes the slot from the signal, preventing all future
// invocations. Idempotent: calling it on an already disconnected or zero
// handle does nothing.
func (c *Connection[T]) Disconnect() {
	if c == nil || c.sig == nil {
		return
	}
	c.sig.disconnect(c.id)
	c.sig = nil
}

// Block suspends delivery to the slot without disconnecting it. No-op on a
// disconnected handle.
func (c *Connection[T]) Block() {
	if c == nil || c.sig == nil {
		return
	}
	c.sig.setBlocked(c.id, true)
}

// Unblock resumes delivery to the slot. No-op on a disconnected handle.
func (c *Connection[T]) Unblock() {
	if c == nil || c.sig == nil {
		return
	}
	c.sig.setBlocked(c.id, false)
}

// Connected reports whether the handle still owns a live registration. It
// returns false after Disconnect, and after the registration was removed
// through the signal itself (DisconnectAll, or a weak binding that
// self-disconnected).
func (c *Connection[T]) Connected() bool {
	return c != nil && c.sig != nil && c.sig.has(c.id)
}
