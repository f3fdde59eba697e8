package sigslot

// Connector is a connect-only view of a Signal. A type that owns a signal
// keeps the Signal private, retaining the exclusive right to Emit, and
// publishes the Connector so callers can subscribe:
//
//	type Door struct {
//	    opened *sigslot.Signal[string]
//	}
//
//	func (d *Door) Opened() sigslot.Connector[string] {
//	    return d.opened.Connector()
//	}
//
// Connector is a small value and may be freely copied; every copy refers to
// the same underlying signal.
type Connector[T any] struct {
	sig *Signal[T]
}

// Connector returns a connect-only view of the signal.
func (s *Signal[T]) Connector() Connector[T] {
	return Connector[T]{sig: s}
}

// Connect registers fn on the underlying signal.
func (c Connector[T]) Connect(fn func(T)) *Connection[T] {
	return c.sig.Connect(fn)
}

// ConnectorMethod registers a call of method on target through a connect-only
// view. It mirrors ConnectMethod; a free function because Go methods cannot
// introduce the target's type parameter. The target is captured strongly and
// must remain valid for as long as the connection is live.
func ConnectorMethod[O any, T any](c Connector[T], target O, method func(O, T)) *Connection[T] {
	return ConnectMethod(c.sig, target, method)
}
