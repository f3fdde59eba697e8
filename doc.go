// Package sigslot provides a typed signal/slot primitive for decoupling event
// producers from consumers.
//
// A Signal is an event source carrying values of a single type. Slots are
// registered with Connect and invoked, in registration order, each time the
// signal is emitted. Every registration returns a Connection handle that
// controls its lifetime: Disconnect severs it, Block and Unblock suspend and
// resume delivery without severing it.
//
// Quick example:
//
//	clicks := sigslot.New[int]()
//
//	conn := clicks.Connect(func(button int) {
//	    fmt.Println("clicked", button)
//	})
//	defer conn.Disconnect()
//
//	clicks.Emit(1)
//
// Emission takes a point-in-time snapshot of the registration set, then
// invokes the snapshot with the registry unlocked. Slots may therefore call
// Connect, Disconnect, Block or Unblock on the same signal without
// deadlocking: a slot connected during an emission is first invoked on the
// next one, and a slot disconnected during an emission still runs once for
// the current one.
//
// Lifetime safety: when a slot targets an object whose lifetime the caller
// cannot guarantee, ConnectWeak binds through a weak reference. A dead target
// is detected lazily on the next emission and the entry disconnects itself;
// the signal never calls through a collected object.
//
// Concurrency: all operations are safe for concurrent use. Delivery is
// synchronous on the emitting goroutine, and concurrent Emit calls interleave
// against independent snapshots, so slots must themselves be safe for
// concurrent invocation if the signal may be emitted from multiple
// goroutines.
package sigslot
