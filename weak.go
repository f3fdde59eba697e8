package sigslot

import "weak"

// ConnectWeak registers a call of method on target without keeping target
// alive. The binding holds a weak reference: on each emission it is resolved
// to a strong pointer for the duration of the call, and once the target has
// been garbage collected the binding disconnects itself instead of invoking
// anything. The signal never calls through a collected target.
//
// A dead target is detected lazily, so the registration stays counted by Len
// until the first emission after collection.
//
// method must not capture target; a closure that does keeps the target
// reachable and defeats the weak binding. To fix leading arguments, compose
// with BindMethod.
func ConnectWeak[O any, T any](s *Signal[T], target *O, method func(*O, T)) *Connection[T] {
	ref := weak.Make(target)
	id := s.newID()

	s.add(id, func(v T) {
		if strong := ref.Value(); strong != nil {
			method(strong, v)
			return
		}
		s.logger.Debug().Uint64("id", id).Msg("weak target collected, disconnecting slot")
		s.disconnect(id)
	})

	return &Connection[T]{sig: s, id: id}
}
