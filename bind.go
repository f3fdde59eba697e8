package sigslot

// ConnectMethod registers a call of method on target. The target is captured
// strongly and must remain valid for as long as the connection is live; use
// ConnectWeak when that cannot be guaranteed.
func ConnectMethod[O any, T any](s *Signal[T], target O, method func(O, T)) *Connection[T] {
	return s.Connect(func(v T) {
		method(target, v)
	})
}

// Bind fixes the leading argument of fn, producing a slot for a Signal[T].
//
//	s := sigslot.New[int]()
//	s.Connect(sigslot.Bind(report, "node-a"))
func Bind[B any, T any](fn func(B, T), bound B) func(T) {
	return func(v T) {
		fn(bound, v)
	}
}

// Bind2 fixes the two leading arguments of fn, producing a slot for a
// Signal[T].
func Bind2[B1 any, B2 any, T any](fn func(B1, B2, T), bound1 B1, bound2 B2) func(T) {
	return func(v T) {
		fn(bound1, bound2, v)
	}
}

// BindMethod fixes the leading argument of a method while leaving its
// receiver free. The result composes with ConnectMethod and, because it does
// not capture the receiver, with ConnectWeak:
//
//	sigslot.ConnectWeak(s, gauge, sigslot.BindMethod((*Gauge).Record, "cpu"))
func BindMethod[O any, B any, T any](method func(O, B, T), bound B) func(O, T) {
	return func(o O, v T) {
		method(o, bound, v)
	}
}
