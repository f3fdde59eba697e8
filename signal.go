package sigslot

import (
	"sync"

	"github.com/rs/zerolog"
)

// slot is a registered callable and its blocked flag.
type slot[T any] struct {
	fn      func(T)
	blocked bool
}

// Signal is a typed event source. Slots connected to it are invoked in
// registration order on every Emit. The zero value is not usable; create
// instances with New.
type Signal[T any] struct {
	mu     sync.Mutex
	nextID uint64
	slots  map[uint64]slot[T]
	order  []uint64

	logger zerolog.Logger
}

// New creates a Signal carrying values of type T.
func New[T any](opts ...Option) *Signal[T] {
	cfg := defaultSettings()
	for _, opt := range opts {
		opt(&cfg)
	}

	logger := cfg.logger
	if cfg.name != "" {
		logger = logger.With().Str("signal", cfg.name).Logger()
	}

	return &Signal[T]{
		slots:  make(map[uint64]slot[T]),
		logger: logger,
	}
}

// Connect registers fn as a slot and returns its Connection handle. The slot
// is invoked on every subsequent Emit until disconnected. Connect always
// succeeds; argument compatibility is enforced by the type system.
func (s *Signal[T]) Connect(fn func(T)) *Connection[T] {
	id := s.newID()
	s.add(id, fn)
	return &Connection[T]{sig: s, id: id}
}

// Emit invokes every connected, unblocked slot with v, in registration order.
//
// The slot set is snapshotted under the lock and invoked outside it. Slots
// connected during this emission are not invoked by it; slots disconnected
// during this emission still run once, because the snapshot decides. The
// blocked flag is likewise read at snapshot time.
func (s *Signal[T]) Emit(v T) {
	s.mu.Lock()
	snapshot := make([]func(T), 0, len(s.order))
	for _, id := range s.order {
		if entry := s.slots[id]; !entry.blocked {
			snapshot = append(snapshot, entry.fn)
		}
	}
	s.mu.Unlock()

	s.logger.Debug().Int("slots", len(snapshot)).Msg("emit")

	for _, fn := range snapshot {
		fn(v)
	}
}

// DisconnectAll removes every slot. Handles issued so far become inert;
// identities are never reused.
func (s *Signal[T]) DisconnectAll() {
	s.mu.Lock()
	n := len(s.slots)
	clear(s.slots)
	s.order = s.order[:0]
	s.mu.Unlock()

	s.logger.Debug().Int("slots", n).Msg("disconnected all slots")
}

// Len returns the number of currently connected slots, blocked ones included.
func (s *Signal[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.slots)
}

// newID allocates a fresh slot identity. Identities are monotonic and never
// reused, so a stale handle can never address a later registration.
func (s *Signal[T]) newID() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	return id
}

// add stores fn under a previously allocated identity.
func (s *Signal[T]) add(id uint64, fn func(T)) {
	s.mu.Lock()
	s.slots[id] = slot[T]{fn: fn}
	s.order = append(s.order, id)
	s.mu.Unlock()

	s.logger.Debug().Uint64("id", id).Msg("slot connected")
}

// disconnect removes the slot with the given identity. Absent identities are
// a silent no-op so that disconnect races stay harmless.
func (s *Signal[T]) disconnect(id uint64) {
	s.mu.Lock()
	if _, ok := s.slots[id]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.slots, id)
	for i, v := range s.order {
		if v == id {
			copy(s.order[i:], s.order[i+1:])
			s.order = s.order[:len(s.order)-1]
			break
		}
	}
	s.mu.Unlock()

	s.logger.Debug().Uint64("id", id).Msg("slot disconnected")
}

// setBlocked updates the blocked flag for the given identity. Absent
// identities are a silent no-op.
func (s *Signal[T]) setBlocked(id uint64, blocked bool) {
	s.mu.Lock()
	entry, ok := s.slots[id]
	changed := ok && entry.blocked != blocked
	if changed {
		entry.blocked = blocked
		s.slots[id] = entry
	}
	s.mu.Unlock()

	if changed {
		s.logger.Debug().Uint64("id", id).Bool("blocked", blocked).Msg("slot block state changed")
	}
}

// has reports whether the given identity is still registered.
func (s *Signal[T]) has(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.slots[id]
	return ok
}
