package sigslot

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitInvokesEachSlotOnceWithArgument(t *testing.T) {
	s := New[int]()

	var got []int
	s.Connect(func(v int) { got = append(got, v) })
	s.Connect(func(v int) { got = append(got, v*10) })

	s.Emit(5)

	assert.Equal(t, []int{5, 50}, got)
}

func TestEmitRegistrationOrder(t *testing.T) {
	s := New[struct{}]()

	var order []string
	for _, name := range []string{"a", "b", "c", "d"} {
		s.Connect(func(struct{}) { order = append(order, name) })
	}

	s.Emit(struct{}{})

	assert.Equal(t, []string{"a", "b", "c", "d"}, order)
}

func TestEmitOrderSurvivesMiddleDisconnect(t *testing.T) {
	s := New[struct{}]()

	var order []string
	s.Connect(func(struct{}) { order = append(order, "a") })
	middle := s.Connect(func(struct{}) { order = append(order, "b") })
	s.Connect(func(struct{}) { order = append(order, "c") })

	middle.Disconnect()
	s.Emit(struct{}{})

	assert.Equal(t, []string{"a", "c"}, order)
}

func TestEmitWithNoSlots(t *testing.T) {
	s := New[string]()

	// Must not panic or block.
	s.Emit("nobody listening")

	assert.Equal(t, 0, s.Len())
}

func TestDisconnectAll(t *testing.T) {
	s := New[int]()

	count := 0
	s.Connect(func(int) { count++ })
	s.Connect(func(int) { count++ })
	s.Connect(func(int) { count++ })

	s.DisconnectAll()
	s.Emit(1)

	assert.Equal(t, 0, count)
	assert.Equal(t, 0, s.Len())
}

func TestLen(t *testing.T) {
	s := New[int]()

	assert.Equal(t, 0, s.Len())

	first := s.Connect(func(int) {})
	second := s.Connect(func(int) {})
	assert.Equal(t, 2, s.Len())

	// Blocked slots stay connected.
	second.Block()
	assert.Equal(t, 2, s.Len())

	first.Disconnect()
	assert.Equal(t, 1, s.Len())
}

func TestConnectDuringEmitDeferredToNextEmission(t *testing.T) {
	s := New[int]()

	var calls []string
	connected := false
	s.Connect(func(int) {
		calls = append(calls, "outer")
		if !connected {
			connected = true
			s.Connect(func(int) { calls = append(calls, "inner") })
		}
	})

	s.Emit(0)
	assert.Equal(t, []string{"outer"}, calls, "slot connected mid-emission must not run in that emission")

	s.Emit(0)
	assert.Equal(t, []string{"outer", "outer", "inner"}, calls)
}

func TestDisconnectDuringEmitStillDeliversSnapshot(t *testing.T) {
	s := New[int]()

	var calls []string
	var victim *Connection[int]
	s.Connect(func(int) {
		calls = append(calls, "first")
		victim.Disconnect()
	})
	victim = s.Connect(func(int) { calls = append(calls, "second") })

	s.Emit(0)
	assert.Equal(t, []string{"first", "second"}, calls, "snapshot decides delivery for the current emission")

	s.Emit(0)
	assert.Equal(t, []string{"first", "second", "first"}, calls)
}

func TestBlockDuringEmitStillDeliversSnapshot(t *testing.T) {
	s := New[int]()

	var calls []string
	var target *Connection[int]
	s.Connect(func(int) {
		calls = append(calls, "blocker")
		target.Block()
	})
	target = s.Connect(func(int) { calls = append(calls, "target") })

	s.Emit(0)
	assert.Equal(t, []string{"blocker", "target"}, calls, "blocked flag is read at snapshot time")

	s.Emit(0)
	assert.Equal(t, []string{"blocker", "target", "blocker"}, calls)
}

func TestStaleHandleCannotTouchLaterRegistrations(t *testing.T) {
	s := New[int]()

	old := s.Connect(func(int) {})
	s.DisconnectAll()

	count := 0
	s.Connect(func(int) { count++ })

	// Identities are never reused, so the stale handle addresses nothing.
	old.Disconnect()
	old.Block()

	s.Emit(0)
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, s.Len())
}

func TestConcurrentConnectEmitDisconnect(t *testing.T) {
	s := New[int]()

	var hits atomic.Int64
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				conn := s.Connect(func(int) { hits.Add(1) })
				s.Emit(j)
				conn.Disconnect()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, s.Len())
	// Each emission sees at least the emitter's own slot.
	assert.GreaterOrEqual(t, hits.Load(), int64(800))
}
