package signal

import (
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestSignalConnectEmit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.provider")
	defer teardown()
	//
	s := New("test")
	var calls []string
	a := s.Connect(func() { calls = append(calls, "a") })
	s.Connect(func() { calls = append(calls, "b") })
	s.Emit()
	assert.Equal(t, []string{"a", "b"}, calls)
	assert.True(t, s.Disconnect(a))
	assert.False(t, s.Disconnect(a))
	calls = nil
	s.Emit()
	assert.Equal(t, []string{"b"}, calls)
	assert.Equal(t, 1, s.HandlerCount())
	assert.Equal(t, HandlerID(0), s.Connect(nil))
}

func TestSignalReentrantEmitIsQueued(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.provider")
	defer teardown()
	//
	var s Signal
	depth, maxDepth, count := 0, 0, 0
	s.Connect(func() {
		depth++
		if depth > maxDepth {
			maxDepth = depth
		}
		count++
		if count < 3 {
			s.Emit()
			s.Emit()
		}
		depth--
	})
	s.Emit()
	assert.Equal(t, 1, maxDepth, "handlers must not be called recursively")
	// 1 initial + 2 queued by the first call + 2 queued by the second call
	assert.Equal(t, 5, count)
}

func TestSignalDisconnectDuringEmit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.provider")
	defer teardown()
	//
	s := New("test")
	var second HandlerID
	called := false
	s.Connect(func() { s.Disconnect(second) })
	second = s.Connect(func() { called = true })
	s.Emit()
	assert.False(t, called)
}

func TestSignalPanicResetsState(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.provider")
	defer teardown()
	//
	s := New("test")
	id := s.Connect(func() { panic("boom") })
	assert.Panics(t, s.Emit)
	s.Disconnect(id)
	n := 0
	s.Connect(func() { n++ })
	s.Emit()
	assert.Equal(t, 1, n)
}

func TestSignalConcurrentEmitters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.provider")
	defer teardown()
	//
	s := New("test")
	var mu sync.Mutex
	n := 0
	s.Connect(func() { mu.Lock(); n++; mu.Unlock() })
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Emit()
		}()
	}
	wg.Wait()
	assert.Equal(t, 20, n, "no emission may be lost")
}
