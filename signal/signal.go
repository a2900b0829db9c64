/*
Package signal implements change notification for style sources.

A Signal holds a list of handlers which are called, in connection order,
whenever the signal is emitted. Handlers may connect and disconnect other
handlers, or re-emit the signal, from within a callback. A re-entrant
emission is queued and delivered after the current one has finished, so
no emission is lost and handlers are never called recursively.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package signal

import (
	"sync"
	"sync/atomic"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.provider'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.provider")
}

// HandlerID identifies a connected handler. Zero is never a valid id.
type HandlerID uint64

type handler struct {
	id   HandlerID
	fn   func()
	dead atomic.Bool
}

// Signal is a notification source without payload. The zero value is ready
// to use. A Signal must not be copied after first use.
type Signal struct {
	mu       sync.Mutex
	name     string
	handlers []*handler
	nextID   HandlerID
	emitting bool
	pending  int
}

// New creates a named signal. The name is used for tracing only.
func New(name string) *Signal {
	return &Signal{name: name}
}

// Connect adds fn to the handlers of s and returns an id for Disconnect.
func (s *Signal) Connect(fn func()) HandlerID {
	if fn == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.handlers = append(s.handlers, &handler{id: s.nextID, fn: fn})
	return s.nextID
}

// Disconnect removes a handler. A handler disconnected during an emission
// is not called anymore, even if it has not been reached yet.
// Disconnect returns false if id is not connected.
func (s *Signal) Disconnect(id HandlerID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, h := range s.handlers {
		if h.id == id {
			h.dead.Store(true)
			s.handlers = append(s.handlers[:i:i], s.handlers[i+1:]...)
			return true
		}
	}
	return false
}

// HandlerCount returns the number of connected handlers.
func (s *Signal) HandlerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handlers)
}

// Emit calls every connected handler. If s is already emitting, the
// emission is queued and Emit returns immediately.
func (s *Signal) Emit() {
	s.mu.Lock()
	if s.emitting {
		s.pending++
		s.mu.Unlock()
		tracer().Debugf("signal %s: queued re-entrant emission", s.name)
		return
	}
	s.emitting = true
	done := false
	defer func() { // a panicking handler must not block the signal
		if !done {
			s.mu.Lock()
			s.emitting = false
			s.pending = 0
			s.mu.Unlock()
		}
	}()
	for {
		snapshot := append([]*handler(nil), s.handlers...)
		s.mu.Unlock()
		for _, h := range snapshot {
			if !h.dead.Load() {
				h.fn()
			}
		}
		s.mu.Lock()
		if s.pending == 0 {
			s.emitting, done = false, true
			s.mu.Unlock()
			return
		}
		s.pending--
	}
}
