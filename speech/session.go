package speech

import (
	"sync"
	"sync/atomic"
)

// session is the ephemeral state for one speak call: it exists from
// the moment a request is accepted until the utterance ends, errors,
// is stopped, or is superseded by a newer request. Teardown happens
// exactly once on whichever of those paths fires first; the keep-alive
// ticker and any settle-delay continuation watch done and can never
// outlive the session.
type session struct {
	speaking atomic.Bool
	done     chan struct{}
	once     sync.Once
}

func newSession() *session {
	return &session{done: make(chan struct{})}
}

// finish resolves the completion signal and clears the speaking state.
// Safe to call from any goroutine, any number of times.
func (s *session) finish() {
	s.once.Do(func() {
		s.speaking.Store(false)
		close(s.done)
	})
}