package veloq

import (
	"sync"

	"github.com/veloq/veloq/internal/qerr"
)

// A connErrorSignal is the funnel through which every terminal cause reaches
// the state machine. The first error raised wins; later ones are dropped.
type connErrorSignal struct {
	mu   sync.Mutex
	err  *qerr.ConnError
	done chan struct{}
}

func newConnErrorSignal() *connErrorSignal {
	return &connErrorSignal{done: make(chan struct{})}
}

// raise stores the error and wakes the monitoring task.
// Only the first call has any effect.
func (s *connErrorSignal) raise(e *qerr.ConnError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return
	}
	s.err = e
	close(s.done)
}

// received returns a channel that is closed once an error was raised.
func (s *connErrorSignal) received() <-chan struct{} { return s.done }

func (s *connErrorSignal) get() *qerr.ConnError {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
