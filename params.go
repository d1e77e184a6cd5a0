package veloq

import (
	"context"
	"sync"

	"github.com/veloq/veloq/internal/qerr"
)

// Parameters hands out the remote transport parameters once negotiation
// delivers them. Remote blocks until then. If the connection dies first, all
// current and future readers get the connection error instead.
type Parameters struct {
	mu     sync.Mutex
	remote *TransportParameters
	err    *qerr.ConnError
	ready  chan struct{}
}

// NewParameters creates a Parameters with negotiation still pending.
func NewParameters() *Parameters {
	return &Parameters{ready: make(chan struct{})}
}

// SetRemote resolves all pending and future Remote calls.
// Only the first call has any effect.
func (p *Parameters) SetRemote(tp *TransportParameters) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.remote != nil || p.err != nil {
		return
	}
	p.remote = tp
	close(p.ready)
}

// Remote returns the negotiated remote parameters, blocking until negotiation
// completes, the context is cancelled, or the connection dies.
func (p *Parameters) Remote(ctx context.Context) (*TransportParameters, error) {
	select {
	case <-p.ready:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return nil, p.err
	}
	return p.remote, nil
}

// OnConnError fails all pending and future Remote calls, unless negotiation
// already completed. Only the first terminal event wins.
func (p *Parameters) OnConnError(e *qerr.ConnError) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.remote != nil || p.err != nil {
		return
	}
	p.err = e
	close(p.ready)
}
