package veloq

import (
	"math/bits"
	"sync"
	"sync/atomic"

	"github.com/veloq/veloq/internal/qerr"
	"github.com/veloq/veloq/internal/utils"
	"github.com/veloq/veloq/logging"
)

// A closingConn is the reduced state kept after we closed the connection
// locally, while waiting for the peer's close confirmation. It retains only
// the crypto scopes needed to keep answering retransmissions, and the
// connection IDs to release at teardown.
type closingConn struct {
	err     *qerr.ConnError
	connIDs []ConnectionID

	// at least one of these is non-nil, otherwise the connection
	// would have gone straight to Draining
	hsScope   *cryptoScope
	dataScope *cryptoScope

	receivers []*pathReceiver

	counter   atomic.Uint32
	stopped   atomic.Bool
	sendClose func(ReceivedPacket)

	confirmOnce sync.Once
	confirmed   chan struct{}

	tracer *logging.ConnectionTracer
	logger utils.Logger
}

func newClosingConn(
	e *qerr.ConnError,
	connIDs []ConnectionID,
	hsScope, dataScope *cryptoScope,
	receivers []*pathReceiver,
	sendClose func(ReceivedPacket),
	tracer *logging.ConnectionTracer,
	logger utils.Logger,
) *closingConn {
	return &closingConn{
		err:       e,
		connIDs:   connIDs,
		hsScope:   hsScope,
		dataScope: dataScope,
		receivers: receivers,
		sendClose: sendClose,
		confirmed: make(chan struct{}),
		tracer:    tracer,
		logger:    logger,
	}
}

// handlePacket processes a packet that arrived while closing. A packet
// carrying the peer's CONNECTION_CLOSE confirms the close. Everything else
// means the peer missed our CONNECTION_CLOSE, so it is retransmitted with an
// exponential backoff: only the 1st, 2nd, 4th, 8th, ... packet triggers a send.
func (c *closingConn) handlePacket(p ReceivedPacket) {
	if c.stopped.Load() {
		return
	}
	if p.ContainsClose {
		c.confirm()
		return
	}
	n := c.counter.Add(1)
	if bits.OnesCount32(n) != 1 {
		return
	}
	c.logger.Debugf("Retransmitting CONNECTION_CLOSE after receiving %d packets", n)
	if c.tracer != nil && c.tracer.ResentConnectionClose != nil {
		c.tracer.ResentConnectionClose(n)
	}
	if c.sendClose != nil {
		c.sendClose(p)
	}
}

// stop ends the closing handshake. Packets handed to this state afterwards
// are dropped; in particular no CONNECTION_CLOSE is retransmitted once the
// connection left the Closing state.
func (c *closingConn) stop() { c.stopped.Store(true) }

// confirm latches the close confirmation. Later calls are no-ops.
func (c *closingConn) confirm() {
	c.confirmOnce.Do(func() { close(c.confirmed) })
}

// closeConfirmed returns a channel that is closed once the peer confirmed the close.
func (c *closingConn) closeConfirmed() <-chan struct{} { return c.confirmed }
