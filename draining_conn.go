package veloq

import (
	"sync/atomic"

	"github.com/veloq/veloq/internal/qerr"
	"github.com/veloq/veloq/logging"
)

// A drainingConn absorbs and discards packets that are still in flight after
// the closing handshake is over. It keeps no crypto state, only the terminal
// error and the connection IDs to release at teardown.
type drainingConn struct {
	err     *qerr.ConnError
	connIDs []ConnectionID

	dropped atomic.Uint64

	tracer *logging.ConnectionTracer
}

func newDrainingConn(e *qerr.ConnError, connIDs []ConnectionID, tracer *logging.ConnectionTracer) *drainingConn {
	return &drainingConn{err: e, connIDs: connIDs, tracer: tracer}
}

// handlePacket drops the packet. Packets received while draining were sent
// before the peer learned about the close; they carry no information we need.
func (c *drainingConn) handlePacket(p ReceivedPacket) {
	c.dropped.Add(1)
	if c.tracer != nil && c.tracer.DroppedPacket != nil {
		c.tracer.DroppedPacket(logging.PacketDropDraining, p.Size())
	}
}
