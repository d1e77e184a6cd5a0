package veloq

import (
	"sync"
	"time"

	"github.com/veloq/veloq/internal/protocol"
)

// A path is one network path of an active connection.
type path struct {
	pathway  Pathway
	conn     SendConn
	cc       CongestionController
	receiver *pathReceiver

	lastRecvTime time.Time // guarded by the connection state lock
}

// A pathReceiver owns the queue of packets received on one path. The wire
// layer keeps delivering into it for as long as the handle is not stopped;
// whoever holds the handle decides where the packets go next. During the
// closing transition, ownership moves from the active connection to a
// forwarding task.
type pathReceiver struct {
	pathway Pathway
	packets chan ReceivedPacket

	mu      sync.Mutex
	stopped bool
}

func newPathReceiver(pathway Pathway) *pathReceiver {
	return &pathReceiver{
		pathway: pathway,
		packets: make(chan ReceivedPacket, protocol.PathReceiveQueueLen),
	}
}

// deliver enqueues a packet. It reports false if the receiver was stopped or
// the queue is full; the packet is dropped in that case.
func (r *pathReceiver) deliver(p ReceivedPacket) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return false
	}
	select {
	case r.packets <- p:
		return true
	default:
		return false
	}
}

// stop closes the intake. Packets already queued can still be drained.
// Stopping an already stopped receiver is a no-op.
func (r *pathReceiver) stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return
	}
	r.stopped = true
	close(r.packets)
}
