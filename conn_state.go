package veloq

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/veloq/veloq/internal/protocol"
	"github.com/veloq/veloq/internal/qerr"
	"github.com/veloq/veloq/internal/utils"
	"github.com/veloq/veloq/logging"
)

// A cryptoScope tracks one encryption level's key context. The key material
// itself stays in the crypto layer; the lifecycle core only needs to know
// whether the context is still usable when the connection starts closing.
type cryptoScope struct {
	level     protocol.EncryptionLevel
	discarded atomic.Bool
}

func newCryptoScope(level protocol.EncryptionLevel) *cryptoScope {
	return &cryptoScope{level: level}
}

func (s *cryptoScope) discard() { s.discarded.Store(true) }

// retain returns the scope if its keys were not discarded yet, nil otherwise.
func (s *cryptoScope) retain() *cryptoScope {
	if s == nil || s.discarded.Load() {
		return nil
	}
	return s
}

// An activeConn owns all per-connection subsystems while the connection is
// transferring data. It is the only state that accepts new operations.
type activeConn struct {
	streams   StreamManager
	datagrams *DatagramFlow
	flowCtrl  FlowController
	crypto    CryptoSession
	params    *Parameters

	hsScope   *cryptoScope
	dataScope *cryptoScope

	paths     map[Pathway]*path
	receivers []*pathReceiver

	localCIDs []ConnectionID
	destCID   ConnectionID
	token     []byte

	sendClose func(ReceivedPacket) // (re)sends the CONNECTION_CLOSE packet
}

// broadcastError tells every subsystem about the terminal error and aborts the
// TLS session. Each subsystem rejects new operations from then on.
func (c *activeConn) broadcastError(e *qerr.ConnError) {
	c.datagrams.OnConnError(e)
	c.flowCtrl.OnConnError(e)
	c.streams.OnConnError(e)
	c.params.OnConnError(e)
	c.crypto.Abort()
}

// maxPTO is the largest 1-RTT probe timeout estimate over all paths.
// A connection without paths cannot exist at this point.
func (c *activeConn) maxPTO() time.Duration {
	if len(c.paths) == 0 {
		panic("veloq BUG: active connection has no paths")
	}
	var pto time.Duration
	for _, p := range c.paths {
		if t := p.cc.PTO(protocol.Encryption1RTT); t > pto {
			pto = t
		}
	}
	return pto
}

// A connState holds exactly one of the four lifecycle states. All transitions
// replace the current value atomically under the lock; no intermediate state
// is ever visible, and the lock is never held across a blocking operation.
type connState struct {
	mu      sync.Mutex
	current any // *activeConn, *closingConn, *drainingConn, or nil once terminated

	router Router
	tracer *logging.ConnectionTracer
	logger utils.Logger
}

func newConnState(conn *activeConn, router Router, tracer *logging.ConnectionTracer, logger utils.Logger) *connState {
	return &connState{current: conn, router: router, tracer: tracer, logger: logger}
}

// beginClose leaves the Active state after a terminal error. It broadcasts the
// error, keeps whichever crypto scopes are still usable, and hands the
// per-path receivers back to the caller so their packets can be redirected.
// If no scope survived, the connection goes straight to Draining and the
// returned closingConn is nil. It reports ok == false if the connection
// already left the Active state.
func (s *connState) beginClose(e *qerr.ConnError) (closing *closingConn, receivers []*pathReceiver, pto time.Duration, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conn, isActive := s.current.(*activeConn)
	if !isActive {
		return nil, nil, 0, false
	}

	conn.broadcastError(e)

	hs := conn.hsScope.retain()
	oneRTT := conn.dataScope.retain()
	receivers = conn.receivers
	pto = conn.maxPTO()

	if hs == nil && oneRTT == nil {
		// nothing left to respond to retransmissions with
		s.current = newDrainingConn(e, conn.localCIDs, s.tracer)
		s.traceStateChange(logging.ConnectionStateDraining, e)
		return nil, receivers, pto, true
	}
	closing = newClosingConn(e, conn.localCIDs, hs, oneRTT, receivers, conn.sendClose, s.tracer, s.logger)
	s.current = closing
	s.traceStateChange(logging.ConnectionStateClosing, e)
	return closing, receivers, pto, true
}

// beginDraining transitions Active directly to Draining. It is used when the
// peer's close confirmation already arrived, so no closing handshake is needed.
func (s *connState) beginDraining(e *qerr.ConnError) (pto time.Duration, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conn, isActive := s.current.(*activeConn)
	if !isActive {
		return 0, false
	}

	conn.broadcastError(e)
	pto = conn.maxPTO()

	for _, r := range conn.receivers {
		r.stop()
	}
	s.current = newDrainingConn(e, conn.localCIDs, s.tracer)
	s.traceStateChange(logging.ConnectionStateDraining, e)
	return pto, true
}

// drainingFromClosing converts the Closing state to Draining after the peer
// confirmed the close. The error and connection IDs carry over.
func (s *connState) drainingFromClosing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	closing, isClosing := s.current.(*closingConn)
	if !isClosing {
		return false
	}
	for _, r := range closing.receivers {
		r.stop()
	}
	closing.stop()
	s.current = newDrainingConn(closing.err, closing.connIDs, s.tracer)
	s.traceStateChange(logging.ConnectionStateDraining, nil)
	return true
}

// noViablePath terminates the connection without any closing or draining
// interval: with no path left there is nobody to exchange closing packets
// with. Connection IDs are released immediately.
func (s *connState) noViablePath() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	conn, isActive := s.current.(*activeConn)
	if !isActive {
		return false
	}

	e := qerr.NewNoViablePathError()
	conn.broadcastError(e)
	for _, r := range conn.receivers {
		r.stop()
	}
	for _, cid := range conn.localCIDs {
		s.router.Remove(cid)
	}
	s.current = nil
	s.traceStateChange(logging.ConnectionStateTerminated, e)
	return true
}

// terminate releases all connection IDs from the router and enters the final
// state. Repeated calls are no-ops. Terminating an Active connection is a
// contract violation: the transition graph never produces it.
func (s *connState) terminate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	var cids []ConnectionID
	switch conn := s.current.(type) {
	case *closingConn:
		for _, r := range conn.receivers {
			r.stop()
		}
		conn.stop()
		cids = conn.connIDs
	case *drainingConn:
		cids = conn.connIDs
	case *activeConn:
		panic("veloq BUG: terminating an active connection")
	case nil:
		return
	}
	for _, cid := range cids {
		s.router.Remove(cid)
	}
	s.current = nil
	s.traceStateChange(logging.ConnectionStateTerminated, nil)
}

// snapshotActive returns the active connection, or the terminal error if the
// connection is closing or draining. Calling into a terminated connection is a
// caller contract violation.
func (s *connState) snapshotActive() (*activeConn, *qerr.ConnError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch conn := s.current.(type) {
	case *activeConn:
		return conn, nil
	case *closingConn:
		return nil, conn.err
	case *drainingConn:
		return nil, conn.err
	default:
		panic("veloq BUG: operation on a terminated connection")
	}
}

func (s *connState) isActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.current.(*activeConn)
	return ok
}

func (s *connState) isDraining() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.current.(*drainingConn)
	return ok
}

// load returns the current state value.
func (s *connState) load() any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// withActive runs f on the active connection, under the state lock.
// It does nothing if the connection already left the Active state.
// f must not block.
func (s *connState) withActive(f func(*activeConn)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if conn, ok := s.current.(*activeConn); ok {
		f(conn)
	}
}

// deliverActive enqueues a packet on the receiver of the path it arrived on.
// Packets for unknown paths, and packets arriving faster than the receive
// queue is drained, are dropped.
func (s *connState) deliverActive(p ReceivedPacket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conn, ok := s.current.(*activeConn)
	if !ok {
		return
	}
	pth, ok := conn.paths[p.Pathway]
	if !ok {
		s.traceDrop(logging.PacketDropUnknownPath, p.Size())
		return
	}
	if !pth.receiver.deliver(p) {
		s.traceDrop(logging.PacketDropQueueFull, p.Size())
	}
}

func (s *connState) traceDrop(reason logging.PacketDropReason, size ByteCount) {
	if s.tracer != nil && s.tracer.DroppedPacket != nil {
		s.tracer.DroppedPacket(reason, size)
	}
}

// traceStateChange is called with the state lock held. The tracer callbacks
// must not call back into the connection.
func (s *connState) traceStateChange(state logging.ConnectionState, e *qerr.ConnError) {
	if s.tracer == nil {
		return
	}
	if s.tracer.UpdatedState != nil {
		s.tracer.UpdatedState(state)
	}
	if e != nil && s.tracer.ClosedConnection != nil {
		s.tracer.ClosedConnection(e)
	}
}
