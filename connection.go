package veloq

import (
	"context"
	"errors"
	"time"

	"github.com/veloq/veloq/internal/protocol"
	"github.com/veloq/veloq/internal/qerr"
	"github.com/veloq/veloq/internal/utils"
	"github.com/veloq/veloq/logging"
)

// ptoFactor is the number of probe timeout intervals granted to the closing
// and draining phases. Three intervals tolerate one additional round trip of
// loss for the peer's close confirmation before giving up on it.
const ptoFactor = 3

// A Conn is the shared handle to one connection. It serializes all access to
// the lifecycle state and drives the background tasks that move a dying
// connection through Closing and Draining to its final teardown.
//
// Any subsystem detecting a fatal condition reports it with OnConnError; a
// dedicated goroutine watches that signal and performs the transition. All
// terminal paths converge on exactly one release of the connection's IDs from
// the router.
type Conn struct {
	state   *connState
	connErr *connErrorSignal

	newCC func(Pathway) CongestionController

	logger utils.Logger
	tracer *logging.ConnectionTracer
}

// NewConn creates the handle for a fresh connection and registers its initial
// connection ID with the router. The collaborators are all required; conf may
// be nil.
func NewConn(
	initialCID ConnectionID,
	router Router,
	streams StreamManager,
	flowCtrl FlowController,
	crypto CryptoSession,
	conf *Config,
) *Conn {
	switch {
	case router == nil:
		panic("veloq: NewConn called without a Router")
	case streams == nil:
		panic("veloq: NewConn called without a StreamManager")
	case flowCtrl == nil:
		panic("veloq: NewConn called without a FlowController")
	case crypto == nil:
		panic("veloq: NewConn called without a CryptoSession")
	}
	conf = populateConfig(conf)
	logger := utils.DefaultLogger.WithPrefix("conn")

	active := &activeConn{
		streams:   streams,
		datagrams: NewDatagramFlow(conf.MaxDatagramReceiveSize, 0, logger),
		flowCtrl:  flowCtrl,
		crypto:    crypto,
		params:    NewParameters(),
		hsScope:   newCryptoScope(protocol.EncryptionHandshake),
		dataScope: newCryptoScope(protocol.Encryption1RTT),
		paths:     make(map[Pathway]*path),
		localCIDs: []ConnectionID{initialCID},
		sendClose: conf.SendConnectionClose,
	}
	c := &Conn{
		state:   newConnState(active, router, conf.Tracer, logger),
		connErr: newConnErrorSignal(),
		newCC:   conf.NewCongestionController,
		logger:  logger,
		tracer:  conf.Tracer,
	}
	router.Register(initialCID, c)
	if c.tracer != nil && c.tracer.StartedConnection != nil {
		c.tracer.StartedConnection(initialCID)
	}
	go c.run()
	return c
}

// run waits for the connection error signal and drives the matching
// transition. Application errors were already handled synchronously by
// CloseWithError, so they are not dispatched a second time.
func (c *Conn) run() {
	<-c.connErr.received()
	e := c.connErr.get()
	if e.Kind != qerr.KindApplication {
		c.logger.Errorf("Connection closed unexpectedly: %s", e)
	}
	switch e.Kind {
	case qerr.KindApplication:
	case qerr.KindTransport:
		c.enterClosing(e)
	case qerr.KindCcfReceived:
		c.enterDraining(e)
	case qerr.KindNoViablePath:
		c.state.noViablePath()
	}
}

// OnConnError reports a fatal connection error. The first error reported on a
// connection wins; later reports are dropped.
func (c *Conn) OnConnError(e *ConnError) {
	c.connErr.raise(e)
}

// Close gracefully closes the connection with application error code 0.
func (c *Conn) Close(reason string) {
	c.CloseWithError(0, reason)
}

// CloseWithError gracefully closes the connection. The error is recorded for
// diagnostics and the closing handshake is started. Calling it on a
// connection that already left the Active state is a no-op.
func (c *Conn) CloseWithError(code ApplicationErrorCode, reason string) {
	if !c.state.isActive() {
		return
	}
	e := qerr.NewApplicationError(code, reason)
	c.connErr.raise(e)
	c.logger.Infof("Closing connection: %s", e)
	c.enterClosing(e)
}

// enterClosing performs the closing transition and spawns the tasks driving
// the closing handshake: one forwarder per salvaged receiver, piping packets
// into the closing state, and one task racing the peer's close confirmation
// against 3x the probe timeout. On confirmation, draining continues with the
// remaining time budget; on expiry, the connection is torn down.
func (c *Conn) enterClosing(e *qerr.ConnError) {
	closing, receivers, pto, ok := c.state.beginClose(e)
	if !ok {
		return
	}
	if closing == nil {
		// no crypto scope survived, we went straight to draining;
		// dropping the receive handles stops their producers
		for _, r := range receivers {
			r.stop()
		}
		c.drain(ptoFactor * pto)
		return
	}
	for _, r := range receivers {
		go func(r *pathReceiver) {
			for p := range r.packets {
				closing.handlePacket(p)
			}
		}(r)
	}
	go func() {
		start := time.Now()
		timer := time.NewTimer(ptoFactor * pto)
		defer timer.Stop()
		select {
		case <-closing.closeConfirmed():
			if c.state.drainingFromClosing() {
				c.drain(ptoFactor*pto - time.Since(start))
			}
		case <-timer.C:
			c.Destroy()
		}
	}()
}

// enterDraining skips the closing handshake. It is used when the peer's close
// confirmation already arrived, so there is nothing left to retransmit.
func (c *Conn) enterDraining(e *qerr.ConnError) {
	pto, ok := c.state.beginDraining(e)
	if !ok {
		return
	}
	c.drain(ptoFactor * pto)
}

// drain starts the timer absorbing stray packets before the final teardown.
// A concurrent Destroy may already have torn the connection down between the
// draining transition and this call; the timer would only force a teardown
// that already happened, so there is nothing left to do.
func (c *Conn) drain(remaining time.Duration) {
	switch c.state.load().(type) {
	case *drainingConn:
	case nil:
		return
	default:
		panic("veloq BUG: draining timer started outside the Draining state")
	}
	go func() {
		timer := time.NewTimer(remaining)
		defer timer.Stop()
		<-timer.C
		c.Destroy()
	}()
}

// Destroy unconditionally tears the connection down, releasing its connection
// IDs from the router. It is called by the draining timer and by forceful
// application shutdown. Repeated calls are no-ops.
func (c *Conn) Destroy() {
	c.state.terminate()
}

// IsActive reports whether the connection still accepts new operations.
func (c *Conn) IsActive() bool {
	return c.state.isActive()
}

// HandlePacket feeds a received packet into the connection. While Active it is
// queued on the owning path's receiver; while Closing it may trigger a
// CONNECTION_CLOSE retransmission or confirm the close; while Draining it is
// discarded.
func (c *Conn) HandlePacket(p ReceivedPacket) {
	switch st := c.state.load().(type) {
	case *activeConn:
		c.state.deliverActive(p)
	case *closingConn:
		st.handlePacket(p)
	case *drainingConn:
		st.handlePacket(p)
	case nil:
	}
}

// AddInitialPath adds a network path with a fresh congestion controller.
// Adding an already known pathway is a no-op.
func (c *Conn) AddInitialPath(pathway Pathway, sc SendConn) {
	if c.newCC == nil {
		panic("veloq: AddInitialPath called without Config.NewCongestionController")
	}
	c.state.withActive(func(conn *activeConn) {
		if _, ok := conn.paths[pathway]; ok {
			return
		}
		p := &path{
			pathway:      pathway,
			conn:         sc,
			cc:           c.newCC(pathway),
			receiver:     newPathReceiver(pathway),
			lastRecvTime: time.Now(),
		}
		conn.paths[pathway] = p
		conn.receivers = append(conn.receivers, p.receiver)
	})
}

// UpdatePathRecvTime records packet receipt on a path.
func (c *Conn) UpdatePathRecvTime(pathway Pathway) {
	c.state.withActive(func(conn *activeConn) {
		if p, ok := conn.paths[pathway]; ok {
			p.lastRecvTime = time.Now()
		}
	})
}

// RecvRetryPacket applies a Retry packet: the token is stored for the next
// Initial, and the peer's new source connection ID becomes our destination.
func (c *Conn) RecvRetryPacket(retry *RetryPacket) {
	c.state.withActive(func(conn *activeConn) {
		conn.token = append([]byte{}, retry.Token...)
		conn.destCID = retry.SrcConnectionID
	})
}

// AddConnectionID registers an additional locally issued connection ID. It is
// released from the router, along with all others, exactly once at teardown.
func (c *Conn) AddConnectionID(cid ConnectionID) {
	c.state.withActive(func(conn *activeConn) {
		conn.localCIDs = append(conn.localCIDs, cid)
		c.state.router.Register(cid, c)
	})
}

// DiscardKeys marks an encryption level's key context as unusable. A
// connection whose handshake and 1-RTT contexts are both discarded skips the
// Closing state on teardown, since it could not answer retransmissions anyway.
func (c *Conn) DiscardKeys(level EncryptionLevel) {
	c.state.withActive(func(conn *activeConn) {
		switch level {
		case protocol.EncryptionHandshake:
			conn.hsScope.discard()
		case protocol.Encryption1RTT:
			conn.dataScope.discard()
		}
	})
}

// SetRemoteParameters resolves the remote transport parameters, unblocking
// pending accessors and raising the peer's datagram frame size limit. A
// shrinking limit is a protocol violation and kills the connection.
func (c *Conn) SetRemoteParameters(tp *TransportParameters) {
	var params *Parameters
	var flow *DatagramFlow
	c.state.withActive(func(conn *activeConn) {
		params = conn.params
		flow = conn.datagrams
	})
	if params == nil {
		return
	}
	params.SetRemote(tp)
	if err := flow.UpdateRemoteMaxSize(tp.MaxDatagramFrameSize); err != nil {
		c.maybeRaise(err)
	}
}

// OpenStream opens a new bidirectional stream. It blocks until flow control
// credit is available, the context is cancelled, or the connection dies.
func (c *Conn) OpenStream(ctx context.Context) (Stream, error) {
	conn, cerr := c.state.snapshotActive()
	if cerr != nil {
		return nil, cerr
	}
	remote, err := conn.params.Remote(ctx)
	if err != nil {
		return nil, err
	}
	str, err := conn.streams.OpenBi(ctx, remote.InitialMaxStreamDataBidiRemote)
	if err != nil {
		c.maybeRaise(err)
		return nil, err
	}
	return str, nil
}

// OpenUniStream opens a new unidirectional stream.
func (c *Conn) OpenUniStream(ctx context.Context) (SendStream, error) {
	conn, cerr := c.state.snapshotActive()
	if cerr != nil {
		return nil, cerr
	}
	remote, err := conn.params.Remote(ctx)
	if err != nil {
		return nil, err
	}
	str, err := conn.streams.OpenUni(ctx, remote.InitialMaxStreamDataUni)
	if err != nil {
		c.maybeRaise(err)
		return nil, err
	}
	return str, nil
}

// AcceptStream returns the next bidirectional stream opened by the peer.
func (c *Conn) AcceptStream(ctx context.Context) (Stream, error) {
	conn, cerr := c.state.snapshotActive()
	if cerr != nil {
		return nil, cerr
	}
	remote, err := conn.params.Remote(ctx)
	if err != nil {
		return nil, err
	}
	str, err := conn.streams.AcceptBi(ctx, remote.InitialMaxStreamDataBidiLocal)
	if err != nil {
		c.maybeRaise(err)
		return nil, err
	}
	return str, nil
}

// AcceptUniStream returns the next unidirectional stream opened by the peer.
func (c *Conn) AcceptUniStream(ctx context.Context) (ReceiveStream, error) {
	conn, cerr := c.state.snapshotActive()
	if cerr != nil {
		return nil, cerr
	}
	str, err := conn.streams.AcceptUni(ctx)
	if err != nil {
		c.maybeRaise(err)
		return nil, err
	}
	return str, nil
}

// DatagramReader returns a handle for reading datagrams received from the peer.
func (c *Conn) DatagramReader() (*DatagramReader, error) {
	conn, cerr := c.state.snapshotActive()
	if cerr != nil {
		return nil, cerr
	}
	r, _ := conn.datagrams.RW()
	return r, nil
}

// DatagramWriter returns a handle for sending datagrams. It blocks until the
// peer's datagram support was negotiated.
func (c *Conn) DatagramWriter(ctx context.Context) (*DatagramWriter, error) {
	conn, cerr := c.state.snapshotActive()
	if cerr != nil {
		return nil, cerr
	}
	remote, err := conn.params.Remote(ctx)
	if err != nil {
		return nil, err
	}
	if err := conn.datagrams.UpdateRemoteMaxSize(remote.MaxDatagramFrameSize); err != nil {
		c.maybeRaise(err)
		return nil, err
	}
	_, w := conn.datagrams.RW()
	return w, nil
}

// maybeRaise funnels connection-fatal subsystem errors into the error signal.
func (c *Conn) maybeRaise(err error) {
	var cerr *qerr.ConnError
	if errors.As(err, &cerr) {
		c.connErr.raise(cerr)
	}
}
