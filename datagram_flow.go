package veloq

import (
	"context"
	"sync"

	"github.com/veloq/veloq/internal/protocol"
	"github.com/veloq/veloq/internal/qerr"
	"github.com/veloq/veloq/internal/utils"
	"github.com/veloq/veloq/internal/wire"
)

// A DatagramFlow is the shared reader/writer pair for unreliable datagrams.
// Reader and writer handles created with RW all observe the same queues and
// the same terminal error.
type DatagramFlow struct {
	mu sync.Mutex

	// localMaxSize is the largest DATAGRAM frame we accept.
	// remoteMaxSize is the largest frame the peer accepts; it may only grow.
	localMaxSize  protocol.ByteCount
	remoteMaxSize protocol.ByteCount

	sendQueue [][]byte
	rcvQueue  [][]byte
	rcvd      chan struct{} // used to notify Receive that a new datagram was received
	dequeued  chan struct{} // used to notify blocked Send calls that queue space freed up

	closeErr *qerr.ConnError
	closed   chan struct{}

	logger utils.Logger
}

// NewDatagramFlow creates a datagram flow. The sizes can be the protocol
// defaults or the values negotiated by a previous connection.
func NewDatagramFlow(localMaxSize, remoteMaxSize ByteCount, logger utils.Logger) *DatagramFlow {
	return &DatagramFlow{
		localMaxSize:  localMaxSize,
		remoteMaxSize: remoteMaxSize,
		rcvd:          make(chan struct{}, 1),
		dequeued:      make(chan struct{}, 1),
		closed:        make(chan struct{}),
		logger:        logger,
	}
}

// UpdateRemoteMaxSize raises the maximum DATAGRAM frame size the peer accepts.
// Sizes may only grow; shrinking is a protocol violation.
func (f *DatagramFlow) UpdateRemoteMaxSize(size ByteCount) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closeErr != nil {
		return f.closeErr
	}
	if size < f.remoteMaxSize {
		return qerr.NewTransportError(
			qerr.ProtocolViolation,
			"max_datagram_frame_size must not shrink",
		)
	}
	f.remoteMaxSize = size
	return nil
}

// TryReadDatagram dequeues the next outbound datagram if its frame fits into
// both the caller's limit and the peer's maximum frame size, and serializes it
// into b. It never blocks; it returns nil if nothing fits or nothing is queued.
func (f *DatagramFlow) TryReadDatagram(limit ByteCount, b []byte) (*wire.DatagramFrame, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closeErr != nil || len(f.sendQueue) == 0 {
		return nil, 0
	}
	maxSize := f.remoteMaxSize
	if limit < maxSize {
		maxSize = limit
	}
	frame := &wire.DatagramFrame{DataLenPresent: true, Data: f.sendQueue[0]}
	if frame.Length() > maxSize || frame.Length() > protocol.ByteCount(len(b)) {
		return nil, 0
	}
	f.sendQueue = f.sendQueue[1:]
	buf, _ := frame.Append(b[:0])
	select {
	case f.dequeued <- struct{}{}:
	default:
	}
	return frame, len(buf)
}

// RecvDatagram accepts one inbound DATAGRAM frame and queues its payload for
// the reader. Frames larger than the locally advertised limit are a protocol
// violation. If the receive queue is full, the payload is dropped.
func (f *DatagramFlow) RecvDatagram(frame *wire.DatagramFrame) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closeErr != nil {
		return f.closeErr
	}
	if frame.Length() > f.localMaxSize {
		return qerr.NewTransportError(
			qerr.ProtocolViolation,
			"DATAGRAM frame larger than advertised max_datagram_frame_size",
		)
	}
	if len(f.rcvQueue) >= protocol.DatagramRcvQueueLen {
		if f.logger.Debug() {
			f.logger.Debugf("Discarding DATAGRAM frame (%d bytes payload)", len(frame.Data))
		}
		return nil
	}
	data := make([]byte, len(frame.Data))
	copy(data, frame.Data)
	f.rcvQueue = append(f.rcvQueue, data)
	select {
	case f.rcvd <- struct{}{}:
	default:
	}
	return nil
}

// RW returns a reader/writer handle pair. Multiple pairs may exist
// concurrently; they all share the same queues and error state.
func (f *DatagramFlow) RW() (*DatagramReader, *DatagramWriter) {
	return &DatagramReader{flow: f}, &DatagramWriter{flow: f}
}

// OnConnError wakes every blocked reader and writer and makes all subsequent
// calls fail with e. The first error wins; later calls are no-ops.
func (f *DatagramFlow) OnConnError(e *qerr.ConnError) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closeErr != nil {
		return
	}
	f.closeErr = e
	close(f.closed)
}

func (f *DatagramFlow) send(p []byte) error {
	for {
		f.mu.Lock()
		if f.closeErr != nil {
			err := f.closeErr
			f.mu.Unlock()
			return err
		}
		frame := wire.DatagramFrame{DataLenPresent: true, Data: p}
		if frame.Length() > f.remoteMaxSize {
			maxLen := frame.MaxDataLen(f.remoteMaxSize)
			f.mu.Unlock()
			return &DatagramTooLargeError{MaxDatagramPayloadSize: int64(maxLen)}
		}
		if len(f.sendQueue) < protocol.DatagramSendQueueLen {
			f.sendQueue = append(f.sendQueue, p)
			f.mu.Unlock()
			return nil
		}
		f.mu.Unlock()
		select {
		case <-f.dequeued:
		case <-f.closed:
			return f.closeErr
		}
	}
}

func (f *DatagramFlow) receive(ctx context.Context) ([]byte, error) {
	for {
		f.mu.Lock()
		if f.closeErr != nil {
			err := f.closeErr
			f.mu.Unlock()
			return nil, err
		}
		if len(f.rcvQueue) > 0 {
			data := f.rcvQueue[0]
			f.rcvQueue = f.rcvQueue[1:]
			f.mu.Unlock()
			return data, nil
		}
		f.mu.Unlock()
		select {
		case <-f.rcvd:
			continue
		case <-f.closed:
			return nil, f.closeErr
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// A DatagramReader reads datagrams received from the peer.
type DatagramReader struct {
	flow *DatagramFlow
}

// Receive returns the payload of the next received datagram. It blocks until a
// datagram is available, the context is cancelled, or the connection dies.
func (r *DatagramReader) Receive(ctx context.Context) ([]byte, error) {
	return r.flow.receive(ctx)
}

// A DatagramWriter queues datagrams for sending to the peer.
type DatagramWriter struct {
	flow *DatagramFlow
}

// Send queues a datagram. It blocks while the send queue is full and fails
// once the connection dies, or immediately if the payload doesn't fit the
// peer's maximum frame size.
func (w *DatagramWriter) Send(p []byte) error {
	return w.flow.send(p)
}
