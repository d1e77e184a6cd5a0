// Package veloq implements the connection lifecycle core of a QUIC-like transport.
//
// A connection is Active until a terminal cause occurs, then moves through
// Closing and/or Draining to Terminated. Wire parsing, the TLS handshake,
// congestion control internals, stream multiplexing internals and socket I/O
// are collaborators behind the interfaces defined here.
package veloq

import (
	"context"
	"io"
	"net/netip"
	"time"

	"github.com/veloq/veloq/internal/protocol"
	"github.com/veloq/veloq/internal/qerr"
)

type (
	// A ByteCount is used to count bytes.
	ByteCount = protocol.ByteCount
	// A ConnectionID is a QUIC Connection ID.
	ConnectionID = protocol.ConnectionID
	// An EncryptionLevel identifies an encryption epoch of the handshake.
	EncryptionLevel = protocol.EncryptionLevel
)

// A StreamID is the ID of a QUIC stream.
type StreamID int64

// A ReceiveStream is a unidirectional Receive Stream.
type ReceiveStream interface {
	io.Reader
	StreamID() StreamID
}

// A SendStream is a unidirectional Send Stream.
type SendStream interface {
	io.Writer
	io.Closer
	StreamID() StreamID
}

// A Stream is a bidirectional QUIC stream.
type Stream interface {
	ReceiveStream
	SendStream
}

// A StreamManager multiplexes the connection's streams. Open and accept calls
// may block for flow control credit or for a peer-initiated stream. After
// OnConnError, all calls fail with that error.
type StreamManager interface {
	OpenBi(ctx context.Context, initialMaxStreamData ByteCount) (Stream, error)
	OpenUni(ctx context.Context, initialMaxStreamData ByteCount) (SendStream, error)
	AcceptBi(ctx context.Context, initialMaxStreamData ByteCount) (Stream, error)
	AcceptUni(ctx context.Context) (ReceiveStream, error)
	OnConnError(*ConnError)
}

// A FlowController is the connection-level flow controller.
type FlowController interface {
	OnConnError(*ConnError)
}

// A CryptoSession is the handle to the TLS session of a connection.
type CryptoSession interface {
	// Abort stops an in-progress handshake or key update.
	Abort()
}

// A CongestionController is the per-path congestion controller.
// Only its probe timeout estimate is consumed by this package.
type CongestionController interface {
	// PTO returns the current probe timeout estimate for the given encryption level.
	PTO(EncryptionLevel) time.Duration
}

// A Router is the global mapping from connection IDs to connections.
// Remove must be idempotent.
type Router interface {
	Register(ConnectionID, *Conn)
	Lookup(ConnectionID) (*Conn, bool)
	Remove(ConnectionID)
}

// A SendConn writes raw packets to the network.
type SendConn interface {
	WriteTo(b []byte, addr netip.AddrPort) (int, error)
}

// A Pathway identifies a network path by its local and remote address.
type Pathway struct {
	Local  netip.AddrPort
	Remote netip.AddrPort
}

// A ReceivedPacket is a packet received on a path. The wire layer decrypts and
// decodes packets; ContainsClose is set when a CONNECTION_CLOSE frame was found.
type ReceivedPacket struct {
	Data          []byte
	Pathway       Pathway
	Conn          SendConn
	RcvTime       time.Time
	ContainsClose bool
}

// Size returns the size of the packet in bytes.
func (p ReceivedPacket) Size() ByteCount { return ByteCount(len(p.Data)) }

// A RetryPacket carries the fields of a decoded Retry packet consumed here:
// the peer's new source connection ID and the retry token.
type RetryPacket struct {
	SrcConnectionID ConnectionID
	Token           []byte
}

// TransportParameters are the remotely negotiated limits consumed by this package.
type TransportParameters struct {
	InitialMaxStreamDataBidiLocal  ByteCount
	InitialMaxStreamDataBidiRemote ByteCount
	InitialMaxStreamDataUni        ByteCount
	MaxDatagramFrameSize           ByteCount
}

type (
	// ConnError is the terminal cause of a connection.
	ConnError = qerr.ConnError
	// ErrorKind says which terminal cause produced a ConnError.
	ErrorKind = qerr.ErrorKind
	// TransportErrorCode is a QUIC transport error code.
	TransportErrorCode = qerr.TransportErrorCode
	// ApplicationErrorCode is an application-defined error code.
	ApplicationErrorCode = qerr.ApplicationErrorCode
)

// The four kinds of terminal causes.
const (
	KindApplication  = qerr.KindApplication
	KindTransport    = qerr.KindTransport
	KindCcfReceived  = qerr.KindCcfReceived
	KindNoViablePath = qerr.KindNoViablePath
)
