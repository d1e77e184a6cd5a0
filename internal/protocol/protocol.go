// Package protocol holds the basic types and constants of the transport.
package protocol

// A ByteCount in QUIC
type ByteCount int64

// MaxByteCount is the maximum value of a ByteCount
const MaxByteCount = ByteCount(1<<62 - 1)

// DefaultMaxDatagramFrameSize is the default maximum size of a DATAGRAM frame
// accepted from the peer.
const DefaultMaxDatagramFrameSize ByteCount = 1200

// DatagramRcvQueueLen is the length of the receive queue for DATAGRAM frames
const DatagramRcvQueueLen = 128

// DatagramSendQueueLen is the length of the send queue for DATAGRAM frames
const DatagramSendQueueLen = 32

// PathReceiveQueueLen is the length of a path's receive queue. Packets
// arriving faster than they are drained are dropped.
const PathReceiveQueueLen = 256
