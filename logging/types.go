// Package logging defines a logging interface for veloq.
// This package should not be considered stable.
package logging

import (
	"github.com/veloq/veloq/internal/protocol"
)

type (
	// A ByteCount is used to count bytes.
	ByteCount = protocol.ByteCount
	// A ConnectionID is a QUIC Connection ID.
	ConnectionID = protocol.ConnectionID
)

// ConnectionState is the lifecycle state of a connection.
type ConnectionState uint8

const (
	// ConnectionStateActive is the state of a connection transferring data.
	ConnectionStateActive ConnectionState = iota
	// ConnectionStateClosing is entered after a local close, while waiting for
	// the peer's close confirmation.
	ConnectionStateClosing
	// ConnectionStateDraining absorbs late packets before teardown.
	ConnectionStateDraining
	// ConnectionStateTerminated is the final state.
	ConnectionStateTerminated
)

func (s ConnectionState) String() string {
	switch s {
	case ConnectionStateActive:
		return "active"
	case ConnectionStateClosing:
		return "closing"
	case ConnectionStateDraining:
		return "draining"
	case ConnectionStateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// PacketDropReason is the reason why a packet was dropped.
type PacketDropReason uint8

const (
	// PacketDropDraining is used when a packet is dropped because the connection is draining
	PacketDropDraining PacketDropReason = iota
	// PacketDropQueueFull is used when the per-path receive queue overflowed
	PacketDropQueueFull
	// PacketDropUnknownPath is used when a packet arrives on an unknown path
	PacketDropUnknownPath
)

func (r PacketDropReason) String() string {
	switch r {
	case PacketDropDraining:
		return "draining"
	case PacketDropQueueFull:
		return "queue_full"
	case PacketDropUnknownPath:
		return "unknown_path"
	default:
		return "unknown"
	}
}
