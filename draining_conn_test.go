package veloq

import (
	"testing"

	"github.com/veloq/veloq/internal/protocol"
	"github.com/veloq/veloq/internal/qerr"
	"github.com/veloq/veloq/logging"

	"github.com/stretchr/testify/require"
)

func TestDrainingConnDropsPackets(t *testing.T) {
	var drops []logging.ByteCount
	tracer := &logging.ConnectionTracer{
		DroppedPacket: func(reason logging.PacketDropReason, size logging.ByteCount) {
			require.Equal(t, logging.PacketDropDraining, reason)
			drops = append(drops, size)
		},
	}
	e := qerr.NewCcfReceivedError(0x17, "peer closed")
	c := newDrainingConn(e, []ConnectionID{protocol.ParseConnectionID([]byte{1, 2, 3, 4})}, tracer)

	pw := newTestPathway()
	c.handlePacket(newTestPacket(pw, 100, false))
	c.handlePacket(newTestPacket(pw, 200, true))
	require.Equal(t, []logging.ByteCount{100, 200}, drops)
	require.EqualValues(t, 2, c.dropped.Load())
}

func TestDrainingConnWithoutTracer(t *testing.T) {
	c := newDrainingConn(qerr.NewApplicationError(0, "bye"), nil, nil)
	require.NotPanics(t, func() { c.handlePacket(newTestPacket(newTestPathway(), 100, false)) })
}
