package logging

// A ConnectionTracer records events happening on a connection. Any of the
// callbacks may be nil. Callbacks must be thread-safe, they are called from
// multiple goroutines.
type ConnectionTracer struct {
	StartedConnection     func(odcid ConnectionID)
	UpdatedState          func(state ConnectionState)
	ClosedConnection      func(err error)
	ResentConnectionClose func(packetsReceived uint32)
	DroppedPacket         func(reason PacketDropReason, size ByteCount)
}

// NewMultiplexedConnectionTracer creates a new connection tracer that
// multiplexes events to multiple tracers.
func NewMultiplexedConnectionTracer(tracers ...*ConnectionTracer) *ConnectionTracer {
	if len(tracers) == 0 {
		return nil
	}
	if len(tracers) == 1 {
		return tracers[0]
	}
	return &ConnectionTracer{
		StartedConnection: func(odcid ConnectionID) {
			for _, t := range tracers {
				if t.StartedConnection != nil {
					t.StartedConnection(odcid)
				}
			}
		},
		UpdatedState: func(state ConnectionState) {
			for _, t := range tracers {
				if t.UpdatedState != nil {
					t.UpdatedState(state)
				}
			}
		},
		ClosedConnection: func(err error) {
			for _, t := range tracers {
				if t.ClosedConnection != nil {
					t.ClosedConnection(err)
				}
			}
		},
		ResentConnectionClose: func(n uint32) {
			for _, t := range tracers {
				if t.ResentConnectionClose != nil {
					t.ResentConnectionClose(n)
				}
			}
		},
		DroppedPacket: func(reason PacketDropReason, size ByteCount) {
			for _, t := range tracers {
				if t.DroppedPacket != nil {
					t.DroppedPacket(reason, size)
				}
			}
		},
	}
}
