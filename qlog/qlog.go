// Package qlog records connection events in the qlog format (JSON-SEQ).
package qlog

import (
	"io"
	"sync"
	"time"

	"github.com/veloq/veloq/internal/protocol"
	"github.com/veloq/veloq/logging"
)

// NewConnectionTracer creates a new tracer to record a qlog for a connection.
// The qlog is exported to w when the connection reaches the terminated state.
func NewConnectionTracer(w io.WriteCloser, odcid protocol.ConnectionID) *logging.ConnectionTracer {
	tr := trace{
		VantagePoint: vantagePoint{Type: "local"},
		CommonFields: commonFields{
			ODCID:         odcid,
			ReferenceTime: time.Now(),
		},
	}
	wr := newWriter(w, tr)
	go wr.Run()

	var mx sync.Mutex
	var exported bool
	record := func(details eventDetails) {
		mx.Lock()
		defer mx.Unlock()
		if exported {
			return
		}
		wr.RecordEvent(time.Now(), details)
	}
	return &logging.ConnectionTracer{
		StartedConnection: func(odcid logging.ConnectionID) {
			record(eventConnectionStarted{ODCID: odcid})
		},
		UpdatedState: func(state logging.ConnectionState) {
			record(eventConnectionStateUpdated{state: state})
			if state != logging.ConnectionStateTerminated {
				return
			}
			mx.Lock()
			defer mx.Unlock()
			if exported {
				return
			}
			exported = true
			wr.Close()
		},
		ClosedConnection: func(err error) {
			record(eventConnectionClosed{e: err})
		},
		ResentConnectionClose: func(n uint32) {
			record(eventConnectionCloseResent{PacketsReceived: n})
		},
		DroppedPacket: func(reason logging.PacketDropReason, size logging.ByteCount) {
			record(eventPacketDropped{PacketSize: size, Trigger: reason})
		},
	}
}
