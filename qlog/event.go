package qlog

import (
	"errors"
	"time"

	"github.com/veloq/veloq/internal/protocol"
	"github.com/veloq/veloq/internal/qerr"
	"github.com/veloq/veloq/logging"

	"github.com/francoispqt/gojay"
)

type eventDetails interface {
	Category() category
	Name() string
	gojay.MarshalerJSONObject
}

type event struct {
	RelativeTime time.Duration
	eventDetails
}

var _ gojay.MarshalerJSONObject = event{}

func (e event) IsNil() bool { return false }
func (e event) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Float64Key("time", float64(e.RelativeTime.Nanoseconds())/1e6)
	enc.StringKey("name", e.Category().String()+":"+e.Name())
	enc.ObjectKey("data", e.eventDetails)
}

type eventConnectionStarted struct {
	ODCID protocol.ConnectionID
}

var _ eventDetails = &eventConnectionStarted{}

func (e eventConnectionStarted) Category() category { return categoryConnectivity }
func (e eventConnectionStarted) Name() string       { return "connection_started" }
func (e eventConnectionStarted) IsNil() bool        { return false }

func (e eventConnectionStarted) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("odcid", connectionID(e.ODCID).String())
}

type eventConnectionStateUpdated struct {
	state logging.ConnectionState
}

func (e eventConnectionStateUpdated) Category() category { return categoryConnectivity }
func (e eventConnectionStateUpdated) Name() string       { return "connection_state_updated" }
func (e eventConnectionStateUpdated) IsNil() bool        { return false }

func (e eventConnectionStateUpdated) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("new", e.state.String())
}

type eventConnectionClosed struct {
	e error
}

func (e eventConnectionClosed) Category() category { return categoryConnectivity }
func (e eventConnectionClosed) Name() string       { return "connection_closed" }
func (e eventConnectionClosed) IsNil() bool        { return false }

func (e eventConnectionClosed) MarshalJSONObject(enc *gojay.Encoder) {
	var connErr *qerr.ConnError
	if !errors.As(e.e, &connErr) {
		enc.StringKey("trigger", "error")
		enc.StringKey("reason", e.e.Error())
		return
	}
	switch connErr.Kind {
	case qerr.KindApplication:
		enc.Uint64Key("application_code", connErr.ErrorCode)
	default:
		enc.StringKey("connection_code", qerr.TransportErrorCode(connErr.ErrorCode).String())
	}
	enc.StringKey("trigger", connErr.Kind.String())
	enc.StringKey("reason", connErr.ErrorMessage)
}

type eventConnectionCloseResent struct {
	PacketsReceived uint32
}

func (e eventConnectionCloseResent) Category() category { return categoryRecovery }
func (e eventConnectionCloseResent) Name() string       { return "connection_close_resent" }
func (e eventConnectionCloseResent) IsNil() bool        { return false }

func (e eventConnectionCloseResent) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Uint32Key("packets_received", e.PacketsReceived)
}

type eventPacketDropped struct {
	PacketSize protocol.ByteCount
	Trigger    logging.PacketDropReason
}

func (e eventPacketDropped) Category() category { return categoryTransport }
func (e eventPacketDropped) Name() string       { return "packet_dropped" }
func (e eventPacketDropped) IsNil() bool        { return false }

func (e eventPacketDropped) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Uint64Key("packet_size", uint64(e.PacketSize))
	enc.StringKey("trigger", e.Trigger.String())
}
