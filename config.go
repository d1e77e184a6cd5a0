package veloq

import (
	"github.com/veloq/veloq/internal/protocol"
	"github.com/veloq/veloq/logging"
)

// Config contains the optional knobs of a connection.
type Config struct {
	// Tracer receives connection events. Combine multiple tracers with
	// logging.NewMultiplexedConnectionTracer.
	Tracer *logging.ConnectionTracer
	// MaxDatagramReceiveSize is the largest DATAGRAM frame accepted from the
	// peer. If unset, protocol.DefaultMaxDatagramFrameSize is used.
	MaxDatagramReceiveSize ByteCount
	// SendConnectionClose (re)sends the sealed CONNECTION_CLOSE packet for
	// this connection. It is called, with backoff, for packets received while
	// closing. Packet sealing is the wire layer's job. May be nil.
	SendConnectionClose func(ReceivedPacket)
	// NewCongestionController creates the congestion controller for a new
	// path. Required before paths can be added.
	NewCongestionController func(Pathway) CongestionController
}

// Clone clones the config.
func (c *Config) Clone() *Config {
	copied := *c
	return &copied
}

func populateConfig(conf *Config) *Config {
	if conf == nil {
		conf = &Config{}
	} else {
		conf = conf.Clone()
	}
	if conf.MaxDatagramReceiveSize == 0 {
		conf.MaxDatagramReceiveSize = protocol.DefaultMaxDatagramFrameSize
	}
	return conf
}
