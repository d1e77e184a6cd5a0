// Package metrics provides a Prometheus connection tracer.
package metrics

import (
	"errors"
	"time"

	"github.com/veloq/veloq/internal/qerr"
	"github.com/veloq/veloq/logging"

	"github.com/prometheus/client_golang/prometheus"
)

const metricNamespace = "veloq"

var (
	connStarted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "connections_started_total",
			Help:      "Connections Started",
		},
	)
	connClosed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "connections_closed_total",
			Help:      "Connections Closed",
		},
		[]string{"reason"},
	)
	connDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: metricNamespace,
			Name:      "connection_duration_seconds",
			Help:      "Duration of a Connection",
			Buckets:   prometheus.ExponentialBuckets(1.0/16, 2, 25), // up to 24 days
		},
	)
	closeResent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "connection_close_resent_total",
			Help:      "Close packets resent while waiting for the peer's confirmation",
		},
	)
	packetDropped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "received_packets_dropped_total",
			Help:      "packets dropped",
		},
		[]string{"reason"},
	)
)

func closeReason(err error) string {
	var connErr *qerr.ConnError
	if !errors.As(err, &connErr) {
		return "unknown"
	}
	return connErr.Kind.String()
}

// NewConnectionTracer creates a new connection tracer using the default
// Prometheus registerer. The tracer returned can be set on the Config for a
// new connection.
func NewConnectionTracer() *logging.ConnectionTracer {
	return NewConnectionTracerWithRegisterer(prometheus.DefaultRegisterer)
}

// NewConnectionTracerWithRegisterer creates a new connection tracer using a
// given Prometheus registerer.
func NewConnectionTracerWithRegisterer(registerer prometheus.Registerer) *logging.ConnectionTracer {
	for _, c := range [...]prometheus.Collector{
		connStarted,
		connClosed,
		connDuration,
		closeResent,
		packetDropped,
	} {
		if err := registerer.Register(c); err != nil {
			if ok := errors.As(err, &prometheus.AlreadyRegisteredError{}); !ok {
				panic(err)
			}
		}
	}

	var startTime time.Time
	return &logging.ConnectionTracer{
		StartedConnection: func(_ logging.ConnectionID) {
			startTime = time.Now()
			connStarted.Inc()
		},
		ClosedConnection: func(err error) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, closeReason(err))
			connClosed.WithLabelValues(*tags...).Inc()
			connDuration.Observe(time.Since(startTime).Seconds())
		},
		ResentConnectionClose: func(_ uint32) {
			closeResent.Inc()
		},
		DroppedPacket: func(reason logging.PacketDropReason, _ logging.ByteCount) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, reason.String())
			packetDropped.WithLabelValues(*tags...).Inc()
		},
	}
}
