package veloq

import (
	"fmt"

	"github.com/veloq/veloq/internal/qerr"
)

// Constructors for the four kinds of connection errors.
var (
	NewApplicationError  = qerr.NewApplicationError
	NewTransportError    = qerr.NewTransportError
	NewCcfReceivedError  = qerr.NewCcfReceivedError
	NewNoViablePathError = qerr.NewNoViablePathError
)

// Transport error codes re-exported for callers constructing errors.
const (
	NoError                 = qerr.NoError
	InternalError           = qerr.InternalError
	FlowControlError        = qerr.FlowControlError
	FrameEncodingError      = qerr.FrameEncodingError
	TransportParameterError = qerr.TransportParameterError
	ProtocolViolation       = qerr.ProtocolViolation
	NoViablePathError       = qerr.NoViablePathError
)

// A DatagramTooLargeError is returned from DatagramWriter.Send when the
// payload doesn't fit into the peer's maximum datagram frame size.
type DatagramTooLargeError struct {
	MaxDatagramPayloadSize int64
}

func (e *DatagramTooLargeError) Is(target error) bool {
	_, ok := target.(*DatagramTooLargeError)
	return ok
}

func (e *DatagramTooLargeError) Error() string {
	return fmt.Sprintf("DATAGRAM frame too large (maximum payload size: %d bytes)", e.MaxDatagramPayloadSize)
}
