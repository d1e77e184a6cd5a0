package qerr

import (
	"fmt"
	"net"
)

// An ErrorKind says which terminal cause produced a connection error.
// It determines which lifecycle transition the error triggers.
type ErrorKind uint8

const (
	// KindApplication is a local, intentional shutdown.
	KindApplication ErrorKind = iota
	// KindTransport is a protocol violation or a fatal subsystem error.
	KindTransport
	// KindCcfReceived means the peer's close confirmation was observed.
	KindCcfReceived
	// KindNoViablePath means all network paths have failed.
	KindNoViablePath
)

func (k ErrorKind) String() string {
	switch k {
	case KindApplication:
		return "application"
	case KindTransport:
		return "transport"
	case KindCcfReceived:
		return "ccf_received"
	case KindNoViablePath:
		return "no_viable_path"
	default:
		return fmt.Sprintf("unknown kind: %d", uint8(k))
	}
}

// ApplicationErrorCode is an application-defined error code.
type ApplicationErrorCode uint64

// A ConnError is the terminal cause of a connection.
// It is immutable once constructed.
type ConnError struct {
	Kind         ErrorKind
	ErrorCode    uint64
	ErrorMessage string
}

var _ error = &ConnError{}

// NewApplicationError constructs an error for an application-initiated close.
func NewApplicationError(code ApplicationErrorCode, msg string) *ConnError {
	return &ConnError{Kind: KindApplication, ErrorCode: uint64(code), ErrorMessage: msg}
}

// NewTransportError constructs an error for a fatal transport condition.
func NewTransportError(code TransportErrorCode, msg string) *ConnError {
	return &ConnError{Kind: KindTransport, ErrorCode: uint64(code), ErrorMessage: msg}
}

// NewCcfReceivedError constructs the error stored when the peer's close
// confirmation arrives, carrying the code and reason the peer sent.
func NewCcfReceivedError(code uint64, msg string) *ConnError {
	return &ConnError{Kind: KindCcfReceived, ErrorCode: code, ErrorMessage: msg}
}

// NewNoViablePathError constructs the error raised when every network path failed.
func NewNoViablePathError() *ConnError {
	return &ConnError{
		Kind:         KindNoViablePath,
		ErrorCode:    uint64(NoViablePathError),
		ErrorMessage: "no viable path",
	}
}

func (e *ConnError) Error() string {
	s := fmt.Sprintf("%s (%#x)", e.Kind, e.ErrorCode)
	if e.ErrorMessage == "" {
		return s
	}
	return s + ": " + e.ErrorMessage
}

func (e *ConnError) Is(target error) bool {
	_, ok := target.(*ConnError)
	return ok || target == net.ErrClosed
}
