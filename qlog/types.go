package qlog

import (
	"fmt"

	"github.com/veloq/veloq/internal/protocol"
)

type category uint8

const (
	categoryConnectivity category = iota
	categoryTransport
	categoryRecovery
)

func (c category) String() string {
	switch c {
	case categoryConnectivity:
		return "connectivity"
	case categoryTransport:
		return "transport"
	case categoryRecovery:
		return "recovery"
	default:
		panic("unknown category")
	}
}

type connectionID protocol.ConnectionID

func (c connectionID) String() string {
	return fmt.Sprintf("%x", protocol.ConnectionID(c).Bytes())
}
