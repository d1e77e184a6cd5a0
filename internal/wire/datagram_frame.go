// Package wire carries the DATAGRAM frame envelope.
// Parsing and the remaining frame types live in the wire layer proper.
package wire

import (
	"github.com/veloq/veloq/internal/protocol"
	"github.com/veloq/veloq/quicvarint"
)

// A DatagramFrame is a DATAGRAM frame
type DatagramFrame struct {
	DataLenPresent bool
	Data           []byte
}

// Append serializes the frame, appending it to b.
func (f *DatagramFrame) Append(b []byte) ([]byte, error) {
	typeByte := uint8(0x30)
	if f.DataLenPresent {
		typeByte ^= 0b1
	}
	b = append(b, typeByte)
	if f.DataLenPresent {
		b = quicvarint.Append(b, uint64(len(f.Data)))
	}
	b = append(b, f.Data...)
	return b, nil
}

// MaxDataLen returns the maximum data length
// If 0 is returned, writing a frame is not possible.
func (f *DatagramFrame) MaxDataLen(maxSize protocol.ByteCount) protocol.ByteCount {
	headerLen := protocol.ByteCount(1)
	if f.DataLenPresent {
		// pretend that the data size will be 1 byte less than the maximum possible size
		headerLen += protocol.ByteCount(quicvarint.Len(uint64(maxSize))) - 1
	}
	return maxSize - headerLen
}

// Length of a written frame
func (f *DatagramFrame) Length() protocol.ByteCount {
	length := 1 + protocol.ByteCount(len(f.Data))
	if f.DataLenPresent {
		length += protocol.ByteCount(quicvarint.Len(uint64(len(f.Data))))
	}
	return length
}
