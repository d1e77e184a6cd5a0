package veloq

import (
	"bytes"
	"fmt"
	"net/netip"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"
	"testing"
	"time"
)

// on the CIs, the timing is a lot less precise, so scale every duration by this factor
func scaleDuration(t time.Duration) time.Duration {
	scaleFactor := 1
	if f, err := strconv.Atoi(os.Getenv("TIMESCALE_FACTOR")); err == nil { // parsing "" errors, so this works fine if the env is not set
		scaleFactor = f
	}
	if scaleFactor == 0 {
		panic("TIMESCALE_FACTOR is 0")
	}
	return time.Duration(scaleFactor) * t
}

func newTestPathway() Pathway {
	return Pathway{
		Local:  netip.MustParseAddrPort("127.0.0.1:1234"),
		Remote: netip.MustParseAddrPort("127.0.0.1:4321"),
	}
}

func netipAddrPortWithPort(a netip.AddrPort, port uint16) netip.AddrPort {
	return netip.AddrPortFrom(a.Addr(), port)
}

func newTestPacket(pw Pathway, size int, containsClose bool) ReceivedPacket {
	return ReceivedPacket{
		Data:          bytes.Repeat([]byte{42}, size),
		Pathway:       pw,
		RcvTime:       time.Now(),
		ContainsClose: containsClose,
	}
}

func areConnsRunning() bool {
	var b bytes.Buffer
	pprof.Lookup("goroutine").WriteTo(&b, 1)
	return strings.Contains(b.String(), "veloq.(*Conn).run")
}

func TestMain(m *testing.M) {
	status := m.Run()
	if status != 0 {
		os.Exit(status)
	}
	if areConnsRunning() {
		fmt.Println("stray connection goroutines found")
		os.Exit(1)
	}
	os.Exit(status)
}
