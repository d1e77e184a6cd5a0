package veloq

import (
	"context"
	"testing"
	"time"

	"github.com/veloq/veloq/internal/qerr"

	"github.com/stretchr/testify/require"
)

func TestParametersBlockUntilSet(t *testing.T) {
	p := NewParameters()
	tp := &TransportParameters{InitialMaxStreamDataUni: 1234}

	done := make(chan struct{})
	go func() {
		defer close(done)
		remote, err := p.Remote(context.Background())
		require.NoError(t, err)
		require.Equal(t, tp, remote)
	}()

	time.Sleep(scaleDuration(5 * time.Millisecond))
	p.SetRemote(tp)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Remote didn't unblock")
	}
}

func TestParametersContextCancellation(t *testing.T) {
	p := NewParameters()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Remote(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestParametersFailPendingReadersOnConnError(t *testing.T) {
	p := NewParameters()
	e := qerr.NewTransportError(qerr.InternalError, "handshake failed")

	errChan := make(chan error, 1)
	go func() {
		_, err := p.Remote(context.Background())
		errChan <- err
	}()

	time.Sleep(scaleDuration(5 * time.Millisecond))
	p.OnConnError(e)
	select {
	case err := <-errChan:
		require.ErrorIs(t, err, e)
	case <-time.After(time.Second):
		t.Fatal("Remote didn't unblock")
	}
	// future readers fail as well
	_, err := p.Remote(context.Background())
	require.ErrorIs(t, err, e)
}

func TestParametersKeepValueAfterLateError(t *testing.T) {
	p := NewParameters()
	tp := &TransportParameters{MaxDatagramFrameSize: 1000}
	p.SetRemote(tp)
	p.OnConnError(qerr.NewApplicationError(0, "bye"))

	remote, err := p.Remote(context.Background())
	require.NoError(t, err)
	require.Equal(t, tp, remote)
}
