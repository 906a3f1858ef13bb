package listener

import (
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vk/inputgate/internal/testutil"
	"github.com/vk/inputgate/internal/udp"
)

func TestServeDispatchesValidDatagramsAndSkipsInvalidOnes(t *testing.T) {
	// --- Arrange ---
	out := &testutil.SafeBuffer{}
	errW := &testutil.SafeBuffer{}

	cfg, err := NewConfig(Config{Port: 4950})
	require.NoError(t, err)
	app := NewApp(out, errW, cfg)

	// Bind on an ephemeral port; serve is handed the endpoint directly so the
	// test owns its lifetime.
	sock, err := udp.Bind(0)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- app.serve(context.Background(), sock) }()

	addr, ok := sock.LocalAddr().(*net.UDPAddr)
	require.True(t, ok)
	conn, err := net.DialUDP("udp", nil, &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: addr.Port})
	require.NoError(t, err)
	defer conn.Close()

	// --- Act ---
	// Two malformed datagrams interleaved with the four valid tags.
	for _, datagram := range [][]byte{{0}, {1}, {9}, {1, 2, 3}, {2}, {3}} {
		_, err := conn.Write(datagram)
		require.NoError(t, err)
	}

	// --- Assert ---
	require.Eventually(t, func() bool {
		return out.String() == "chicken\ncow\nhorse\nzebra\n"
	}, 2*time.Second, 10*time.Millisecond, "expected exactly the four valid animals in arrival order")

	require.Contains(t, errW.String(), "warning: invalid packet contents, 9")
	require.Contains(t, errW.String(), "warning: invalid packet size. expected=1; actual=2")

	// Releasing the endpoint is the unrecoverable failure that ends the loop.
	sock.Close()
	select {
	case serveErr := <-done:
		require.Error(t, serveErr)
		require.Contains(t, serveErr.Error(), "failed to read udp packet")
	case <-time.After(2 * time.Second):
		t.Fatal("serve did not stop after the endpoint failed")
	}
}

func TestRunFailsWhenThePortIsTaken(t *testing.T) {
	// Occupy a port first so that Run's own bind attempt must fail.
	sock, err := udp.Bind(0)
	require.NoError(t, err)
	defer sock.Close()

	addr, ok := sock.LocalAddr().(*net.UDPAddr)
	require.True(t, ok)

	out := &testutil.SafeBuffer{}
	errW := &testutil.SafeBuffer{}
	cfg, err := NewConfig(Config{Port: addr.Port})
	require.NoError(t, err)

	runErr := NewApp(out, errW, cfg).Run(context.Background())

	require.Error(t, runErr)
	require.Contains(t, runErr.Error(), "failed to bind udp socket")
	require.Empty(t, out.String())
}

func TestLoggerRespectsConfiguredLevelAndFormat(t *testing.T) {
	t.Parallel()

	errW := &testutil.SafeBuffer{}
	logger := newLogger("debug", "text", errW)
	logger.Debug("visible at debug level")
	require.Contains(t, errW.String(), "visible at debug level")

	quiet := &testutil.SafeBuffer{}
	logger = newLogger("error", "json", quiet)
	logger.Info("filtered out")
	require.False(t, strings.Contains(quiet.String(), "filtered out"))
}
