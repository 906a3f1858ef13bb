// Package udp wraps a single owned datagram socket. The wrapper is a
// reusable component and performs no logging of its own; callers decide how
// failures are reported.
package udp

import (
	"fmt"
	"net"

	"github.com/vk/inputgate/internal/contract"
)

// Socket owns one bound UDP endpoint. Exactly one owner holds the underlying
// OS resource at a time, and the wrapper is single-use: Bind creates it open
// and Close releases it exactly once. The zero value is not open.
type Socket struct {
	conn *net.UDPConn
}

// Bind creates a datagram socket bound to the given port on all local
// interfaces. On failure the returned error carries the system error state.
func Bind(port int) (*Socket, error) {
	conn, err := net.ListenUDP("udp", &net.UDPAddr{Port: port})
	if err != nil {
		return nil, fmt.Errorf("bind udp port %d: %w", port, err)
	}
	return &Socket{conn: conn}, nil
}

// Open reports whether Bind succeeded for this socket. Closing does not reset
// it; using an endpoint after Close surfaces as a read failure, which callers
// already treat as fatal.
func (s *Socket) Open() bool {
	return s != nil && s.conn != nil
}

// LocalAddr returns the bound address. Precondition: Open().
func (s *Socket) LocalAddr() net.Addr {
	contract.Assert(s.Open(), "local address of an unopened socket")
	return s.conn.LocalAddr()
}

// Read blocks until a datagram arrives and returns the sub-slice of buf that
// was filled. Datagrams longer than buf are truncated, as with any datagram
// socket. A non-nil error means the endpoint itself failed; it is distinct
// from a valid empty datagram, which returns a zero-length slice and no
// error.
//
// Preconditions: Open(); buf is non-nil (zero length is allowed).
func (s *Socket) Read(buf []byte) ([]byte, error) {
	contract.Assert(buf != nil, "read into a nil buffer")
	contract.Assert(s.Open(), "read on an unopened socket")

	n, _, err := s.conn.ReadFromUDP(buf)
	if err != nil {
		return nil, err
	}

	// Cannot happen per the net.Conn contract; checked to express the
	// program's state rather than to guard against it.
	contract.Assert(n >= 0 && n <= len(buf), "read size %d outside buffer of %d bytes", n, len(buf))

	return buf[:n], nil
}

// Close releases the OS resource. Release is itself defensive: failing to
// close a socket we own is a defect. Precondition: Open(); Close must be
// called at most once.
func (s *Socket) Close() {
	contract.Assert(s.Open(), "close on an unopened socket")

	err := s.conn.Close()
	contract.Assert(err == nil, "close failed: %v", err)
}
