package listener

import (
	"context"
	"fmt"

	"github.com/vk/inputgate/internal/animals"
	"github.com/vk/inputgate/internal/ctxlog"
	"github.com/vk/inputgate/internal/diag"
	"github.com/vk/inputgate/internal/udp"
)

// Run binds the endpoint and dispatches datagrams until the endpoint fails.
// It never returns nil: the only way out of the dispatch loop is an
// unrecoverable environment failure.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.cfg.HealthcheckPort > 0 {
		go a.startHealthcheckServer(a.cfg.HealthcheckPort)
	}

	sock, err := udp.Bind(a.cfg.Port)
	if err != nil {
		return fmt.Errorf("failed to bind udp socket on port %d: %w", a.cfg.Port, err)
	}
	defer sock.Close()

	a.logger.Info("entering main loop", "port", a.cfg.Port)
	return a.serve(ctx, sock)
}

// serve runs the dispatch loop over an already-bound endpoint: one iteration
// per datagram, read then sanitize then process. Sanitization failures are
// sender-attributable; the packet is skipped and nothing else changes. A read
// failure means the endpoint is in a bad state and ends the loop.
func (a *App) serve(ctx context.Context, sock *udp.Socket) error {
	logger := ctxlog.FromContext(ctx)

	// Reused across iterations. One byte larger than the wire format so that
	// oversized datagrams are observed as a size violation instead of being
	// truncated to a valid payload.
	var buf [animals.PayloadSize + 1]byte

	for {
		payload, err := sock.Read(buf[:])
		if err != nil {
			// Possibly a failed network interface; there is nothing sensible
			// to retry with the same endpoint.
			return fmt.Errorf("failed to read udp packet: %w", err)
		}

		msg, err := animals.Decode(payload)
		if err != nil {
			// End User Contract violation by the sender. Skip the packet and
			// keep serving.
			diag.Warnf(a.errW, "%v", err)
			continue
		}

		logger.Debug("datagram sanitized", "tag", uint8(msg.Animal))
		animals.Process(a.outW, msg)
	}
}
