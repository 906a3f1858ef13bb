package listener

import (
	"fmt"
	"net/http"
)

// healthHandler reports liveness. The dispatch loop has no other observable
// surface while it is blocked on a read.
func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

// startHealthcheckServer runs the optional health check HTTP server. It is
// started on its own goroutine by Run and never touches the dispatch loop.
func (a *App) startHealthcheckServer(port int) {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", a.healthHandler)

	addr := fmt.Sprintf(":%d", port)
	a.logger.Info("health check server starting", "address", fmt.Sprintf("http://localhost%s/health", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		a.logger.Error("health check server failed", "error", err)
	}
}
