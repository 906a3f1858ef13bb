// Package listener contains the animals program's application logic: its
// validated configuration, an isolated logger, the optional health check
// server, and the single-threaded dispatch loop that owns the datagram
// endpoint for the lifetime of the process.
package listener
