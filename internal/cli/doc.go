// Package cli holds the input sanitizers for both programs: it parses
// command-line arguments, validates them against each program's End User
// Contract, and handles process-level concerns like exit codes. Data that
// leaves this package is sanitized; downstream code asserts rather than
// re-validates it.
package cli
