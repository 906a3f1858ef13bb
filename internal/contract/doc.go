// Package contract detects API contract violations: documented preconditions
// that a function's own callers within the program have failed to uphold.
//
// These are distinct from End User Contract violations (malformed CLI
// arguments, malformed network payloads), which are expected, recoverable,
// and handled with explicit error values by the sanitizing layers. By the
// time data reaches asserted code it is assumed valid; a failed assertion is
// therefore a defect.
//
// The reaction to a violation is a pluggable Policy. The default is chosen at
// build time: plain builds abort, builds tagged `contract_log` only log, and
// builds tagged `contract_assume` treat violations as impossible.
package contract
