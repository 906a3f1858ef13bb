package contract

import (
	"fmt"
	"os"

	"github.com/vk/inputgate/internal/diag"
)

// Policy reacts to a violated API contract. The active policy is selected at
// build time via build tags and may be overridden once at startup; it is a
// single injection point rather than conditionals scattered over call sites.
type Policy func(violation string)

var policy Policy = defaultPolicy

// SetPolicy replaces the active violation policy and returns the previous
// one. It is intended for startup configuration and for tests; the programs
// are single-threaded, so no synchronization is provided.
func SetPolicy(p Policy) Policy {
	if p == nil {
		panic("contract: nil policy")
	}
	prev := policy
	policy = p
	return prev
}

// Assert checks a precondition that the caller has already promised to
// uphold. A failure here is a programming defect, never bad user input: all
// externally supplied data must be sanitized before it reaches asserted code.
func Assert(ok bool, format string, args ...any) {
	if ok {
		return
	}
	policy(fmt.Sprintf(format, args...))
}

// Abort panics with the violation, terminating the program abnormally. This
// is the default reaction: a violated API contract means the program state
// can no longer be trusted.
func Abort(violation string) {
	panic("api contract violated: " + violation)
}

// LogOnly reports the violation to stderr and lets execution continue. It
// trades safety for availability; useful while diagnosing a defect in an
// environment that must keep running.
func LogOnly(violation string) {
	diag.Errorf(os.Stderr, "api contract violated: %s", violation)
}

// Assume treats the violation as impossible and does nothing. Choosing it
// declares that every assertion in the program has been proven to hold.
func Assume(string) {}

// ByName resolves a policy from its configuration name. Recognized names are
// "abort", "log" and "assume".
func ByName(name string) (Policy, bool) {
	switch name {
	case "abort":
		return Abort, true
	case "log":
		return LogOnly, true
	case "assume":
		return Assume, true
	}
	return nil, false
}
