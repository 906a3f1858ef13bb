// Package alphabet holds the core operation of the letter program. It
// operates only on already-sanitized input: the range checks here are API
// contract assertions, not user-facing validation.
package alphabet

import "github.com/vk/inputgate/internal/contract"

// MinPosition and MaxPosition bound the 1-based alphabet position.
const (
	MinPosition = 1
	MaxPosition = 26
)

// Letter returns the uppercase English letter at the 1-based position n.
// Precondition: n is in [MinPosition, MaxPosition].
func Letter(n int) byte {
	contract.Assert(n >= MinPosition && n <= MaxPosition, "alphabet position out of range: %d", n)
	return byte('A' + n - MinPosition)
}
