// Package animals defines the listener's wire format and its two halves of
// the failure taxonomy: Decode is the input sanitizer that enforces the End
// User Contract on raw datagram bytes, and Process is the core operation that
// assumes its input is already valid.
package animals
