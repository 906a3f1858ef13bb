package animals

import (
	"fmt"

	"github.com/vk/inputgate/internal/contract"
)

// Animal is a closed enumeration of the four recognized wire tags.
type Animal uint8

const (
	Chicken Animal = iota
	Cow
	Horse
	Zebra
)

// PayloadSize is the exact number of meaningful bytes in a datagram.
const PayloadSize = 1

var names = [...]string{
	Chicken: "chicken",
	Cow:     "cow",
	Horse:   "horse",
	Zebra:   "zebra",
}

// Valid reports whether a carries one of the four recognized tags.
func (a Animal) Valid() bool {
	return int(a) < len(names)
}

// String returns the animal's name. Precondition: a.Valid().
func (a Animal) String() string {
	contract.Assert(a.Valid(), "invalid animal tag: %d", uint8(a))
	return names[a]
}

// Message is an immutable, sanitized datagram payload. It is constructed
// exclusively by Decode; downstream code assumes it is valid.
type Message struct {
	Animal Animal
}

// SizeError reports a datagram whose byte count violates the wire format.
type SizeError struct {
	Expected int
	Actual   int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("invalid packet size. expected=%d; actual=%d", e.Expected, e.Actual)
}

// TagError reports a datagram whose tag is not a recognized animal.
type TagError struct {
	Tag byte
}

func (e *TagError) Error() string {
	return fmt.Sprintf("invalid packet contents, %d", e.Tag)
}

// Decode validates a raw datagram payload against the End User Contract and
// produces the sanitized Message. It is total over byte slices: every input
// yields either a valid Message or a specific failure reason. Both failure
// cases are sender-attributable, never program defects.
func Decode(payload []byte) (Message, error) {
	if len(payload) != PayloadSize {
		return Message{}, &SizeError{Expected: PayloadSize, Actual: len(payload)}
	}

	a := Animal(payload[0])
	if !a.Valid() {
		return Message{}, &TagError{Tag: payload[0]}
	}

	return Message{Animal: a}, nil
}
