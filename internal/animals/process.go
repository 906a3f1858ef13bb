package animals

import (
	"fmt"
	"io"

	"github.com/vk/inputgate/internal/contract"
)

// Process prints the animal name carried by a sanitized message, followed by
// a newline. Precondition: m was produced by Decode.
func Process(w io.Writer, m Message) {
	contract.Assert(m.Animal.Valid(), "unsanitized message reached the core operation: tag %d", uint8(m.Animal))
	fmt.Fprintf(w, "%s\n", m.Animal)
}
