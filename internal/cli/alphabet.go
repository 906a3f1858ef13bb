package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/vk/inputgate/internal/alphabet"
)

// alphabetUsage is printed for --help. Exactly three lines.
const alphabetUsage = `Usage: alphabet <N>
Prints the N-th letter of the English alphabet as a single uppercase character.
N must be an integer in the range [1, 26].
`

// ParseAlphabet sanitizes the letter program's arguments. On success it
// returns the validated position. done reports that the program should exit
// cleanly without running the core operation (help was requested). Every
// failure path is an End User Contract violation returned as an *ExitError;
// none of them is fatal to the caller.
func ParseAlphabet(args []string, outW io.Writer) (n int, done bool, err error) {
	const expected = 1
	if len(args) != expected {
		return 0, false, userError("Wrong number of arguments provided. Expected=%d; Actual=%d", expected, len(args))
	}

	if args[0] == "--help" {
		fmt.Fprint(outW, alphabetUsage)
		return 0, true, nil
	}

	// The whole token must parse; trailing characters are a violation.
	n, convErr := strconv.Atoi(args[0])
	if convErr != nil {
		return 0, false, userError("Unrecognized number, '%s'", args[0])
	}

	if n < alphabet.MinPosition || n > alphabet.MaxPosition {
		return 0, false, userError("Out-of-range number, %d", n)
	}

	return n, false, nil
}
