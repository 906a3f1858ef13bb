package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/inputgate/internal/alphabet"
	"github.com/vk/inputgate/internal/cli"
)

// main is the entrypoint for the alphabet program.
func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the program logic for easier testing and error handling.
func run(outW io.Writer, args []string) error {
	n, done, err := cli.ParseAlphabet(args, outW)
	if err != nil {
		return err
	}
	if done {
		return nil
	}

	// n is sanitized; from here on its validity is an API contract, not a
	// user-input concern. The letter is printed without a trailing newline.
	fmt.Fprintf(outW, "%c", alphabet.Letter(n))
	return nil
}
