package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/inputgate/internal/cli"
	"github.com/vk/inputgate/internal/contract"
	"github.com/vk/inputgate/internal/listener"
)

// main is the entrypoint for the animals listener.
func main() {
	// Use a minimal logger until the configured one is built.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the listener lifecycle for easier testing. It returns nil
// only for a clean early exit (help); a running listener only ever stops on
// an unrecoverable failure.
func run(outW, errW io.Writer, args []string) error {
	cfg, done, err := cli.ParseAnimals(args, outW)
	if err != nil {
		return err
	}
	if done {
		return nil
	}

	if cfg.ContractPolicy != "" {
		policy, ok := contract.ByName(cfg.ContractPolicy)
		if !ok {
			// ParseAnimals validates the name; reaching this is a defect.
			return fmt.Errorf("unknown contract policy %q", cfg.ContractPolicy)
		}
		contract.SetPolicy(policy)
	}

	app := listener.NewApp(outW, errW, cfg)
	return app.Run(context.Background())
}
