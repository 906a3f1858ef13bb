package cli

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/vk/inputgate/internal/contract"
	"github.com/vk/inputgate/internal/hclcfg"
	"github.com/vk/inputgate/internal/listener"
)

// ParseAnimals sanitizes the listener program's arguments and merges them
// with the optional HCL config file. Precedence: built-in defaults, then the
// config file, then flags and the positional port. It returns a populated
// listener.Config, a boolean indicating a clean early exit, or an ExitError.
func ParseAnimals(args []string, outW io.Writer) (*listener.Config, bool, error) {
	flagSet := flag.NewFlagSet("animals", flag.ContinueOnError)
	flagSet.SetOutput(outW)

	flagSet.Usage = func() {
		fmt.Fprint(outW, `
animals - a UDP listener that prints the animal name for each valid datagram.

Usage:
  animals [options] <port>

Arguments:
  <port>
    UDP port to bind on all local interfaces.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an optional listener .hcl config file.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health check server. 0 is disabled.")
	policyFlag := flagSet.String("contract-policy", "", "Reaction to API contract violations. Options: 'abort', 'log', 'assume'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg := listener.Config{
		LogFormat:       *logFormatFlag,
		LogLevel:        *logLevelFlag,
		HealthcheckPort: *healthPortFlag,
		ContractPolicy:  *policyFlag,
	}

	if *configFlag != "" {
		file, err := hclcfg.Load(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		applyFile(&cfg, file, flagSet)
	}

	switch flagSet.NArg() {
	case 0:
		if cfg.Port == 0 {
			return nil, false, userError("expected 1 command-line parameters; got 0")
		}
	case 1:
		port, err := parsePort(flagSet.Arg(0))
		if err != nil {
			return nil, false, err
		}
		cfg.Port = port
	default:
		return nil, false, userError("expected 1 command-line parameters; got %d", flagSet.NArg())
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if cfg.ContractPolicy != "" {
		if _, ok := contract.ByName(cfg.ContractPolicy); !ok {
			return nil, false, &ExitError{Code: 2, Message: "invalid contract-policy: must be 'abort', 'log', or 'assume'"}
		}
	}

	out, err := listener.NewConfig(cfg)
	if err != nil {
		return nil, false, userError("%s", err)
	}

	return out, false, nil
}

// applyFile copies config-file values into cfg without overriding flags the
// user set explicitly. The positional port, handled later, always wins over
// the file.
func applyFile(cfg *listener.Config, file *hclcfg.File, fs *flag.FlagSet) {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if file.Port != nil {
		cfg.Port = *file.Port
	}
	if file.LogLevel != nil && !set["log-level"] {
		cfg.LogLevel = *file.LogLevel
	}
	if file.LogFormat != nil && !set["log-format"] {
		cfg.LogFormat = *file.LogFormat
	}
	if file.HealthcheckPort != nil && !set["healthcheck-port"] {
		cfg.HealthcheckPort = *file.HealthcheckPort
	}
	if file.ContractPolicy != nil && !set["contract-policy"] {
		cfg.ContractPolicy = *file.ContractPolicy
	}
}

// parsePort strictly parses tok as a 16-bit port number; the whole token must
// be consumed.
func parsePort(tok string) (int, error) {
	port, err := strconv.ParseUint(tok, 10, 16)
	if err != nil {
		return 0, userError("failed to parse '%s' as port number.", tok)
	}
	return int(port), nil
}
