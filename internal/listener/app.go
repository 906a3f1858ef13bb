package listener

import (
	"io"
	"log/slog"
)

// App encapsulates the listener's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger
	cfg    *Config
}

// NewApp is the constructor for the listener application. outW receives the
// program's data output (one animal name per valid datagram); errW receives
// user-facing diagnostics and the operational log, keeping stdout clean.
func NewApp(outW, errW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		errW:   errW,
		logger: logger,
		cfg:    cfg,
	}
}
