package cli

import "github.com/vk/inputgate/internal/diag"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// userError builds the recoverable failure for a violated End User Contract:
// a formatted diagnostic and exit status 1.
func userError(format string, args ...any) *ExitError {
	return &ExitError{Code: 1, Message: diag.Line("error", format, args...)}
}
