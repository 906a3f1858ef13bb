// Package diag emits user-facing diagnostics in the fixed
// "<category>: <message>" line format shared by both programs. It is separate
// from the operational slog logging: these lines are part of the programs'
// external interface and their format must not change with log configuration.
package diag

import (
	"fmt"
	"io"
)

// Line formats a single diagnostic line without emitting it.
func Line(category, format string, args ...any) string {
	return fmt.Sprintf("%s: %s", category, fmt.Sprintf(format, args...))
}

// Infof writes an informational diagnostic line to w.
func Infof(w io.Writer, format string, args ...any) {
	emit(w, "info", format, args...)
}

// Warnf writes a warning diagnostic line to w.
func Warnf(w io.Writer, format string, args ...any) {
	emit(w, "warning", format, args...)
}

// Errorf writes an error diagnostic line to w.
func Errorf(w io.Writer, format string, args ...any) {
	emit(w, "error", format, args...)
}

func emit(w io.Writer, category, format string, args ...any) {
	fmt.Fprintln(w, Line(category, format, args...))
}
