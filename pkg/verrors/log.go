package verrors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler is a Handler that logs errors to a writer, stderr by default.
type LogHandler struct {
	// Verbose enables stack trace output for recovered panics.
	Verbose bool
	// Out overrides the destination writer. Nil means stderr.
	Out io.Writer
}

// Handle writes a single line per error, plus the stack trace when verbose.
func (h *LogHandler) Handle(err *Error) {
	if err == nil {
		return
	}
	out := h.Out
	if out == nil {
		out = os.Stderr
	}
	fmt.Fprintf(out, "[vorb error] %s [%s]: %v\n", err.Op, err.Kind, err.Err)
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(out, "Stack trace:\n%s\n", err.StackTrace)
	}
}
