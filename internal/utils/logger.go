package utils

import (
	"fmt"
	"io"
	"sync"
)

// Logger provides a centralized output mechanism for SearchCloud.
// Progress messages go to out, warnings to errOut, and debug messages
// are emitted only when verbose mode is enabled.
type Logger struct {
	out     io.Writer
	errOut  io.Writer
	verbose bool
	mu      sync.Mutex
}

// NewLogger creates a logger writing progress to out and warnings to errOut.
func NewLogger(out, errOut io.Writer, verbose bool) *Logger {
	return &Logger{
		out:     out,
		errOut:  errOut,
		verbose: verbose,
	}
}

// Discard returns a logger that drops all output. Useful in tests.
func Discard() *Logger {
	return NewLogger(io.Discard, io.Discard, false)
}

// Verbose reports whether verbose mode is enabled.
func (l *Logger) Verbose() bool {
	return l.verbose
}

// Infof writes a progress message.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, format+"\n", args...)
}

// Debugf writes a diagnostic message, only in verbose mode.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, format+"\n", args...)
}

// Warnf writes a warning message to the error stream.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.errOut, format+"\n", args...)
}
