// ABOUTME: Structured logger implementation on Go's standard log package
// ABOUTME: Level-prefixed output with JSON-encoded fields

package standard

import (
	"encoding/json"
	"io"
	"log"
	"os"
)

// StandardLogger implements the Logger interface using the standard library.
// Debug/Info/Warn go to stdout, Error to stderr.
type StandardLogger struct {
	out *log.Logger
	err *log.Logger
}

// NewStandardLogger creates a new standard logger
func NewStandardLogger() *StandardLogger {
	return NewStandardLoggerTo(os.Stdout, os.Stderr)
}

// NewStandardLoggerTo creates a standard logger with explicit sinks, used in
// tests to capture output.
func NewStandardLoggerTo(out, err io.Writer) *StandardLogger {
	return &StandardLogger{
		out: log.New(out, "", log.LstdFlags),
		err: log.New(err, "", log.LstdFlags),
	}
}

// Debug logs a debug message
func (l *StandardLogger) Debug(msg string, fields map[string]interface{}) {
	l.write(l.out, "DEBUG", msg, fields)
}

// Info logs an info message
func (l *StandardLogger) Info(msg string, fields map[string]interface{}) {
	l.write(l.out, "INFO", msg, fields)
}

// Warn logs a warning message
func (l *StandardLogger) Warn(msg string, fields map[string]interface{}) {
	l.write(l.out, "WARN", msg, fields)
}

// Error logs an error message
func (l *StandardLogger) Error(msg string, fields map[string]interface{}) {
	l.write(l.err, "ERROR", msg, fields)
}

func (l *StandardLogger) write(logger *log.Logger, level, msg string, fields map[string]interface{}) {
	if len(fields) == 0 {
		logger.Printf("[%s] %s", level, msg)
		return
	}

	encoded, err := json.Marshal(fields)
	if err != nil {
		logger.Printf("[%s] %s (failed to marshal fields: %v)", level, msg, err)
		return
	}
	logger.Printf("[%s] %s %s", level, msg, encoded)
}
