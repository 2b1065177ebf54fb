package logging

import "github.com/vvka-141/ecomload/pkg/ecomload"

// NullLogger discards all log messages. Used by tests and library callers
// that want a silent import.
type NullLogger struct{}

// NewNullLogger creates a new NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (l *NullLogger) Verbose(format string, args ...interface{}) {}

func (l *NullLogger) Info(format string, args ...interface{}) {}

func (l *NullLogger) Error(format string, args ...interface{}) {}

var (
	_ ecomload.Logger = (*NullLogger)(nil)
	_ ecomload.Logger = (*ConsoleLogger)(nil)
)
