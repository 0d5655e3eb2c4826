// Package config loads environment configuration for SwipeKeys.
package config

import (
	"io"

	"github.com/pion/logging"
)

var logLevels = map[string]logging.LogLevel{
	"disabled": logging.LogLevelDisabled,
	"error":    logging.LogLevelError,
	"warn":     logging.LogLevelWarn,
	"info":     logging.LogLevelInfo,
	"debug":    logging.LogLevelDebug,
	"trace":    logging.LogLevelTrace,
}

// LoggerFactory builds the leveled logger factory for the configured level.
// debug forces trace output for every scope.
func (c Config) LoggerFactory(w io.Writer, debug bool) *logging.DefaultLoggerFactory {
	f := logging.NewDefaultLoggerFactory()
	if w != nil {
		f.Writer = w
	}
	level, ok := logLevels[c.LogLevel]
	if !ok {
		level = logging.LogLevelInfo
	}
	if debug {
		level = logging.LogLevelTrace
	}
	f.DefaultLogLevel = level
	return f
}
