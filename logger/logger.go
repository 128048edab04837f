package logger

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// envLogLevel is the environment variable used to set the log level
	envLogLevel string = "DIRCACHE_LOG_LEVEL"

	// envLogFormatJSON is the environment variable that switches the output to json when not empty
	envLogFormatJSON string = "DIRCACHE_LOG_FORMAT_JSON"
)

// parseLevel returns the zerolog level matching the provided name.
// Unknown names fallback to info level
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "panic":
		return zerolog.PanicLevel
	case "fatal":
		return zerolog.FatalLevel
	case "error":
		return zerolog.ErrorLevel
	case "warn":
		return zerolog.WarnLevel
	case "debug":
		return zerolog.DebugLevel
	case "trace":
		return zerolog.TraceLevel
	default:
		return zerolog.InfoLevel
	}
}

// NewLogger instantiate zerolog configuration
func NewLogger() *zerolog.Logger {
	var logger zerolog.Logger
	zerolog.SetGlobalLevel(parseLevel(os.Getenv(envLogLevel)))

	if strings.TrimSpace(os.Getenv(envLogFormatJSON)) == "" {
		output := zerolog.ConsoleWriter{Out: os.Stdout, NoColor: true, TimeFormat: time.RFC3339}
		output.FormatLevel = func(i interface{}) string {
			return strings.ToUpper(fmt.Sprintf("| %s |", i))
		}
		output.FormatMessage = func(i interface{}) string {
			return fmt.Sprintf("%s", i)
		}

		logger = zerolog.New(output).With().Timestamp().Caller().Logger()
	} else {
		logger = zerolog.New(os.Stdout).With().Timestamp().Caller().Logger()
	}
	return &logger
}

// NewNopLogger returns a logger discarding everything.
// Mostly used by tests
func NewNopLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}
