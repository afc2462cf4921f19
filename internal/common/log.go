package common

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var debug = false

// Logger is the process-wide logger behind the INFO/WARN/FAIL helpers.
var Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
	Level(zerolog.InfoLevel).
	With().Timestamp().Logger()

// EnableDebug turns on the D* helpers and lowers the level to debug.
func EnableDebug() {
	debug = true
	Logger = Logger.Level(zerolog.DebugLevel)
}

// SetLevel accepts the zerolog level names ("debug", "info", "warn", ...).
func SetLevel(level string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}
	if lvl == zerolog.DebugLevel || lvl == zerolog.TraceLevel {
		debug = true
	}
	Logger = Logger.Level(lvl)
	return nil
}

// Silence discards all log output.
func Silence() {
	Logger = zerolog.Nop()
}

func INFO(format string, args ...any) {
	Logger.Info().Msgf(format, args...)
}
func WARN(format string, args ...any) {
	Logger.Warn().Msgf(format, args...)
}
func FAIL(format string, args ...any) {
	Logger.Error().Msgf(format, args...)
}

func DINFO(format string, args ...any) {
	if debug {
		Logger.Debug().Msgf(format, args...)
	}
}