// Package log builds the zerolog loggers used by the command-line driver.
// The converter library itself never logs.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ErrInvalidLevel is returned for an unrecognized level name.
var ErrInvalidLevel = errors.New("invalid log level")

// EnvLevel is the environment variable overriding the default level.
const EnvLevel = "TEXT2BLOG_LOG_LEVEL"

// Config captures options for building a logger.
type Config struct {
	Level   string    // optional log level ("debug", "info", etc.); empty means info
	Output  io.Writer // optional writer (defaults to os.Stderr)
	JSON    bool      // emit JSON lines instead of the console format
	NoColor bool      // disable ANSI colors in the console format
}

// ParseLevel maps a level name to a zerolog level. Empty means info.
func ParseLevel(name string) (zerolog.Level, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.NoLevel, fmt.Errorf("%w: %q (use trace, debug, info, warn, error or disabled)", ErrInvalidLevel, name)
	}
	return level, nil
}

// New builds a logger from cfg. The level is set on the logger itself, not
// globally, so several loggers can coexist in tests.
func New(cfg Config) (zerolog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	writer := cfg.Output
	if writer == nil {
		writer = os.Stderr
	}
	if !cfg.JSON {
		writer = zerolog.ConsoleWriter{
			Out:        writer,
			NoColor:    cfg.NoColor,
			TimeFormat: time.TimeOnly,
		}
	}

	return zerolog.New(writer).Level(level).With().Timestamp().Logger(), nil
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(l zerolog.Logger, component string) zerolog.Logger {
	return l.With().Str(FieldComponent, component).Logger()
}
