package log

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

const (
	levelEnvKey = "YTMUSIC_LOG_LEVEL"
	debugEnvKey = "YTMUSIC_DEBUG"
)

// FromEnv builds the library logger from YTMUSIC_LOG_LEVEL and YTMUSIC_DEBUG.
// Output is a pretty console writer when stderr is a terminal, JSON otherwise.
func FromEnv() zerolog.Logger {
	level := zerolog.WarnLevel
	if v, ok := os.LookupEnv(levelEnvKey); ok {
		parsed, err := zerolog.ParseLevel(strings.ToLower(v))
		if nil != err {
			panic("invalid logging level: " + v)
		}
		level = parsed
	}

	if v, ok := os.LookupEnv(debugEnvKey); ok {
		if truthy, err := strconv.ParseBool(v); nil == err && truthy {
			level = zerolog.DebugLevel
		}
	}

	return New(level)
}

func New(level zerolog.Level) zerolog.Logger {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		return zerolog.
			New(zerolog.ConsoleWriter{ //nolint:exhaustruct
				Out:          os.Stderr,
				TimeFormat:   time.RFC3339,
				TimeLocation: time.UTC,
			}).
			With().
			Timestamp().
			Logger().
			Level(level)
	}

	return zerolog.
		New(os.Stderr).
		With().
		Timestamp().
		Logger().
		Level(level)
}

func Discard() zerolog.Logger {
	return zerolog.Nop()
}
