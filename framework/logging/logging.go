// Package logging configures the application logger and the injector's
// resolution observer.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds a zerolog logger writing to stderr. Unknown levels fall back
// to info. With pretty set, output goes through the human-readable console
// writer instead of JSON.
func New(level string, pretty bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var out = zerolog.New(os.Stderr)
	if pretty {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	return out.Level(lvl).With().Timestamp().Logger()
}

// Observer returns an injector AfterResolving hook that debug-logs each
// first-time provider construction.
//
//	in.AfterResolving(logging.Observer(log))
func Observer(log zerolog.Logger) func(name string, value any) {
	return func(name string, value any) {
		log.Debug().
			Str("dependency", name).
			Type("type", value).
			Msg("provider constructed")
	}
}
