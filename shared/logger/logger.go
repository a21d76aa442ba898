// Package logger sets up the process-wide zerolog logger the rest of the
// module logs through. The zone database logs reloads; everything else stays
// quiet unless something fails.
package logger

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tzbridge/config"
)

// InitLogger routes the global logger to a console writer on stderr, with
// unix timestamps in the fields. The level starts at trace until SetLogLevel
// applies the configured one.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	// Diagnostics go to stderr; stdout belongs to the embedding program.
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	log.Logger = log.Output(output)
	log.Trace().Msg("Logger ready.")
}

// ErrorWithStack logs an error together with the stack trace of the call
// site, for failures that surface far from where they originate.
func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// SetLogLevel applies the configured level to the global logger. An
// unparseable level falls back to trace rather than silencing anything.
func SetLogLevel(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("No usable log level configured, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Configured log level applied.")
	}

	zerolog.SetGlobalLevel(level)
}
