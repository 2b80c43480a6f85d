package logger

import (
	"io"
	"os"
	"time"

	"hotelpos/config"
	"hotelpos/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

// InitLogger installs the global logger at trace level. SetLogLevel narrows it once the
// config is loaded.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = zerolog.New(writer(os.Getenv("SERVER_ENV"))).With().Timestamp().Logger()
	log.Trace().Msg("Zerolog initialized.")
}

func writer(env string) io.Writer {
	if env == constant.ServerEnvProduction {
		return os.Stdout
	}

	return zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
}

// ErrorWithStack logs err with the stack of the caller attached.
func ErrorWithStack(err error) {
	log.Error().Stack().Err(errors.WithStack(err)).Msg(err.Error())
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil {
		log.Warn().Str("loglevel", config.Server.LogLevel).Msg("Unknown log level, keeping trace")

		level = zerolog.TraceLevel
	}

	zerolog.SetGlobalLevel(level)
	log.Info().Str("loglevel", level.String()).Msg("Log level set")
}
