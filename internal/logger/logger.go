package logger

import (
	"os"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func New() zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Caller().
		Logger()

	return logger
}

// SetLevel applies the configured level process-wide. Unknown values fall
// back to info so a typo in LOG_LEVEL never silences the process.
func SetLevel(value string) zerolog.Level {
	level, err := zerolog.ParseLevel(value)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(level)
	return level
}

var Module = fx.Provide(New)
