package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds a leveled JSON logger for non-interactive processes such as the
// stream worker. An unparseable level falls back to info.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(os.Stdout).
		Level(lvl).
		With().
		Timestamp().
		Caller().
		Logger()
}
