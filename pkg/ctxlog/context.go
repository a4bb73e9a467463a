package ctxlog

import (
	"github.com/rs/zerolog"
)

// Op tags every entry with the operation name.
func Op(logger zerolog.Logger, op string) zerolog.Logger {
	return logger.With().Str("op", op).Logger()
}

// Backend tags every entry with the clipboard backend name.
func Backend(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("backend", name).Logger()
}
