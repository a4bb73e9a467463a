package metadata

import "github.com/rs/zerolog"

// set via -ldflags "-X github.com/labi-le/clipmon/internal/metadata.Version=..."
var (
	Version    = "freshest"
	CommitHash = "n/a"
	BuildTime  = "n/a"
)

func MarshalZerolog(e *zerolog.Event) *zerolog.Event {
	return e.
		Str("v", Version).
		Str("commit_hash", CommitHash).
		Str("build_time", BuildTime)
}
