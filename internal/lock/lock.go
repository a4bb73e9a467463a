package lock

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/nightlyone/lockfile"
	"github.com/rs/zerolog"
)

const file = "clipmon.lck"

var (
	ErrCannotLock     = errors.New("cannot get locked process: %s")
	ErrCannotUnlock   = errors.New("cannot unlock process: %s")
	ErrAlreadyRunning = errors.New("clipmon is already running. pid %d")
)

// Must takes the single instance lock or exits.
func Must(logger zerolog.Logger) func() {
	return MustAt(filepath.Join(os.TempDir(), file), logger)
}

func MustAt(path string, logger zerolog.Logger) func() {
	lock, err := lockfile.New(path)
	if err != nil {
		logger.Fatal().Msgf(ErrCannotLock.Error(), err)
	}

	if lockErr := lock.TryLock(); lockErr != nil {
		owner, err := lock.GetOwner()
		if err != nil {
			logger.Fatal().Msgf(ErrCannotLock.Error(), err)
		}
		logger.Fatal().Msgf(ErrAlreadyRunning.Error(), owner.Pid)
	}

	return func() {
		Unlock(lock, logger)
	}
}

func Unlock(lock lockfile.Lockfile, l zerolog.Logger) {
	if err := lock.Unlock(); err != nil {
		l.Fatal().Msgf(ErrCannotUnlock.Error(), err)
	}
}
