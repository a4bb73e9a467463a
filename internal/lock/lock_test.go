package lock_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/labi-le/clipmon/internal/lock"
	"github.com/rs/zerolog"
)

func TestMustAt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clipmon.lck")

	unlock := lock.MustAt(path, zerolog.Nop())
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("lock file not created: %v", err)
	}

	unlock()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("lock file not removed, stat err = %v", err)
	}

	lock.MustAt(path, zerolog.Nop())()
}
