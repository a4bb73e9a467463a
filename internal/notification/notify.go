package notification

import (
	"sync/atomic"

	"github.com/cespare/xxhash"
	"github.com/gen2brain/beeep"
	"github.com/rs/zerolog"
)

type Notifier interface {
	Notify(title, message string)
}

// New returns a desktop notifier, or a no-op one when disabled.
func New(enable bool, icon []byte, logger zerolog.Logger) Notifier {
	if !enable {
		return Null{}
	}

	return Beeep{Icon: icon, Logger: logger}
}

// Beeep shows a desktop notification through the platform notification daemon.
type Beeep struct {
	Icon   []byte
	Logger zerolog.Logger
}

func (b Beeep) Notify(title, message string) {
	var icon any = ""
	if len(b.Icon) > 0 {
		icon = b.Icon
	}

	if err := beeep.Notify(title, message, icon); err != nil {
		b.Logger.Warn().Err(err).Msg("failed to show notification")
	}
}

type Null struct{}

func (Null) Notify(string, string) {}

// Dedup drops a notification whose message equals the previous one.
type Dedup struct {
	Next     Notifier
	lastHash atomic.Uint64
}

func NewDedup(next Notifier) *Dedup {
	return &Dedup{Next: next}
}

func (d *Dedup) Notify(title, message string) {
	h := xxhash.Sum64String(message)
	if d.lastHash.Swap(h) == h {
		return
	}

	d.Next.Notify(title, message)
}
