//go:build linux

package wlr

import (
	"context"
	"fmt"
	"os"

	"github.com/labi-le/clipmon/pkg/clipboard/eventful"
	"github.com/labi-le/clipmon/pkg/ctxlog"
	"github.com/labi-le/clipmon/pkg/format"
	"github.com/rs/zerolog"
)

var _ eventful.Eventful = (*Clipboard)(nil)

// Supported reports whether a Wayland compositor is reachable from the environment.
func Supported() bool {
	_, display := os.LookupEnv("WAYLAND_DISPLAY")
	_, socket := os.LookupEnv("WAYLAND_SOCKET")
	return display || socket
}

// Clipboard follows the seat selection through the wlr data control protocol.
type Clipboard struct {
	logger zerolog.Logger
}

func New(log zerolog.Logger) *Clipboard {
	return &Clipboard{
		logger: ctxlog.Backend(log, "wlr"),
	}
}

func (c *Clipboard) Watch(ctx context.Context, fn eventful.Handler) error {
	log := ctxlog.Op(c.logger, "wlr.Watch")

	s, err := open(log)
	if err != nil {
		return fmt.Errorf("wlr.Watch: %w", err)
	}
	defer s.close()

	s.onSelection = func(o *offer) {
		fn(eventful.NewEvent(o))
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-s.client.Events():
			if !ok {
				log.Trace().Msg("wayland event stream closed")
				return nil
			}

			if err := ev(); err != nil {
				return fmt.Errorf("wlr.Watch: %w", err)
			}
			if s.finished {
				return fmt.Errorf("wlr.Watch: %w", errFinished)
			}
		}
	}
}

// Snapshot reads the current selection over a dedicated connection.
func (c *Clipboard) Snapshot() format.DataObject {
	log := ctxlog.Op(c.logger, "wlr.Snapshot")

	s, err := open(log)
	if err != nil {
		log.Warn().Err(err).Msg("clipboard unavailable")
		return format.Snapshot{}
	}
	defer s.close()

	if s.selection == nil {
		return format.Snapshot{}
	}

	return s.selection.snapshot()
}
