package x11

import (
	"context"

	"github.com/jezek/xgb/xfixes"
	"github.com/jezek/xgb/xproto"
	"github.com/labi-le/clipmon/pkg/clipboard/eventful"
	"github.com/labi-le/clipmon/pkg/ctxlog"
	"github.com/labi-le/clipmon/pkg/format"
	"github.com/rs/zerolog"
)

var _ eventful.Eventful = (*Clipboard)(nil)

// Clipboard follows CLIPBOARD ownership changes through XFixes.
type Clipboard struct {
	logger zerolog.Logger
}

func New(log zerolog.Logger) *Clipboard {
	return &Clipboard{
		logger: ctxlog.Backend(log, "x11"),
	}
}

func (c *Clipboard) Watch(ctx context.Context, fn eventful.Handler) error {
	s, err := open()
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.subscribe(); err != nil {
		return err
	}

	stop := context.AfterFunc(ctx, s.close)
	defer stop()

	for {
		ev, xerr := s.conn.WaitForEvent()
		if ctx.Err() != nil {
			return nil
		}
		if xerr != nil {
			c.logger.Debug().Err(xerr).Msg("x11 error")
			continue
		}
		if ev == nil {
			return errClosed
		}

		switch e := ev.(type) {
		case xfixes.SelectionNotifyEvent:
			if e.Selection == s.atoms.Clipboard {
				s.requestTargets()
			}

		case xproto.SelectionNotifyEvent:
			if e.Target != s.atoms.Targets || e.Property == xproto.AtomNone {
				continue
			}

			data, err := s.readProperty(e.Property)
			if err != nil {
				c.logger.Debug().Err(err).Msg("failed to read targets")
				continue
			}

			fn(eventful.NewEvent(&object{s: s, targets: decodeAtoms(data)}))

			if s.stale {
				s.stale = false
				s.requestTargets()
			}
		}
	}
}

// Snapshot reads the current clipboard over a dedicated connection.
func (c *Clipboard) Snapshot() format.DataObject {
	s, err := open()
	if err != nil {
		c.logger.Warn().Err(err).Msg("clipboard unavailable")
		return format.Snapshot{}
	}
	defer s.close()

	data, err := s.convert(s.atoms.Targets)
	if err != nil {
		c.logger.Debug().Err(err).Msg("failed to read targets")
		return format.Snapshot{}
	}

	obj := &object{s: s, targets: decodeAtoms(data)}
	return obj.snapshot()
}
