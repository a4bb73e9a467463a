package design

import (
	"context"
	"fmt"
	"sync"

	"github.com/labi-le/clipmon/pkg/clipboard/eventful"
	"github.com/labi-le/clipmon/pkg/ctxlog"
	"github.com/labi-le/clipmon/pkg/format"
	"github.com/rs/zerolog"
	"golang.design/x/clipboard"
)

var _ eventful.Eventful = &Clipboard{}

// Clipboard watches the system clipboard through golang.design/x/clipboard.
// Only text and image content are visible to it.
type Clipboard struct {
	logger  zerolog.Logger
	once    sync.Once
	initErr error
}

func New(logger zerolog.Logger) *Clipboard {
	return &Clipboard{logger: ctxlog.Backend(logger, "golang.design")}
}

func (c *Clipboard) init() error {
	c.once.Do(func() {
		c.initErr = clipboard.Init()
	})

	return c.initErr
}

func (c *Clipboard) Watch(ctx context.Context, fn eventful.Handler) error {
	if err := c.init(); err != nil {
		return fmt.Errorf("init clipboard: %w", err)
	}

	var (
		text  = clipboard.Watch(ctx, clipboard.FmtText)
		image = clipboard.Watch(ctx, clipboard.FmtImage)
	)

	for text != nil || image != nil {
		select {
		case <-ctx.Done():
			return nil

		case data, ok := <-text:
			if !ok {
				text = nil
				continue
			}
			c.logger.Trace().Int("length", len(data)).Msg("text changed")
			fn(eventful.NewEvent(format.TextSnapshot(data)))

		case data, ok := <-image:
			if !ok {
				image = nil
				continue
			}
			c.logger.Trace().Int("length", len(data)).Msg("image changed")
			fn(eventful.NewEvent(format.ImageSnapshot(data)))
		}
	}

	return nil
}

func (c *Clipboard) Snapshot() format.DataObject {
	if err := c.init(); err != nil {
		c.logger.Warn().Err(err).Msg("clipboard unavailable")
		return format.Snapshot{}
	}

	return live{}
}

// live reads the current clipboard on every call.
type live struct{}

func kindOf(f format.Format) (clipboard.Format, bool) {
	switch f {
	case format.Text, format.UnicodeText:
		return clipboard.FmtText, true
	case format.Bitmap:
		return clipboard.FmtImage, true
	default:
		return 0, false
	}
}

func (live) Present(f format.Format) bool {
	_, ok := live{}.Data(f)
	return ok
}

func (live) Data(f format.Format) ([]byte, bool) {
	kind, ok := kindOf(f)
	if !ok {
		return nil, false
	}

	data := clipboard.Read(kind)
	if len(data) == 0 {
		return nil, false
	}

	return data, true
}
