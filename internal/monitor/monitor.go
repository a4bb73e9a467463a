package monitor

import (
	"context"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/labi-le/clipmon/internal/resolver"
	"github.com/labi-le/clipmon/pkg/clipboard/eventful"
	"github.com/labi-le/clipmon/pkg/ctxlog"
	"github.com/labi-le/clipmon/pkg/format"
)

const ellipsis = "…"

// Monitor shows a notification with the text of every clipboard change.
// It keeps no state between changes. Show calls are serialised, so the tray
// and the watcher may both drive it.
type Monitor struct {
	opts Options
	mu   sync.Mutex
}

func New(opts ...Option) *Monitor {
	return &Monitor{opts: NewOptions(opts...)}
}

// Run blocks until ctx is done or the watcher fails.
func (m *Monitor) Run(ctx context.Context, clip eventful.Eventful) error {
	return clip.Watch(ctx, m.Handle)
}

func (m *Monitor) Handle(ev eventful.Event) {
	m.Show(ev.Object)
}

// ShowCurrent presents whatever the clipboard holds right now.
func (m *Monitor) ShowCurrent(clip eventful.Eventful) bool {
	return m.Show(clip.Snapshot())
}

// Show resolves obj and hands its text to the notifier.
// It reports whether the notifier was called.
func (m *Monitor) Show(obj format.DataObject) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	logger := ctxlog.Op(m.opts.Logger, "monitor.Show")

	res, ok := resolver.Resolve(obj)
	if !ok {
		logger.Trace().Msg("no format resolved")
		return false
	}

	size := len(res.Value)
	res.Value = clip(res.Value, m.opts.MaxBytes)

	text, ok := res.Text()
	if !ok {
		logger.Trace().Object("resolved", res).Msg("no text representation")
		return false
	}

	if strings.TrimSpace(text) == "" {
		logger.Trace().Object("resolved", res).Msg("blank text")
		return false
	}

	logger.Trace().
		Object("resolved", res).
		Str("size", humanize.Bytes(uint64(size))).
		Msg("presenting")

	m.opts.Notifier.Notify(m.opts.Title, preview(text, m.opts.MaxPreview))
	return true
}

// clip cuts value to at most limit bytes on a rune boundary.
func clip(value []byte, limit uint64) []byte {
	if limit == 0 || uint64(len(value)) <= limit {
		return value
	}

	n := int(limit)
	for n > 0 && !utf8.RuneStart(value[n]) {
		n--
	}

	return value[:n]
}

func preview(text string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return text
	}

	n := 0
	for i := range text {
		if n == limit {
			return text[:i] + ellipsis
		}
		n++
	}

	return text
}
