package monitor

import (
	"github.com/dustin/go-humanize"
	"github.com/labi-le/clipmon/internal/notification"
	"github.com/rs/zerolog"
)

const DefaultTitle = "Clipboard contents"

type Options struct {
	Title      string
	MaxPreview int
	// MaxBytes caps how much of a clipboard value is decoded into text.
	MaxBytes uint64
	Notifier   notification.Notifier
	Logger     zerolog.Logger
}

type Option func(*Options)

//nolint:mnd //shut up
var DefaultOptions = Options{
	Title:      DefaultTitle,
	MaxPreview: 512,
	MaxBytes:   humanize.MiByte,
	Notifier:   notification.Null{},
	Logger:     zerolog.Nop(),
}

func NewOptions(opts ...Option) Options {
	options := DefaultOptions

	for _, opt := range opts {
		opt(&options)
	}

	return options
}

func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// WithMaxPreview limits the notification text to n runes, n <= 0 disables the limit.
func WithMaxPreview(n int) Option {
	return func(o *Options) {
		o.MaxPreview = n
	}
}

// WithMaxBytes decodes at most n bytes of a value, n == 0 disables the limit.
func WithMaxBytes(n uint64) Option {
	return func(o *Options) {
		o.MaxBytes = n
	}
}

func WithNotifier(notifier notification.Notifier) Option {
	return func(o *Options) {
		o.Notifier = notifier
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}
