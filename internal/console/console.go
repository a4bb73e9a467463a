package console

import (
	"context"

	"fyne.io/systray"
	"github.com/rs/zerolog"
)

const (
	Title   = "ClipMon"
	Tooltip = "ClipMon"
)

// Tray is the notification area icon with its menu.
type Tray struct {
	cancel      context.CancelFunc
	showCurrent func()
	hideConsole bool
	logger      zerolog.Logger

	platform
}

type Option func(*Tray)

func WithShowCurrent(fn func()) Option {
	return func(t *Tray) {
		t.showCurrent = fn
	}
}

// WithHideConsole hides the console window on start, tapping the icon toggles it back.
func WithHideConsole(hide bool) Option {
	return func(t *Tray) {
		t.hideConsole = hide
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(t *Tray) {
		t.logger = logger
	}
}

// New builds a tray that calls cancel once the user exits.
func New(cancel context.CancelFunc, opts ...Option) *Tray {
	t := &Tray{
		cancel: cancel,
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Run blocks until Exit is clicked or ctx is done. Must be called from the main goroutine.
func (t *Tray) Run(ctx context.Context) {
	if t.hideConsole {
		t.logger.Trace().Msg("starting as hidden")
		t.hideInitial()
	}

	go func() {
		<-ctx.Done()
		systray.Quit()
	}()

	systray.Run(t.onReady, t.onExit)
}

func (t *Tray) onReady() {
	systray.SetIcon(trayIcon)
	systray.SetTitle(Title)
	systray.SetTooltip(Tooltip)
	systray.SetOnTapped(t.onTapped)

	var show *systray.MenuItem
	if t.showCurrent != nil {
		show = systray.AddMenuItem("Show current clipboard contents", "")
		systray.AddSeparator()
	}
	mQuit := systray.AddMenuItem("Exit", "")

	go func() {
		for {
			select {
			case <-clicked(show):
				t.showCurrent()
			case <-mQuit.ClickedCh:
				t.logger.Debug().Msg("exit requested")
				systray.Quit()
				return
			}
		}
	}()
}

func (t *Tray) onExit() {
	if t.cancel != nil {
		t.cancel()
	}
}

func clicked(item *systray.MenuItem) <-chan struct{} {
	if item == nil {
		return nil
	}
	return item.ClickedCh
}
