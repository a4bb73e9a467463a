package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gen2brain/beeep"
	"github.com/labi-le/clipmon/internal/console"
	"github.com/labi-le/clipmon/internal/console/icon"
	"github.com/labi-le/clipmon/internal/lock"
	"github.com/labi-le/clipmon/internal/metadata"
	"github.com/labi-le/clipmon/internal/monitor"
	"github.com/labi-le/clipmon/internal/notification"
	"github.com/labi-le/clipmon/internal/service"
	"github.com/labi-le/clipmon/pkg/clipboard"
	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"
)

type action struct {
	verbose        bool
	showVersion    bool
	showHelp       bool
	notify         bool
	dedup          bool
	tray           bool
	hidden         bool
	installService bool
}

func parseFlags() (monitor.Options, action) {
	var (
		opts = monitor.DefaultOptions
		act  action
	)

	flag.StringVar(&opts.Title, "title", monitor.DefaultTitle, "Notification title")
	flag.IntVar(&opts.MaxPreview, "max_preview", opts.MaxPreview, "Maximum number of characters shown in a notification (0=unlimited)")

	flag.BoolVar(&act.verbose, "verbose", false, "Verbose logs")
	flag.BoolVar(&act.notify, "notify", true, "Enable notifications")
	flag.BoolVar(&act.dedup, "dedup", false, "Skip a notification when the text equals the previous one")
	flag.BoolVar(&act.tray, "tray", true, "Show the tray icon")
	flag.BoolVarP(&act.showVersion, "version", "v", false, "Show version")
	flag.BoolVarP(&act.showHelp, "help", "h", false, "Show help")
	flag.BoolVar(&act.hidden, "hidden", true, "Hide console window (for windows user)")
	flag.BoolVar(&act.installService, "install-service", false, "Install systemd-unit and start the service")

	var maxBytesRaw string
	flag.StringVar(&maxBytesRaw, "max_bytes", humanize.IBytes(opts.MaxBytes), "Maximum clipboard value size decoded into a notification (0=unlimited)")

	flag.Parse()

	if act.showHelp {
		return opts, act
	}

	size, err := humanize.ParseBytes(maxBytesRaw)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "invalid max_bytes format: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}
	opts.MaxBytes = size

	if opts.MaxPreview < 0 {
		opts.MaxPreview = 0
	}

	return opts, act
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	opts, cfg := parseFlags()

	if cfg.showHelp {
		flag.Usage()
		return
	}

	applyTagsOverrides(&cfg)
	logger := initLogger(cfg.verbose)

	metadata.MarshalZerolog(logger.Info()).Send()

	if cfg.showVersion {
		// ^
		return
	}

	if cfg.verbose {
		logger.Info().Msg("verbose mode enabled")
	}

	if cfg.installService {
		if err := service.InstallService(logger); err != nil {
			logger.Fatal().Err(err).Msg("failed install service")
		}
		return
	}

	unlock := lock.Must(logger)
	defer unlock()

	beeep.AppName = console.Title

	notifier := notification.New(cfg.notify, icon.PNG, logger)
	if cfg.dedup {
		notifier = notification.NewDedup(notifier)
	}

	logger.Debug().
		Str("title", opts.Title).
		Str("max_preview", humanize.Comma(int64(opts.MaxPreview))).
		Str("max_bytes", humanize.IBytes(opts.MaxBytes)).
		Bool("dedup", cfg.dedup).
		Msg("monitor configured")

	clip := clipboard.New(logger)
	mon := monitor.New(
		monitor.WithTitle(opts.Title),
		monitor.WithMaxPreview(opts.MaxPreview),
		monitor.WithMaxBytes(opts.MaxBytes),
		monitor.WithNotifier(notifier),
		monitor.WithLogger(logger),
	)

	if !cfg.tray {
		if err := mon.Run(ctx, clip); err != nil {
			logger.Fatal().Err(err).Msg("clipboard watcher stopped")
		}
		return
	}

	go func() {
		if err := mon.Run(ctx, clip); err != nil {
			logger.Error().Err(err).Msg("clipboard watcher stopped")
			cancel()
		}
	}()

	console.New(
		cancel,
		console.WithShowCurrent(func() { mon.ShowCurrent(clip) }),
		console.WithHideConsole(cfg.hidden),
		console.WithLogger(logger),
	).Run(ctx)
}

func initLogger(verbose bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	if verbose {
		zerolog.CallerMarshalFunc = func(_ uintptr, file string, line int) string {
			short := file
			for i := len(file) - 1; i > 0; i-- {
				if file[i] == '/' {
					short = file[i+1:]
					break
				}
			}
			file = short
			return fmt.Sprintf("%s:%d", file, line)
		}
		return zerolog.New(output).
			Level(zerolog.TraceLevel).
			With().
			Timestamp().
			Caller().
			Logger()
	}

	return zerolog.New(output).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Logger()
}
