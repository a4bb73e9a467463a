//go:build linux && !null

package clipboard

import (
	"os"

	"github.com/labi-le/clipmon/pkg/clipboard/eventful"
	"github.com/labi-le/clipmon/pkg/clipboard/wlr"
	"github.com/labi-le/clipmon/pkg/clipboard/x11"
	"github.com/rs/zerolog"
)

// New prefers X11, which XWayland keeps in sync with the Wayland selection
// on compositors lacking wlr data control.
func New(logger zerolog.Logger) eventful.Eventful {
	if _, ok := os.LookupEnv("DISPLAY"); ok {
		logger.Debug().Str("backend", X11).Msg("clipboard backend selected")
		return x11.New(logger)
	}

	if wlr.Supported() {
		logger.Debug().Str("backend", Wlr).Msg("clipboard backend selected")
		return wlr.New(logger)
	}

	logger.Fatal().Msg("neither DISPLAY nor WAYLAND_DISPLAY is set")
	return nil
}
