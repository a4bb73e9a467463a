//go:build windows && !null

package clipboard

import (
	"github.com/labi-le/clipmon/pkg/clipboard/eventful"
	"github.com/labi-le/clipmon/pkg/clipboard/windows"
	"github.com/rs/zerolog"
)

func New(logger zerolog.Logger) eventful.Eventful {
	logger.Debug().Str("backend", Windows).Msg("clipboard backend selected")
	return windows.New()
}
