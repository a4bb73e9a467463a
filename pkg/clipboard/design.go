//go:build !windows && !linux && !null

package clipboard

import (
	"github.com/labi-le/clipmon/pkg/clipboard/design"
	"github.com/labi-le/clipmon/pkg/clipboard/eventful"
	"github.com/rs/zerolog"
)

func New(logger zerolog.Logger) eventful.Eventful {
	logger.Debug().Str("backend", Design).Msg("clipboard backend selected")
	return design.New(logger)
}
