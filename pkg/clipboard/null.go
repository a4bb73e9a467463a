//go:build null

package clipboard

import (
	"github.com/labi-le/clipmon/pkg/clipboard/eventful"
	"github.com/labi-le/clipmon/pkg/clipboard/null"
	"github.com/rs/zerolog"
)

func New(logger zerolog.Logger) eventful.Eventful {
	logger.Debug().Str("backend", Null).Msg("clipboard backend selected")
	return null.NewNull()
}
