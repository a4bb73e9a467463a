package eventful

import (
	"context"
	"time"

	"github.com/labi-le/clipmon/pkg/format"
	"github.com/rs/zerolog"
)

// Handler is called once per clipboard change.
// Calls are serial; the event's data object must not be retained after return.
type Handler func(Event)

type Eventful interface {
	// Watch subscribe to clipboard updates
	// returns when the context is finished
	Watch(ctx context.Context, fn Handler) error
	// Snapshot returns a data object over the current clipboard content
	Snapshot() format.DataObject
}

type Event struct {
	Object format.DataObject
	At     time.Time
}

func NewEvent(obj format.DataObject) Event {
	return Event{Object: obj, At: time.Now()}
}

func (e Event) MarshalZerologObject(ev *zerolog.Event) {
	ev.Time("at", e.At)
}
