package null_test

import (
	"context"
	"testing"
	"time"

	"github.com/labi-le/clipmon/pkg/clipboard/eventful"
	"github.com/labi-le/clipmon/pkg/clipboard/null"
	"github.com/labi-le/clipmon/pkg/format"
)

func TestClipboard_WatchDeliversWrites(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	clip := null.NewNull()
	events := make(chan format.DataObject, 2)

	done := make(chan error, 1)
	go func() {
		done <- clip.Watch(ctx, func(ev eventful.Event) {
			events <- ev.Object
		})
	}()

	writes := []format.Snapshot{
		format.TextSnapshot([]byte("first")),
		format.ImageSnapshot([]byte{1, 2, 3}),
	}
	for _, w := range writes {
		if err := clip.Write(ctx, w); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
	}

	for i, want := range []format.Format{format.Text, format.Bitmap} {
		select {
		case obj := <-events:
			if !obj.Present(want) {
				t.Errorf("event %d: %s not present", i, want)
			}
		case <-time.After(time.Second):
			t.Fatalf("timeout waiting for event %d", i)
		}
	}

	if !clip.Snapshot().Present(format.Bitmap) {
		t.Error("Snapshot() does not reflect last write")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Watch() error = %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestClipboard_WriteCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	clip := null.NewNull()
	if err := clip.Write(ctx, format.TextSnapshot([]byte("x"))); err == nil {
		t.Fatal("Write() without watcher on cancelled context must fail")
	}
}
