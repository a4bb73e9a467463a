package ctxlog_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/labi-le/clipmon/pkg/ctxlog"
	"github.com/rs/zerolog"
)

func TestTags(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	tagged := ctxlog.Backend(ctxlog.Op(logger, "monitor.Show"), "null-clipboard")
	tagged.Info().Msg("x")

	var got map[string]string
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}

	want := map[string]string{
		"level":   "info",
		"op":      "monitor.Show",
		"backend": "null-clipboard",
		"message": "x",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("log fields mismatch (-want +got):\n%s", diff)
	}
}
