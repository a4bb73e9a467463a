//go:build linux

package wlr

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/labi-le/clipmon/pkg/format"
	"github.com/rs/zerolog"
)

func TestOffer_CollectsMimes(t *testing.T) {
	o := new(offer)
	for _, m := range []string{"text/html", "text/plain;charset=utf-8", "UTF8_STRING"} {
		o.Offer(m)
	}

	want := []string{"text/html", "text/plain;charset=utf-8", "UTF8_STRING"}
	if diff := cmp.Diff(want, o.mimes); diff != "" {
		t.Errorf("mimes mismatch (-want +got):\n%s", diff)
	}
}

func TestOffer_Present(t *testing.T) {
	o := &offer{mimes: []string{
		"text/html",
		"text/plain;charset=UTF-8",
		"text/uri-list",
	}}

	tests := []struct {
		format format.Format
		want   bool
	}{
		{format.Text, true},
		{format.UnicodeText, true},
		{format.Html, true},
		{format.FileDrop, true},
		{format.Bitmap, false},
		{format.Rtf, false},
		{format.Palette, false},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := o.Present(tt.format); got != tt.want {
				t.Errorf("Present(%s) = %v, want %v", tt.format, got, tt.want)
			}
		})
	}
}

func TestOffer_DataRequiresCurrentSelection(t *testing.T) {
	s := &session{pending: map[*dataControlOffer]*offer{}, logger: zerolog.Nop()}
	stale := &offer{s: s, mimes: []string{"UTF8_STRING"}}
	s.selection = &offer{s: s}

	if _, err := stale.receive("UTF8_STRING"); err != errNoSelected {
		t.Fatalf("receive() error = %v, want %v", err, errNoSelected)
	}
	if data, ok := stale.Data(format.Text); ok || data != nil {
		t.Errorf("Data(Text) = %q %v, want absent", data, ok)
	}
}

func TestSession_SelectionAdoptsPendingOffer(t *testing.T) {
	s := &session{pending: map[*dataControlOffer]*offer{}, logger: zerolog.Nop()}

	var got []*offer
	s.onSelection = func(o *offer) { got = append(got, o) }

	wlOffer := new(dataControlOffer)
	s.DataOffer(wlOffer)
	wlOffer.Listener.Offer("UTF8_STRING")
	s.Selection(wlOffer)

	if len(got) != 1 || got[0] != s.selection {
		t.Fatalf("handler got %d offers, want the current selection", len(got))
	}
	if !s.selection.Present(format.Text) {
		t.Error("selection does not carry Text")
	}
	if len(s.pending) != 0 {
		t.Errorf("%d offers still pending", len(s.pending))
	}
}

func TestSession_PrimarySelectionIgnored(t *testing.T) {
	s := &session{pending: map[*dataControlOffer]*offer{}, logger: zerolog.Nop()}
	s.onSelection = func(*offer) { t.Error("primary selection reached the handler") }

	wlOffer := new(dataControlOffer)
	s.DataOffer(wlOffer)
	s.PrimarySelection(wlOffer)

	if s.primary != wlOffer || len(s.pending) != 0 {
		t.Error("primary offer not tracked")
	}
}
