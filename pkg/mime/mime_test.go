package mime_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/labi-le/clipmon/pkg/format"
	"github.com/labi-le/clipmon/pkg/mime"
)

func TestTargets_TextServedFromUTF8(t *testing.T) {
	for _, f := range []format.Format{format.Text, format.UnicodeText} {
		if names := mime.Targets(f); len(names) == 0 || names[0] != "UTF8_STRING" {
			t.Errorf("%s: first target = %v, want UTF8_STRING", f, names)
		}
	}
}

func TestTargets_NoCompoundText(t *testing.T) {
	for _, name := range mime.Names() {
		if name == "TEXT" || name == "COMPOUND_TEXT" {
			t.Errorf("%s must not be requested", name)
		}
	}
}

func TestNames_Unique(t *testing.T) {
	seen := map[string]bool{}
	for _, name := range mime.Names() {
		if seen[name] {
			t.Errorf("%s listed twice", name)
		}
		seen[name] = true
	}
}

func TestPick(t *testing.T) {
	tests := []struct {
		name    string
		format  format.Format
		offered []string
		want    string
		ok      bool
	}{
		{
			name:    "utf8 before latin1",
			format:  format.Text,
			offered: []string{"STRING", "UTF8_STRING"},
			want:    "UTF8_STRING",
			ok:      true,
		},
		{
			name:    "mime case and spacing",
			format:  format.Text,
			offered: []string{"text/plain; charset=UTF-8"},
			want:    "text/plain; charset=UTF-8",
			ok:      true,
		},
		{
			name:    "atom names are case sensitive",
			format:  format.Text,
			offered: []string{"utf8_string"},
		},
		{
			name:    "file list",
			format:  format.FileDrop,
			offered: []string{"text/html", "x-special/gnome-copied-files"},
			want:    "x-special/gnome-copied-files",
			ok:      true,
		},
		{
			name:    "not offered",
			format:  format.Html,
			offered: []string{"text/plain"},
		},
		{
			name:    "unmapped format",
			format:  format.Palette,
			offered: []string{"text/plain"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := mime.Pick(tt.format, tt.offered)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Pick() = %q %v, want %q %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		target string
		data   []byte
		want   string
	}{
		{name: "latin1", target: mime.Latin1, data: []byte{'c', 'a', 'f', 0xE9}, want: "café"},
		{name: "utf8 untouched", target: "UTF8_STRING", data: []byte("café"), want: "café"},
		{name: "html untouched", target: "text/html", data: []byte("<b>x</b>"), want: "<b>x</b>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mime.Decode(tt.target, tt.data)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, string(got)); diff != "" {
				t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
