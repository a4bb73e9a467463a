// Package mime maps clipboard formats onto the selection targets offered by
// X11 owners and Wayland data sources.
package mime

import (
	"strings"

	"github.com/labi-le/clipmon/pkg/format"
	"golang.org/x/text/encoding/charmap"
)

// Latin1 is the X11 STRING target, ISO 8859-1 encoded by definition.
const Latin1 = "STRING"

// targets lists, per format, the targets that carry it, most preferred first.
// Text is served from UTF-8 targets first, the way Windows synthesises CF_TEXT.
// TEXT is left out: owners answer it with COMPOUND_TEXT.
var targets = map[format.Format][]string{
	format.Text:                {"UTF8_STRING", "text/plain;charset=utf-8", "text/plain", Latin1},
	format.UnicodeText:         {"UTF8_STRING", "text/plain;charset=utf-8"},
	format.Dib:                 {"image/bmp"},
	format.Bitmap:              {"image/png"},
	format.Tiff:                {"image/tiff"},
	format.WaveAudio:           {"audio/x-wav", "audio/wav"},
	format.FileDrop:            {"text/uri-list", "x-special/gnome-copied-files"},
	format.Html:                {"text/html"},
	format.Rtf:                 {"text/rtf", "application/rtf"},
	format.CommaSeparatedValue: {"text/csv"},
}

// Targets returns the targets carrying f, most preferred first.
func Targets(f format.Format) []string {
	return append([]string(nil), targets[f]...)
}

// Names returns every known target once, in format priority order.
func Names() []string {
	var (
		seen  = make(map[string]struct{})
		names []string
	)

	for _, f := range format.All() {
		for _, name := range targets[f] {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	return names
}

// Pick returns the offered target that best carries f.
// The returned name is spelled the way the source offered it.
func Pick(f format.Format, offered []string) (string, bool) {
	for _, want := range targets[f] {
		for _, name := range offered {
			if normalize(name) == want {
				return name, true
			}
		}
	}

	return "", false
}

// Decode converts data received for target to UTF-8 when the target names a legacy encoding.
func Decode(target string, data []byte) ([]byte, error) {
	if target != Latin1 {
		return data, nil
	}

	return charmap.ISO8859_1.NewDecoder().Bytes(data)
}

func normalize(name string) string {
	if !strings.Contains(name, "/") {
		return name
	}
	return strings.ReplaceAll(strings.ToLower(name), " ", "")
}
