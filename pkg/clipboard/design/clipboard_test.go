package design

import (
	"testing"

	"github.com/labi-le/clipmon/pkg/format"
	"golang.design/x/clipboard"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		format format.Format
		want   clipboard.Format
		ok     bool
	}{
		{format.Text, clipboard.FmtText, true},
		{format.UnicodeText, clipboard.FmtText, true},
		{format.Bitmap, clipboard.FmtImage, true},
		{format.Dib, 0, false},
		{format.OemText, 0, false},
		{format.Html, 0, false},
		{format.FileDrop, 0, false},
		{format.Unknown, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			got, ok := kindOf(tt.format)
			if got != tt.want || ok != tt.ok {
				t.Errorf("kindOf(%s) = %v %v, want %v %v", tt.format, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestLive_UnmappedFormatsAbsent(t *testing.T) {
	for _, f := range []format.Format{format.Html, format.Rtf, format.WaveAudio} {
		if data, ok := (live{}).Data(f); ok || data != nil {
			t.Errorf("Data(%s) = %v %v, want absent", f, data, ok)
		}
		if (live{}).Present(f) {
			t.Errorf("Present(%s) = true", f)
		}
	}
}
