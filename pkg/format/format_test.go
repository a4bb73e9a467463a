package format_test

import (
	"testing"

	"github.com/labi-le/clipmon/pkg/format"
)

func TestAll_Order(t *testing.T) {
	all := format.All()

	if len(all) != 21 {
		t.Fatalf("len(All()) = %d, want 21", len(all))
	}
	if all[0] != format.Text || all[len(all)-1] != format.Serializable {
		t.Fatalf("unexpected bounds: %s..%s", all[0], all[len(all)-1])
	}
	for i := 1; i < len(all); i++ {
		if all[i-1] >= all[i] {
			t.Fatalf("All() not in declaration order at %d: %s >= %s", i, all[i-1], all[i])
		}
	}

	all[0] = format.Serializable
	if format.All()[0] != format.Text {
		t.Fatal("All() exposes internal slice")
	}
}

func TestParse(t *testing.T) {
	for _, f := range format.All() {
		if got := format.Parse(f.String()); got != f {
			t.Errorf("Parse(%q) = %s, want %s", f.String(), got, f)
		}
	}

	if got := format.Parse("html"); got != format.Html {
		t.Errorf("Parse is case sensitive: got %s", got)
	}
	if got := format.Parse("Jpeg"); got != format.Unknown {
		t.Errorf("Parse(Jpeg) = %s, want Unknown", got)
	}
	if format.Unknown.Valid() {
		t.Error("Unknown must not be valid")
	}
}

func TestSnapshot(t *testing.T) {
	text := format.TextSnapshot([]byte("Hello"))
	for _, f := range []format.Format{format.Text, format.UnicodeText} {
		data, ok := text.Data(f)
		if !text.Present(f) || !ok || string(data) != "Hello" {
			t.Errorf("%s: present=%v data=%q ok=%v", f, text.Present(f), data, ok)
		}
	}
	if text.Present(format.Bitmap) {
		t.Error("text snapshot reports Bitmap")
	}

	img := format.ImageSnapshot([]byte{0x89, 0x50})
	if !img.Present(format.Bitmap) || img.Present(format.Text) {
		t.Error("image snapshot must expose only Bitmap")
	}

	flagged := format.Snapshot{format.Html: nil}
	if !flagged.Present(format.Html) {
		t.Error("nil value must still be reported present")
	}
	if _, ok := flagged.Data(format.Html); ok {
		t.Error("nil value must be absent")
	}
}
