package resolver

import (
	"strings"

	"github.com/labi-le/clipmon/pkg/format"
	"github.com/rs/zerolog"
)

const replacement = "\uFFFD"

// Resolved is the single format chosen for one clipboard change.
type Resolved struct {
	Format format.Format
	Value  []byte
}

// Text returns the value as a string, invalid UTF-8 sequences replaced.
// Non-text formats have no presentable text.
func (r Resolved) Text() (string, bool) {
	if !r.Format.IsText() || len(r.Value) == 0 {
		return "", false
	}
	return strings.ToValidUTF8(string(r.Value), replacement), true
}

func (r Resolved) MarshalZerologObject(e *zerolog.Event) {
	e.Stringer("format", r.Format)
	e.Int("length", len(r.Value))
}

// Resolve picks the first format of format.All present on obj and extracts its value.
// A present format with a missing or empty value resolves to nothing.
func Resolve(obj format.DataObject) (Resolved, bool) {
	if obj == nil {
		return Resolved{}, false
	}

	for _, f := range format.All() {
		if !obj.Present(f) {
			continue
		}

		data, ok := obj.Data(f)
		if !ok || len(data) == 0 {
			return Resolved{}, false
		}

		return Resolved{Format: f, Value: data}, true
	}

	return Resolved{}, false
}
