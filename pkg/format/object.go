package format

// DataObject is a view over clipboard content that may hold several formats.
// Implementations are only valid for the duration of a single change callback.
type DataObject interface {
	Present(f Format) bool
	Data(f Format) ([]byte, bool)
}

// Snapshot is an in-memory DataObject.
type Snapshot map[Format][]byte

func (s Snapshot) Present(f Format) bool {
	_, ok := s[f]
	return ok
}

func (s Snapshot) Data(f Format) ([]byte, bool) {
	data, ok := s[f]
	if !ok || data == nil {
		return nil, false
	}
	return data, true
}

// TextSnapshot exposes text the way the system clipboard does: as both Text and UnicodeText.
func TextSnapshot(data []byte) Snapshot {
	return Snapshot{
		Text:        data,
		UnicodeText: data,
	}
}

// ImageSnapshot exposes encoded image content as a Bitmap.
func ImageSnapshot(data []byte) Snapshot {
	return Snapshot{Bitmap: data}
}
