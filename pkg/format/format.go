package format

import "strings"

// Format is a clipboard format label.
// Declaration order is the resolution priority.
type Format int32

const (
	Unknown Format = iota - 1

	Text
	UnicodeText
	Dib
	Bitmap
	EnhancedMetafile
	MetafilePict
	SymbolicLink
	Dif
	Tiff
	OemText
	Palette
	PenData
	Riff
	WaveAudio
	FileDrop
	Locale
	Html
	Rtf
	CommaSeparatedValue
	StringFormat
	Serializable

	count
)

var names = [count]string{
	Text:                "Text",
	UnicodeText:         "UnicodeText",
	Dib:                 "Dib",
	Bitmap:              "Bitmap",
	EnhancedMetafile:    "EnhancedMetafile",
	MetafilePict:        "MetafilePict",
	SymbolicLink:        "SymbolicLink",
	Dif:                 "Dif",
	Tiff:                "Tiff",
	OemText:             "OemText",
	Palette:             "Palette",
	PenData:             "PenData",
	Riff:                "Riff",
	WaveAudio:           "WaveAudio",
	FileDrop:            "FileDrop",
	Locale:              "Locale",
	Html:                "Html",
	Rtf:                 "Rtf",
	CommaSeparatedValue: "CommaSeparatedValue",
	StringFormat:        "StringFormat",
	Serializable:        "Serializable",
}

var all = func() []Format {
	res := make([]Format, 0, count)
	for f := Text; f < count; f++ {
		res = append(res, f)
	}
	return res
}()

// All returns every known format in priority order.
func All() []Format {
	res := make([]Format, len(all))
	copy(res, all)
	return res
}

func (f Format) Valid() bool { return f >= Text && f < count }

func (f Format) String() string {
	if !f.Valid() {
		return "Unknown"
	}
	return names[f]
}

// IsText reports whether the format carries a textual representation.
func (f Format) IsText() bool {
	switch f {
	case Text, UnicodeText, OemText, Html, Rtf, CommaSeparatedValue, StringFormat:
		return true
	default:
		return false
	}
}

// Parse is the inverse of String, case-insensitive.
func Parse(name string) Format {
	for _, f := range all {
		if strings.EqualFold(names[f], name) {
			return f
		}
	}
	return Unknown
}
