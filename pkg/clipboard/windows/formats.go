//go:build windows

package windows

import (
	"sync"
	"unsafe"

	"github.com/labi-le/clipmon/pkg/format"
	"golang.org/x/sys/windows"
)

var standardFormats = map[format.Format]uintptr{
	format.Text:             cfText,
	format.UnicodeText:      cfUnicodeText,
	format.Dib:              cfDib,
	format.Bitmap:           cfBitmap,
	format.EnhancedMetafile: cfEnhMetafile,
	format.MetafilePict:     cfMetafilePict,
	format.SymbolicLink:     cfSylk,
	format.Dif:              cfDif,
	format.Tiff:             cfTiff,
	format.OemText:          cfOemText,
	format.Palette:          cfPalette,
	format.PenData:          cfPenData,
	format.Riff:             cfRiff,
	format.WaveAudio:        cfWave,
	format.FileDrop:         cfHDrop,
	format.Locale:           cfLocale,
}

// names under which the shell and .NET register the non-standard formats
var registeredFormats = map[format.Format]string{
	format.Html:                "HTML Format",
	format.Rtf:                 "Rich Text Format",
	format.CommaSeparatedValue: "Csv",
	format.StringFormat:        "System.String",
	format.Serializable:        "WindowsForms10PersistentObject",
}

var formatIDs = sync.OnceValue(func() map[format.Format]uintptr {
	ids := make(map[format.Format]uintptr, len(standardFormats)+len(registeredFormats))
	for f, id := range standardFormats {
		ids[f] = id
	}

	for f, name := range registeredFormats {
		ptr, err := windows.UTF16PtrFromString(name)
		if err != nil {
			continue
		}

		id, _, _ := registerClipboardFormat.Call(uintptr(unsafe.Pointer(ptr)))
		if id != 0 {
			ids[f] = id
		}
	}

	return ids
})
