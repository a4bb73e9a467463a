//go:build windows

package windows

import (
	"encoding/binary"
	"errors"
	"fmt"
	"runtime"
	"time"
	"unsafe"

	"github.com/labi-le/clipmon/pkg/format"
)

var (
	errUnavailable = errors.New("clipboard unavailable")
	errUnsupported = errors.New("unsupported format")
)

const openAttempts = 5

// object reads the live clipboard lazily, one format at a time.
type object struct {
	ids map[format.Format]uintptr
}

func newObject() object {
	return object{ids: formatIDs()}
}

func (o object) Present(f format.Format) bool {
	id, ok := o.ids[f]
	if !ok {
		return false
	}

	r, _, _ := isClipboardFormatAvailable.Call(id)
	return r != 0
}

func (o object) Data(f format.Format) ([]byte, bool) {
	id, ok := o.ids[f]
	if !ok {
		return nil, false
	}

	data, err := read(f, id)
	if err != nil || len(data) == 0 {
		return nil, false
	}

	return data, true
}

func read(f format.Format, id uintptr) ([]byte, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := open(); err != nil {
		return nil, err
	}
	defer func() { noCheck(closeClipboard.Call()) }()

	switch f {
	case format.Text, format.UnicodeText:
		return readText()
	case format.FileDrop:
		return readFileDrop()
	case format.Bitmap, format.EnhancedMetafile, format.Palette:
		return readHandle(id)
	case format.Html:
		data, err := readGlobal(id)
		return htmlFragment(trimNUL(data)), err
	case format.OemText, format.Rtf, format.CommaSeparatedValue:
		data, err := readGlobal(id)
		return trimNUL(data), err
	default:
		return readGlobal(id)
	}
}

func open() error {
	for i := 0; i < openAttempts; i++ {
		if r, _, _ := openClipboard.Call(0); r != 0 {
			return nil
		}
		time.Sleep(10 * time.Millisecond)
	}

	return fmt.Errorf("open clipboard: %w", errUnavailable)
}

// readGlobal copies an HGLOBAL backed format.
func readGlobal(id uintptr) ([]byte, error) {
	hMem, _, _ := getClipboardData.Call(id)
	if hMem == 0 {
		return nil, errUnavailable
	}

	size, _, _ := gSize.Call(hMem)
	if size == 0 {
		return nil, nil
	}

	p, _, err := gLock.Call(hMem)
	if p == 0 {
		return nil, fmt.Errorf("global lock: %w", err)
	}
	defer func() { noCheck(gUnlock.Call(hMem)) }()

	src := unsafe.Slice((*byte)(unsafe.Pointer(p)), size)
	dst := make([]byte, size)
	copy(dst, src)

	return dst, nil
}

// readHandle returns the raw handle of GDI backed formats, they carry no memory block.
func readHandle(id uintptr) ([]byte, error) {
	h, _, _ := getClipboardData.Call(id)
	if h == 0 {
		return nil, errUnsupported
	}

	return binary.LittleEndian.AppendUint64(nil, uint64(h)), nil
}
