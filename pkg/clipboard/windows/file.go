//go:build windows

package windows

import (
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

const dragQueryCount = 0xFFFFFFFF

// readFileDrop returns the dropped paths separated by newlines.
func readFileDrop() ([]byte, error) {
	hDrop, _, err := getClipboardData.Call(cfHDrop)
	if hDrop == 0 {
		return nil, err
	}

	count, _, _ := dragQueryFileW.Call(hDrop, dragQueryCount, 0, 0)

	paths := make([]string, 0, count)
	for i := uintptr(0); i < count; i++ {
		ln, _, _ := dragQueryFileW.Call(hDrop, i, 0, 0)
		if ln == 0 {
			continue
		}

		buf := make([]uint16, ln+1)
		_, _, _ = dragQueryFileW.Call(hDrop, i, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))

		if path := windows.UTF16ToString(buf); path != "" {
			paths = append(paths, path)
		}
	}

	return []byte(strings.Join(paths, "\n")), nil
}
