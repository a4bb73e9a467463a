//go:build windows

package windows

import (
	"bytes"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
	"unsafe"
)

func readText() ([]byte, error) {
	hMem, _, err := getClipboardData.Call(cfUnicodeText)
	if hMem == 0 {
		return nil, fmt.Errorf("get unicode text: %w", err)
	}

	p, _, err := gLock.Call(hMem)
	if p == 0 {
		return nil, fmt.Errorf("global lock: %w", err)
	}
	defer func() { noCheck(gUnlock.Call(hMem)) }()

	// CF_UNICODETEXT: UTF-16LE, NUL-terminated
	u := (*uint16)(unsafe.Pointer(p))

	n := 0
	for *(*uint16)(unsafe.Add(unsafe.Pointer(u), n*2)) != 0 {
		n++
	}

	return decodeUTF16(unsafe.Slice(u, n)), nil
}

func decodeUTF16(s []uint16) []byte {
	buf := make([]byte, 0, len(s))

	for i := 0; i < len(s); i++ {
		r := rune(s[i])

		if r < utf8.RuneSelf {
			buf = append(buf, byte(r))
			continue
		}

		if utf16.IsSurrogate(r) && r < 0xDC00 && i+1 < len(s) && 0xDC00 <= s[i+1] && s[i+1] < 0xE000 {
			r = utf16.DecodeRune(r, rune(s[i+1]))
			i++
			buf = utf8.AppendRune(buf, r)
			continue
		}

		if utf16.IsSurrogate(r) {
			r = utf8.RuneError
		}

		buf = utf8.AppendRune(buf, r)
	}

	return buf
}

var (
	fragmentStart = []byte("<!--StartFragment-->")
	fragmentEnd   = []byte("<!--EndFragment-->")
)

// htmlFragment strips the CF_HTML description header, keeping the copied fragment.
func htmlFragment(data []byte) []byte {
	start := bytes.Index(data, fragmentStart)
	end := bytes.LastIndex(data, fragmentEnd)
	if start < 0 || end < start {
		return data
	}

	return data[start+len(fragmentStart) : end]
}

func trimNUL(data []byte) []byte {
	if i := bytes.IndexByte(data, 0); i >= 0 {
		return data[:i]
	}
	return data
}
