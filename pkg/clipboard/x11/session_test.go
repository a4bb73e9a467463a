package x11

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

// property serves value the way GetProperty does: pieces of at most maxPropSize 32-bit units.
func property(value []byte, calls *int) func(uint32) ([]byte, uint32, error) {
	return func(offset uint32) ([]byte, uint32, error) {
		*calls++

		start := int(offset) * 4
		if start > len(value) {
			start = len(value)
		}
		end := min(start+maxPropSize*4, len(value))

		return value[start:end], uint32(len(value) - end), nil
	}
}

func TestReadChunks_LargeMultibyteValue(t *testing.T) {
	// 300 KiB of two byte runes, a single piece would end mid-rune
	value := []byte(strings.Repeat("ж", 300*1024/2))

	var calls int
	got, err := readChunks(property(value, &calls))
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(got, value) {
		t.Fatalf("read %d bytes, want %d", len(got), len(value))
	}
	if !utf8.Valid(got) {
		t.Error("value is not valid utf-8")
	}
	if calls != 2 {
		t.Errorf("GetProperty called %d times, want 2", calls)
	}
}

func TestReadChunks_Small(t *testing.T) {
	var calls int
	got, err := readChunks(property([]byte("Hello"), &calls))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "Hello" || calls != 1 {
		t.Errorf("got %q after %d calls", got, calls)
	}
}

func TestReadChunks_Limit(t *testing.T) {
	_, err := readChunks(func(uint32) ([]byte, uint32, error) {
		return make([]byte, maxPropSize*4), 1, nil
	})
	if !errors.Is(err, errTooLarge) {
		t.Fatalf("err = %v, want %v", err, errTooLarge)
	}
}

func TestReadChunks_Error(t *testing.T) {
	want := errors.New("bad property")
	_, err := readChunks(func(uint32) ([]byte, uint32, error) {
		return nil, 0, want
	})
	if !errors.Is(err, want) {
		t.Fatalf("err = %v, want %v", err, want)
	}
}
