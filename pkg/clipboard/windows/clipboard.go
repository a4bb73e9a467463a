//go:build windows

package windows

import (
	"context"
	"fmt"
	"runtime"
	"syscall"
	"unsafe"

	"github.com/labi-le/clipmon/pkg/clipboard/eventful"
	"github.com/labi-le/clipmon/pkg/format"
	"golang.org/x/sys/windows"
)

var _ eventful.Eventful = &Clipboard{}

func New() *Clipboard {
	return new(Clipboard)
}

// Clipboard listens for WM_CLIPBOARDUPDATE on a message-only window.
type Clipboard struct{}

func (w *Clipboard) Snapshot() format.DataObject {
	return newObject()
}

func (w *Clipboard) Watch(ctx context.Context, fn eventful.Handler) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	hInstance, _, _ := getModuleHandle.Call(0)
	clsNamePtr, err := windows.UTF16PtrFromString(className)
	if err != nil {
		return fmt.Errorf("class name: %w", err)
	}

	wndProc := syscall.NewCallback(func(hwnd syscall.Handle, msg uint32, wparam, lparam uintptr) uintptr {
		switch msg {
		case wmClipboardUpdate:
			fn(eventful.NewEvent(newObject()))
			return 0

		case wmClose:
			noCheck(removeClipboardFormatListener.Call(uintptr(hwnd)))
			noCheck(destroyWindow.Call(uintptr(hwnd)))
			return 0

		case wmDestroy:
			noCheck(postQuitMessage.Call(0))
			return 0
		}

		ret, _, _ := defWindowProc.Call(uintptr(hwnd), uintptr(msg), wparam, lparam)
		return ret
	})

	wc := wndClassEx{
		Size:      uint32(unsafe.Sizeof(wndClassEx{})),
		Instance:  syscall.Handle(hInstance),
		WndProc:   wndProc,
		ClassName: clsNamePtr,
	}

	if atom, _, err := registerClassEx.Call(uintptr(unsafe.Pointer(&wc))); atom == 0 {
		return fmt.Errorf("failed to register window class: %w", err)
	}
	defer func() { noCheck(unregisterClass.Call(uintptr(unsafe.Pointer(clsNamePtr)), hInstance)) }()

	hwnd, _, err := createWindowEx.Call(
		0,
		uintptr(unsafe.Pointer(clsNamePtr)),
		uintptr(unsafe.Pointer(clsNamePtr)),
		0, 0, 0, 0, 0,
		hwndMessage, 0, hInstance, 0,
	)
	if hwnd == 0 {
		return fmt.Errorf("failed to create window listener: %w", err)
	}

	if ret, _, err := addClipboardFormatListener.Call(hwnd); ret == 0 {
		noCheck(destroyWindow.Call(hwnd))
		return fmt.Errorf("failed to add clipboard format listener: %w", err)
	}

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			noCheck(postMessage.Call(hwnd, wmClose, 0, 0))
		case <-done:
		}
	}()

	var msg struct {
		Hwnd    syscall.Handle
		Message uint32
		WParam  uintptr
		LParam  uintptr
		Time    uint32
		Pt      struct{ X, Y int32 }
	}

	for {
		r, _, _ := getMessage.Call(uintptr(unsafe.Pointer(&msg)), 0, 0, 0)
		if int32(r) <= 0 {
			break
		}
		noCheck(translateMessage.Call(uintptr(unsafe.Pointer(&msg))))
		noCheck(dispatchMessage.Call(uintptr(unsafe.Pointer(&msg))))
	}

	close(done)
	// no-op when wmClose already destroyed the window
	noCheck(destroyWindow.Call(hwnd))
	return nil
}
