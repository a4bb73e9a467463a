//go:build windows

package windows

import (
	"syscall"

	"golang.org/x/sys/windows"
)

const (
	wmClipboardUpdate = 0x031D
	wmDestroy         = 0x0002
	wmClose           = 0x0010
	className         = "ClipmonClipboardListener"

	// HWND_MESSAGE
	hwndMessage = ^uintptr(2)
)

type wndClassEx struct {
	Size       uint32
	Style      uint32
	WndProc    uintptr
	ClsExtra   int32
	WndExtra   int32
	Instance   syscall.Handle
	Icon       syscall.Handle
	Cursor     syscall.Handle
	Background syscall.Handle
	MenuName   *uint16
	ClassName  *uint16
	IconSm     syscall.Handle
}

// standard clipboard format ids
const (
	cfText         = 1
	cfBitmap       = 2
	cfMetafilePict = 3
	cfSylk         = 4
	cfDif          = 5
	cfTiff         = 6
	cfOemText      = 7
	cfDib          = 8
	cfPalette      = 9
	cfPenData      = 10
	cfRiff         = 11
	cfWave         = 12
	cfUnicodeText  = 13
	cfEnhMetafile  = 14
	cfHDrop        = 15
	cfLocale       = 16
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	shell32  = windows.NewLazySystemDLL("shell32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	openClipboard              = user32.NewProc("OpenClipboard")
	closeClipboard             = user32.NewProc("CloseClipboard")
	getClipboardData           = user32.NewProc("GetClipboardData")
	isClipboardFormatAvailable = user32.NewProc("IsClipboardFormatAvailable")
	registerClipboardFormat    = user32.NewProc("RegisterClipboardFormatW")

	addClipboardFormatListener    = user32.NewProc("AddClipboardFormatListener")
	removeClipboardFormatListener = user32.NewProc("RemoveClipboardFormatListener")
	createWindowEx                = user32.NewProc("CreateWindowExW")
	defWindowProc                 = user32.NewProc("DefWindowProcW")
	registerClassEx               = user32.NewProc("RegisterClassExW")
	getMessage                    = user32.NewProc("GetMessageW")
	dispatchMessage               = user32.NewProc("DispatchMessageW")
	translateMessage              = user32.NewProc("TranslateMessage")
	postQuitMessage               = user32.NewProc("PostQuitMessage")
	destroyWindow                 = user32.NewProc("DestroyWindow")
	postMessage                   = user32.NewProc("PostMessageW")
	unregisterClass               = user32.NewProc("UnregisterClassW")
	getClassInfoEx                = user32.NewProc("GetClassInfoExW")

	dragQueryFileW = shell32.NewProc("DragQueryFileW")

	getModuleHandle = kernel32.NewProc("GetModuleHandleW")
	gLock           = kernel32.NewProc("GlobalLock")
	gUnlock         = kernel32.NewProc("GlobalUnlock")
	gSize           = kernel32.NewProc("GlobalSize")
)

func noCheck(uintptr, uintptr, error) {}
