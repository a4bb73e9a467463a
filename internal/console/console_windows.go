//go:build windows

package console

import (
	"sync/atomic"
	"time"

	"github.com/labi-le/clipmon/internal/console/icon"
	"golang.org/x/sys/windows"
)

const (
	SwHide  = 0
	SwShow  = 5
	GwOwner = 4
)

var trayIcon = icon.ICO

var (
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")
	user32   = windows.NewLazySystemDLL("user32.dll")

	procGetConsoleWindow = kernel32.NewProc("GetConsoleWindow")
	procGetWindow        = user32.NewProc("GetWindow")
	procShowWindow       = user32.NewProc("ShowWindow")
)

type platform struct {
	isHidden atomic.Bool
}

func (t *Tray) hideInitial() {
	time.Sleep(time.Millisecond * 50)

	hwnd := getConsoleWindowHandle()
	if hwnd == 0 {
		return
	}

	showWindow(hwnd, SwHide)
	t.isHidden.Store(true)
}

func (t *Tray) onTapped() {
	hwnd := getConsoleWindowHandle()
	if hwnd == 0 {
		return
	}

	if t.isHidden.Load() {
		showWindow(hwnd, SwShow)
		t.isHidden.Store(false)
		return
	}

	showWindow(hwnd, SwHide)
	t.isHidden.Store(true)
}

func getConsoleWindowHandle() uintptr {
	hwnd, _, _ := procGetConsoleWindow.Call()
	if hwnd == 0 {
		return 0
	}

	owner, _, _ := procGetWindow.Call(hwnd, GwOwner)
	if owner != 0 {
		return owner
	}

	return hwnd
}

func showWindow(hwnd uintptr, cmdShow int) {
	_, _, _ = procShowWindow.Call(hwnd, uintptr(cmdShow))
}
