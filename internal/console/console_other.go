//go:build !windows

package console

import (
	"github.com/labi-le/clipmon/internal/console/icon"
)

var trayIcon = icon.PNG

type platform struct{}

// no console window to hide outside windows
func (t *Tray) hideInitial() {}

func (t *Tray) onTapped() {
	if t.showCurrent != nil {
		t.showCurrent()
	}
}
