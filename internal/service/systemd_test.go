package service_test

import (
	"strings"
	"testing"

	"github.com/labi-le/clipmon/internal/service"
)

func TestUnit(t *testing.T) {
	tests := []struct {
		name     string
		exe      string
		wantExec string
	}{
		{"plain path", "/usr/bin/clipmon", "ExecStart=/usr/bin/clipmon\n"},
		{"path with space", "/opt/clip mon/clipmon", `ExecStart="/opt/clip mon/clipmon"` + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit := service.Unit(tt.exe, "/usr/bin", "unix:path=/run/user/1000/bus")

			for _, want := range []string{
				tt.wantExec,
				`Environment="PATH=/usr/bin"`,
				`Environment="DBUS_SESSION_BUS_ADDRESS=unix:path=/run/user/1000/bus"`,
				"WantedBy=graphical-session.target",
			} {
				if !strings.Contains(unit, want) {
					t.Errorf("unit does not contain %q:\n%s", want, unit)
				}
			}
		})
	}
}
